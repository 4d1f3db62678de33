package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarReservaRequest struct {
	MesaID          string  `json:"mesa_id"          validate:"required,uuid"`
	NomeCliente     string  `json:"nome_cliente"     validate:"required,min=2"`
	TelefoneCliente string  `json:"telefone_cliente" validate:"required,min=8"`
	Data            string  `json:"data"             validate:"required,datetime=2006-01-02"`
	Hora            string  `json:"hora"             validate:"required,datetime=15:04"`
	DuracaoMinutos  int     `json:"duracao_minutos"  validate:"required,gt=0"`
	Pessoas         int     `json:"pessoas"          validate:"required,gt=0"`
	Status          string  `json:"status"           validate:"omitempty,oneof=pendente confirmada"`
	Observacoes     *string `json:"observacoes"`
}

type AtualizarReservaRequest struct {
	NomeCliente     *string `json:"nome_cliente"     validate:"omitempty,min=2"`
	TelefoneCliente *string `json:"telefone_cliente" validate:"omitempty,min=8"`
	Data            *string `json:"data"             validate:"omitempty,datetime=2006-01-02"`
	Hora            *string `json:"hora"             validate:"omitempty,datetime=15:04"`
	DuracaoMinutos  *int    `json:"duracao_minutos"  validate:"omitempty,gt=0"`
	Pessoas         *int    `json:"pessoas"          validate:"omitempty,gt=0"`
	Status          *string `json:"status"           validate:"omitempty,oneof=pendente confirmada cancelada concluida nao_compareceu"`
	Observacoes     *string `json:"observacoes"`
}

type ReservaFilter struct {
	Data   string
	Status string
	MesaID string
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ReservaResponse struct {
	ID              string  `json:"id"`
	MesaID          string  `json:"mesa_id"`
	NomeCliente     string  `json:"nome_cliente"`
	TelefoneCliente string  `json:"telefone_cliente"`
	Data            string  `json:"data"`
	Hora            string  `json:"hora"`
	DuracaoMinutos  int     `json:"duracao_minutos"`
	Pessoas         int     `json:"pessoas"`
	Status          string  `json:"status"`
	Observacoes     *string `json:"observacoes,omitempty"`
	CriadaEm        string  `json:"criada_em"`
}
