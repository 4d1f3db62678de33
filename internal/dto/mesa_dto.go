package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarMesaRequest struct {
	Numero      int     `json:"numero"      validate:"required,min=1"`
	Capacidade  int     `json:"capacidade"  validate:"required,gt=0"`
	Localizacao *string `json:"localizacao"`
}

type AtualizarMesaRequest struct {
	Numero      *int    `json:"numero"      validate:"omitempty,min=1"`
	Capacidade  *int    `json:"capacidade"  validate:"omitempty,gt=0"`
	Localizacao *string `json:"localizacao"`
}

type AtualizarStatusMesaRequest struct {
	Status string `json:"status" validate:"required,oneof=disponivel ocupada reservada"`
}

// UnirMesasRequest merges the listed mesas into the principal one.
type UnirMesasRequest struct {
	MesaPrincipalID string   `json:"mesa_principal_id" validate:"required,uuid"`
	MesaIDs         []string `json:"mesa_ids"          validate:"required,min=1,dive,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MesaResponse struct {
	ID                 string  `json:"id"`
	Numero             int     `json:"numero"`
	Capacidade         int     `json:"capacidade"`
	CapacidadeOriginal *int    `json:"capacidade_original,omitempty"`
	Status             string  `json:"status"`
	UnidaCom           *string `json:"unida_com,omitempty"`
	Localizacao        *string `json:"localizacao,omitempty"`
}
