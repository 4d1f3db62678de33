package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarProdutoRequest struct {
	Nome        string          `json:"nome"         validate:"required,min=2"`
	Descricao   *string         `json:"descricao"`
	CategoriaID *string         `json:"categoria_id" validate:"omitempty,uuid"`
	Preco       decimal.Decimal `json:"preco"        validate:"required,gt=0"`
}

type AtualizarProdutoRequest struct {
	Nome        *string          `json:"nome"         validate:"omitempty,min=2"`
	Descricao   *string          `json:"descricao"`
	CategoriaID *string          `json:"categoria_id" validate:"omitempty,uuid"`
	Preco       *decimal.Decimal `json:"preco"        validate:"omitempty,gt=0"`
	Disponivel  *bool            `json:"disponivel"`
}

type CategoriaRequest struct {
	Nome      string  `json:"nome" validate:"required,min=2"`
	Descricao *string `json:"descricao"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProdutoResponse struct {
	ID         string          `json:"id"`
	Nome       string          `json:"nome"`
	Descricao  *string         `json:"descricao,omitempty"`
	Categoria  *string         `json:"categoria,omitempty"`
	Preco      decimal.Decimal `json:"preco"`
	Disponivel bool            `json:"disponivel"`
}

type CategoriaResponse struct {
	ID        string  `json:"id"`
	Nome      string  `json:"nome"`
	Descricao *string `json:"descricao,omitempty"`
	Ativa     bool    `json:"ativa"`
}
