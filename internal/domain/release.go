package domain

import "time"

// ReleaseStatus é a situação de uma liberação de material.
type ReleaseStatus string

const (
	StatusPendente   ReleaseStatus = "MATERIAL ENTREGUE - PENDENTE"
	StatusFinalizado ReleaseStatus = "MATERIAL PAGO - FINALIZADO"
)

// Valid informa se o valor é uma situação conhecida.
func (s ReleaseStatus) Valid() bool {
	return s == StatusPendente || s == StatusFinalizado
}

// Release representa uma liberação de material.
// ID e DisplayID são atribuídos na criação e nunca mudam.
type Release struct {
	ID             string        `json:"id"`
	DisplayID      string        `json:"displayId"`
	Material       string        `json:"material"`
	Operador       string        `json:"operador"`
	Rua            string        `json:"rua"`
	LocalDeEntrega string        `json:"localDeEntrega"`
	Data           string        `json:"data" example:"2026-10-18"` // YYYY-MM-DD
	Status         ReleaseStatus `json:"status"`
	SM             string        `json:"sm"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// ReleaseInput é o payload de criação de uma liberação (sem identificadores).
type ReleaseInput struct {
	Material       string        `json:"material"`
	Operador       string        `json:"operador"`
	Rua            string        `json:"rua"`
	LocalDeEntrega string        `json:"localDeEntrega"`
	Data           string        `json:"data" example:"2026-10-18"`
	Status         ReleaseStatus `json:"status"`
	SM             string        `json:"sm"`
}
