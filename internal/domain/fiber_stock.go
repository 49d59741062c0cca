package domain

import "time"

// FiberStatus é a situação de um item do estoque de fibras.
type FiberStatus string

const (
	FiberEmEstoque FiberStatus = "EM ESTOQUE"
	FiberPago      FiberStatus = "MATERIAL PAGO"
)

// Valid informa se o valor é uma situação conhecida.
func (s FiberStatus) Valid() bool {
	return s == FiberEmEstoque || s == FiberPago
}

// FiberStockItem representa um item do estoque de fibras.
type FiberStockItem struct {
	ID         string      `json:"id"`
	DisplayID  string      `json:"displayId"`
	Material   string      `json:"material"`
	Lote       string      `json:"lote"`
	Qtd        string      `json:"qtd" example:"12.5"` // quantidade numérica em texto
	Prateleira string      `json:"prateleira"`
	Rua        string      `json:"rua"`
	Sala       string      `json:"sala"`
	Status     FiberStatus `json:"status"`
	SM         string      `json:"sm"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// FiberStockInput é o payload de criação/importação de um item (sem identificadores).
type FiberStockInput struct {
	Material   string      `json:"material"`
	Lote       string      `json:"lote"`
	Qtd        string      `json:"qtd"`
	Prateleira string      `json:"prateleira"`
	Rua        string      `json:"rua"`
	Sala       string      `json:"sala"`
	Status     FiberStatus `json:"status"`
	SM         string      `json:"sm"`
}
