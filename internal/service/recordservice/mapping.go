package recordservice

import (
	"strings"

	"controlemat/internal/domain"
)

// Conversões entre os registros da API e as linhas do armazenamento.

func releaseFields(in domain.ReleaseInput) map[string]string {
	return map[string]string{
		"material":         in.Material,
		"operador":         in.Operador,
		"rua":              in.Rua,
		"local_de_entrega": in.LocalDeEntrega,
		"data":             in.Data,
		"status":           string(in.Status),
		"sm":               in.SM,
	}
}

func rowToRelease(row domain.Row) domain.Release {
	f := row.Fields
	return domain.Release{
		ID:             row.ID,
		DisplayID:      row.DisplayID,
		Material:       f["material"],
		Operador:       f["operador"],
		Rua:            f["rua"],
		LocalDeEntrega: f["local_de_entrega"],
		Data:           f["data"],
		Status:         domain.ReleaseStatus(f["status"]),
		SM:             f["sm"],
		CreatedAt:      row.CreatedAt,
	}
}

func releaseInputOf(r domain.Release) domain.ReleaseInput {
	return domain.ReleaseInput{
		Material:       r.Material,
		Operador:       r.Operador,
		Rua:            r.Rua,
		LocalDeEntrega: r.LocalDeEntrega,
		Data:           r.Data,
		Status:         r.Status,
		SM:             r.SM,
	}
}

func fiberFields(in domain.FiberStockInput) map[string]string {
	return map[string]string{
		"material":   in.Material,
		"lote":       in.Lote,
		"qtd":        in.Qtd,
		"prateleira": in.Prateleira,
		"rua":        in.Rua,
		"sala":       in.Sala,
		"status":     string(in.Status),
		"sm":         in.SM,
	}
}

func rowToFiberItem(row domain.Row) domain.FiberStockItem {
	f := row.Fields
	return domain.FiberStockItem{
		ID:         row.ID,
		DisplayID:  row.DisplayID,
		Material:   f["material"],
		Lote:       f["lote"],
		Qtd:        f["qtd"],
		Prateleira: f["prateleira"],
		Rua:        f["rua"],
		Sala:       f["sala"],
		Status:     domain.FiberStatus(f["status"]),
		SM:         f["sm"],
		CreatedAt:  row.CreatedAt,
	}
}

func fiberInputOf(item domain.FiberStockItem) domain.FiberStockInput {
	return domain.FiberStockInput{
		Material:   item.Material,
		Lote:       item.Lote,
		Qtd:        item.Qtd,
		Prateleira: item.Prateleira,
		Rua:        item.Rua,
		Sala:       item.Sala,
		Status:     item.Status,
		SM:         item.SM,
	}
}

// matches informa se algum dos valores contém q, sem diferenciar maiúsculas.
// q já deve vir em minúsculas.
func matches(q string, values ...string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}
