package recordservice

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"controlemat/internal/domain"
	apperror "controlemat/internal/errors"
)

// checkRecordID exige um id no formato gerado na criação (UUID). Um id fora
// desse formato não pode existir em nenhum backend e vira NotFoundError.
func checkRecordID(kind domain.Kind, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperror.NewValidationError("id do registro é obrigatório.")
	}
	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewNotFoundError(fmt.Sprintf("registro %s em %s não existe.", id, kind))
	}
	return nil
}

// normalizeRelease valida o formato exigido pelo armazenamento e aplica os
// padrões. Retorna também a data civil já interpretada no fuso loc.
func normalizeRelease(in domain.ReleaseInput, loc *time.Location) (domain.ReleaseInput, time.Time, error) {
	in.Material = strings.TrimSpace(in.Material)
	in.Data = strings.TrimSpace(in.Data)
	in.SM = strings.TrimSpace(in.SM)

	if in.Material == "" {
		return in, time.Time{}, apperror.NewValidationError("material é obrigatório.")
	}
	day, err := time.ParseInLocation(domain.DateLayout, in.Data, loc)
	if err != nil {
		return in, time.Time{}, apperror.NewValidationError(fmt.Sprintf("data %q deve estar no formato AAAA-MM-DD.", in.Data))
	}
	if in.Status == "" {
		in.Status = domain.StatusPendente
	}
	if !in.Status.Valid() {
		return in, time.Time{}, apperror.NewValidationError(fmt.Sprintf("status %q desconhecido.", in.Status))
	}
	return in, day, nil
}

// normalizeFiber valida um item do estoque de fibras; qtd é reescrita na
// forma decimal canônica ("10,5" vira "10.5").
func normalizeFiber(in domain.FiberStockInput) (domain.FiberStockInput, error) {
	in.Material = strings.TrimSpace(in.Material)
	in.SM = strings.TrimSpace(in.SM)

	if in.Material == "" {
		return in, apperror.NewValidationError("material é obrigatório.")
	}

	qtd, err := normalizeQtd(in.Qtd)
	if err != nil {
		return in, err
	}
	in.Qtd = qtd

	if in.Status == "" {
		in.Status = domain.FiberEmEstoque
	}
	if !in.Status.Valid() {
		return in, apperror.NewValidationError(fmt.Sprintf("status %q desconhecido.", in.Status))
	}
	return in, nil
}

func normalizeQtd(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	d, err := decimal.NewFromString(strings.Replace(raw, ",", ".", 1))
	if err != nil {
		return "", apperror.NewValidationError(fmt.Sprintf("qtd %q não é numérica.", raw))
	}
	return d.String(), nil
}

// isHeaderRow reconhece a linha de cabeçalho de uma planilha exportada.
func isHeaderRow(in domain.FiberStockInput) bool {
	return strings.EqualFold(strings.TrimSpace(in.Material), "material")
}

// normalizeList apara, remove vazios e duplicados e ordena; nunca retorna nil.
func normalizeList(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
