// Package sequence calcula os IDs de exibição mensais ("10.1", "10.2", ...).
//
// A alocação é uma leitura seguida de um cálculo, sem reserva: duas criações
// simultâneas no mesmo mês podem receber o mesmo ID. Allocate não grava nada;
// quem o chama deve persistir o ID na mesma operação de criação.
//
// Exclusões não liberam sequências: Retire guarda, por classe e mês, o maior
// ID excluído (o "piso"), e Allocate nunca retorna um valor abaixo dele.
package sequence

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"controlemat/internal/domain"
	apperror "controlemat/internal/errors"
	"controlemat/internal/pkg/logger"
)

// Store é a parte da porta de armazenamento usada pelo Allocator.
type Store interface {
	Query(ctx context.Context, kind domain.Kind, r domain.DateRange) ([]domain.Row, error)
	GetSingleton(ctx context.Context, key string) ([]byte, bool, error)
	PutSingleton(ctx context.Context, key string, value []byte) ([]byte, error)
}

// Allocator calcula o próximo ID de exibição de uma classe dentro do mês
// da data de referência.
type Allocator struct {
	store  Store
	logger logger.Logger
}

// NewAllocator cria um Allocator sobre a porta de armazenamento informada.
func NewAllocator(store Store, logger logger.Logger) *Allocator {
	return &Allocator{store: store, logger: logger}
}

// Allocate retorna "<mês>.<maior sequência do mês + 1>" para kind, no mês e ano
// de ref (no fuso de ref), respeitando o piso das exclusões. Falhas de leitura
// retornam QueryError.
func (a *Allocator) Allocate(ctx context.Context, kind domain.Kind, ref time.Time) (DisplayID, error) {
	if _, ok := domain.TableFor(kind); !ok {
		return DisplayID{}, apperror.NewValidationError(fmt.Sprintf("classe de registro desconhecida: %q", kind))
	}

	scope := domain.MonthRange(ref)
	month := int(ref.Month())

	rows, err := a.store.Query(ctx, kind, scope)
	if err != nil {
		a.logger.Error("Falha ao consultar registros para alocar ID de exibição.", err)
		var queryErr *apperror.QueryError
		if errors.As(err, &queryErr) {
			return DisplayID{}, err
		}
		return DisplayID{}, apperror.NewQueryError(fmt.Sprintf("consultar %s de %02d/%d", kind, month, ref.Year()), err)
	}

	floor, err := a.floor(ctx, kind, ref)
	if err != nil {
		return DisplayID{}, err
	}

	max := MaxSequence(rows, month)
	if floor > max {
		max = floor
	}
	next := DisplayID{Month: month, Sequence: max + 1}

	a.logger.Debug("ID de exibição alocado.", map[string]interface{}{
		"kind":       string(kind),
		"display_id": next.String(),
		"scanned":    len(rows),
		"floor":      floor,
	})
	return next, nil
}

// Retire registra que o ID de exibição de um registro excluído não pode
// voltar a ser alocado. ref é a data de escopo do registro; IDs malformados
// ou de outro mês são ignorados.
func (a *Allocator) Retire(ctx context.Context, kind domain.Kind, ref time.Time, displayID string) error {
	id, ok := ParseDisplayID(displayID)
	if !ok || id.Month != int(ref.Month()) {
		return nil
	}

	floor, err := a.floor(ctx, kind, ref)
	if err != nil {
		return err
	}
	if id.Sequence <= floor {
		return nil
	}

	key := FloorKey(kind, ref)
	if _, err := a.store.PutSingleton(ctx, key, []byte(strconv.Itoa(id.Sequence))); err != nil {
		a.logger.Error("Falha ao gravar piso da sequência.", err)
		return err
	}
	a.logger.Debug("Piso da sequência atualizado.", map[string]interface{}{"key": key, "floor": id.Sequence})
	return nil
}

// FloorKey é a chave do piso de kind no mês de ref.
func FloorKey(kind domain.Kind, ref time.Time) string {
	return fmt.Sprintf("display_id_floor:%s:%04d-%02d", kind, ref.Year(), int(ref.Month()))
}

// floor lê o piso do mês. Valor ausente ou ilegível vale zero.
func (a *Allocator) floor(ctx context.Context, kind domain.Kind, ref time.Time) (int, error) {
	raw, found, err := a.store.GetSingleton(ctx, FloorKey(kind, ref))
	if err != nil {
		a.logger.Error("Falha ao ler piso da sequência.", err)
		var queryErr *apperror.QueryError
		if errors.As(err, &queryErr) {
			return 0, err
		}
		return 0, apperror.NewQueryError(fmt.Sprintf("ler piso de %s", kind), err)
	}
	if !found {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil || n < 0 {
		a.logger.Warn("Piso da sequência ilegível; ignorado.", map[string]interface{}{"kind": string(kind), "value": string(raw)})
		return 0, nil
	}
	return n, nil
}

// MaxSequence retorna a maior sequência de month entre os IDs das linhas.
// IDs malformados ou de outro mês contribuem com zero.
func MaxSequence(rows []domain.Row, month int) int {
	max := 0
	for _, row := range rows {
		id, ok := ParseDisplayID(row.DisplayID)
		if !ok || id.Month != month {
			continue
		}
		if id.Sequence > max {
			max = id.Sequence
		}
	}
	return max
}
