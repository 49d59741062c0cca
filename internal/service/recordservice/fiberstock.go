package recordservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"controlemat/internal/domain"
	apperror "controlemat/internal/errors"
)

// ListFiberStock retorna todos os itens, dos mais novos para os mais antigos.
func (s *Service) ListFiberStock(ctx context.Context) ([]domain.FiberStockItem, error) {
	rows, err := s.store.Query(ctx, domain.KindFiberStock, domain.DateRange{})
	if err != nil {
		s.logger.Error("Falha ao listar estoque de fibras.", err)
		return nil, err
	}

	items := make([]domain.FiberStockItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, rowToFiberItem(row))
	}
	return items, nil
}

// SearchFiberStock filtra a listagem por substring em qualquer campo exibido.
func (s *Service) SearchFiberStock(ctx context.Context, q string) ([]domain.FiberStockItem, error) {
	items, err := s.ListFiberStock(ctx)
	q = strings.ToLower(strings.TrimSpace(q))
	if err != nil || q == "" {
		return items, err
	}

	filtered := make([]domain.FiberStockItem, 0, len(items))
	for _, it := range items {
		if matches(q, it.DisplayID, it.Material, it.Lote, it.Qtd, it.Prateleira, it.Rua, it.Sala, string(it.Status), it.SM) {
			filtered = append(filtered, it)
		}
	}
	return filtered, nil
}

// CreateFiberStockItem aloca o ID de exibição no mês corrente e grava o item.
func (s *Service) CreateFiberStockItem(ctx context.Context, in domain.FiberStockInput) (domain.FiberStockItem, error) {
	in, err := normalizeFiber(in)
	if err != nil {
		return domain.FiberStockItem{}, err
	}

	now := s.now()
	displayID, err := s.allocator.Allocate(ctx, domain.KindFiberStock, now)
	if err != nil {
		s.logger.Error("Criação de item abortada: falha na alocação do ID de exibição.", err)
		return domain.FiberStockItem{}, err
	}

	saved, err := s.store.Insert(ctx, domain.KindFiberStock, domain.Row{
		ID:        uuid.New().String(),
		DisplayID: displayID.String(),
		CreatedAt: now.UTC(),
		Fields:    fiberFields(in),
	})
	if err != nil {
		s.logger.Error("Falha ao gravar item do estoque; o ID de exibição fica sem uso.", err)
		return domain.FiberStockItem{}, err
	}

	s.logger.Info("Item do estoque de fibras criado.", map[string]interface{}{"id": saved.ID, "display_id": saved.DisplayID})
	return rowToFiberItem(saved), nil
}

// ImportFiberStockItems grava um lote com uma única alocação: os itens recebem
// sequências contíguas na ordem de entrada. Uma linha inválida rejeita o lote
// inteiro antes de qualquer leitura ou escrita.
func (s *Service) ImportFiberStockItems(ctx context.Context, inputs []domain.FiberStockInput) ([]domain.FiberStockItem, error) {
	if len(inputs) > 0 && isHeaderRow(inputs[0]) {
		inputs = inputs[1:]
	}
	if len(inputs) == 0 {
		return []domain.FiberStockItem{}, nil
	}

	normalized := make([]domain.FiberStockInput, len(inputs))
	for i, in := range inputs {
		n, err := normalizeFiber(in)
		if err != nil {
			var v *apperror.ValidationError
			if errors.As(err, &v) {
				return nil, apperror.NewValidationError(fmt.Sprintf("linha %d: %s", i+1, v.Msg))
			}
			return nil, err
		}
		normalized[i] = n
	}

	now := s.now()
	first, err := s.allocator.Allocate(ctx, domain.KindFiberStock, now)
	if err != nil {
		s.logger.Error("Importação abortada: falha na alocação do ID de exibição.", err)
		return nil, err
	}

	createdAt := now.UTC()
	rows := make([]domain.Row, len(normalized))
	for i, in := range normalized {
		rows[i] = domain.Row{
			ID:        uuid.New().String(),
			DisplayID: first.Offset(i).String(),
			CreatedAt: createdAt,
			Fields:    fiberFields(in),
		}
	}

	saved, err := s.store.InsertMany(ctx, domain.KindFiberStock, rows)
	if err != nil {
		s.logger.Error("Falha ao gravar lote importado.", err)
		return nil, err
	}

	items := make([]domain.FiberStockItem, 0, len(saved))
	for _, row := range saved {
		items = append(items, rowToFiberItem(row))
	}
	s.logger.Info("Importação do estoque de fibras concluída.", map[string]interface{}{
		"total": len(items),
		"first": first.String(),
	})
	return items, nil
}

// UpdateFiberStockItem sobrescreve os campos editáveis do item.
func (s *Service) UpdateFiberStockItem(ctx context.Context, item domain.FiberStockItem) (domain.FiberStockItem, error) {
	if err := checkRecordID(domain.KindFiberStock, item.ID); err != nil {
		return domain.FiberStockItem{}, err
	}
	in, err := normalizeFiber(fiberInputOf(item))
	if err != nil {
		return domain.FiberStockItem{}, err
	}

	saved, err := s.store.Update(ctx, domain.KindFiberStock, item.ID, fiberFields(in))
	if err != nil {
		s.logger.Error("Falha ao atualizar item do estoque.", err)
		return domain.FiberStockItem{}, err
	}

	s.logger.Info("Item do estoque de fibras atualizado.", map[string]interface{}{"id": saved.ID})
	return rowToFiberItem(saved), nil
}

// DeleteFiberStockItem remove o item. O ID de exibição não é reutilizado.
func (s *Service) DeleteFiberStockItem(ctx context.Context, id string) error {
	if err := checkRecordID(domain.KindFiberStock, id); err != nil {
		return err
	}
	deleted, err := s.store.Delete(ctx, domain.KindFiberStock, id)
	if err != nil {
		s.logger.Error("Falha ao excluir item do estoque.", err)
		return err
	}
	s.logger.Info("Item do estoque de fibras excluído.", map[string]interface{}{"id": id, "display_id": deleted.DisplayID})
	return s.retire(ctx, domain.KindFiberStock, deleted)
}
