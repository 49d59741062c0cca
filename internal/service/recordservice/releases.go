package recordservice

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"controlemat/internal/domain"
)

// ListReleases retorna todas as liberações, das mais novas para as mais antigas.
func (s *Service) ListReleases(ctx context.Context) ([]domain.Release, error) {
	rows, err := s.store.Query(ctx, domain.KindRelease, domain.DateRange{})
	if err != nil {
		s.logger.Error("Falha ao listar liberações.", err)
		return nil, err
	}

	releases := make([]domain.Release, 0, len(rows))
	for _, row := range rows {
		releases = append(releases, rowToRelease(row))
	}
	return releases, nil
}

// SearchReleases filtra a listagem por substring (sem diferenciar maiúsculas)
// em qualquer campo exibido. q vazio equivale a ListReleases.
func (s *Service) SearchReleases(ctx context.Context, q string) ([]domain.Release, error) {
	releases, err := s.ListReleases(ctx)
	q = strings.ToLower(strings.TrimSpace(q))
	if err != nil || q == "" {
		return releases, err
	}

	filtered := make([]domain.Release, 0, len(releases))
	for _, r := range releases {
		if matches(q, r.DisplayID, r.Material, r.Operador, r.Rua, r.LocalDeEntrega, r.Data, string(r.Status), r.SM) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// CreateRelease aloca o ID de exibição no mês de in.Data e grava a liberação.
// Se a alocação falhar nada é gravado.
func (s *Service) CreateRelease(ctx context.Context, in domain.ReleaseInput) (domain.Release, error) {
	in, day, err := normalizeRelease(in, s.location)
	if err != nil {
		return domain.Release{}, err
	}

	displayID, err := s.allocator.Allocate(ctx, domain.KindRelease, day)
	if err != nil {
		s.logger.Error("Criação de liberação abortada: falha na alocação do ID de exibição.", err)
		return domain.Release{}, err
	}

	row := domain.Row{
		ID:        uuid.New().String(),
		DisplayID: displayID.String(),
		CreatedAt: s.clock.Now().UTC(),
		Fields:    releaseFields(in),
	}

	saved, err := s.store.Insert(ctx, domain.KindRelease, row)
	if err != nil {
		s.logger.Error("Falha ao gravar liberação; o ID de exibição fica sem uso.", err)
		return domain.Release{}, err
	}

	s.logger.Info("Liberação criada.", map[string]interface{}{"id": saved.ID, "display_id": saved.DisplayID})
	return rowToRelease(saved), nil
}

// UpdateRelease sobrescreve os campos editáveis da liberação r.ID.
// ID, ID de exibição e data de criação nunca mudam. Se a nova data cai em
// outro mês, o ID de exibição é aposentado no mês antigo antes da gravação.
func (s *Service) UpdateRelease(ctx context.Context, r domain.Release) (domain.Release, error) {
	if err := checkRecordID(domain.KindRelease, r.ID); err != nil {
		return domain.Release{}, err
	}
	in, day, err := normalizeRelease(releaseInputOf(r), s.location)
	if err != nil {
		return domain.Release{}, err
	}

	current, err := s.store.Get(ctx, domain.KindRelease, r.ID)
	if err != nil {
		s.logger.Error("Falha ao ler liberação antes da atualização.", err)
		return domain.Release{}, err
	}
	if !sameMonth(current.Fields["data"], day) {
		if err := s.retire(ctx, domain.KindRelease, current); err != nil {
			return domain.Release{}, err
		}
	}

	saved, err := s.store.Update(ctx, domain.KindRelease, r.ID, releaseFields(in))
	if err != nil {
		s.logger.Error("Falha ao atualizar liberação.", err)
		return domain.Release{}, err
	}

	s.logger.Info("Liberação atualizada.", map[string]interface{}{"id": saved.ID})
	return rowToRelease(saved), nil
}

// sameMonth informa se a data civil stored (AAAA-MM-DD) está no mês e ano de day.
func sameMonth(stored string, day time.Time) bool {
	return strings.HasPrefix(stored, day.Format("2006-01"))
}

// DeleteRelease remove a liberação. O ID de exibição não é reutilizado.
func (s *Service) DeleteRelease(ctx context.Context, id string) error {
	if err := checkRecordID(domain.KindRelease, id); err != nil {
		return err
	}
	deleted, err := s.store.Delete(ctx, domain.KindRelease, id)
	if err != nil {
		s.logger.Error("Falha ao excluir liberação.", err)
		return err
	}
	s.logger.Info("Liberação excluída.", map[string]interface{}{"id": id, "display_id": deleted.DisplayID})
	return s.retire(ctx, domain.KindRelease, deleted)
}
