// Package recordservice é a fachada de registros: liberações de material,
// estoque de fibras e listas administrativas. Ela aloca IDs de exibição,
// traduz os nomes de campos entre a API (camelCase) e o armazenamento
// (snake_case) e encaminha cada operação para o único backend ativo.
package recordservice

import (
	"context"
	"time"

	"github.com/juju/clock"

	"controlemat/internal/domain"
	"controlemat/internal/pkg/logger"
	"controlemat/internal/service/sequence"
)

// Allocator calcula o próximo ID de exibição de uma classe e impede que IDs
// de registros excluídos voltem a ser usados.
// *sequence.Allocator é a implementação padrão (leitura seguida de cálculo).
type Allocator interface {
	Allocate(ctx context.Context, kind domain.Kind, ref time.Time) (sequence.DisplayID, error)
	Retire(ctx context.Context, kind domain.Kind, ref time.Time, displayID string) error
}

// Service implementa a fachada sobre um domain.Backend.
type Service struct {
	store     domain.Backend
	allocator Allocator
	clock     clock.Clock
	location  *time.Location
	logger    logger.Logger
}

// NewService cria a fachada. loc é o fuso usado para decidir o mês dos IDs
// de exibição; nil equivale a UTC.
func NewService(store domain.Backend, allocator Allocator, clk clock.Clock, loc *time.Location, logger logger.Logger) *Service {
	if clk == nil {
		clk = clock.WallClock
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		store:     store,
		allocator: allocator,
		clock:     clk,
		location:  loc,
		logger:    logger,
	}
}

// now retorna o instante atual no fuso configurado.
func (s *Service) now() time.Time {
	return s.clock.Now().In(s.location)
}

// retire registra o ID de exibição de row no mês de escopo dela, para que não
// volte a ser alocado (exclusão, ou liberação movida para outro mês).
func (s *Service) retire(ctx context.Context, kind domain.Kind, row domain.Row) error {
	ref := row.CreatedAt.In(s.location)
	if kind == domain.KindRelease {
		day, err := time.ParseInLocation(domain.DateLayout, row.Fields["data"], s.location)
		if err != nil {
			// Sem data legível não há mês de escopo; nada a proteger.
			return nil
		}
		ref = day
	}
	if err := s.allocator.Retire(ctx, kind, ref, row.DisplayID); err != nil {
		s.logger.Error("Piso da sequência não foi gravado.", err)
		return err
	}
	return nil
}
