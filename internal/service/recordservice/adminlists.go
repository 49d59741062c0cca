package recordservice

import (
	"context"
	"encoding/json"

	"controlemat/internal/domain"
	apperror "controlemat/internal/errors"
)

// GetAdminLists retorna as listas administrativas. Na primeira leitura as
// listas padrão são gravadas e retornadas.
func (s *Service) GetAdminLists(ctx context.Context) (domain.AdminLists, error) {
	raw, found, err := s.store.GetSingleton(ctx, domain.AdminListsKey)
	if err != nil {
		s.logger.Error("Falha ao ler listas administrativas.", err)
		return domain.AdminLists{}, err
	}

	if !found {
		s.logger.Info("Listas administrativas ausentes; gravando padrões.", nil)
		return s.putAdminLists(ctx, domain.DefaultAdminLists())
	}

	var lists domain.AdminLists
	if err := json.Unmarshal(raw, &lists); err != nil {
		s.logger.Error("Listas administrativas gravadas estão corrompidas.", err)
		return domain.AdminLists{}, apperror.NewInternalError("listas administrativas ilegíveis", err)
	}
	return withEmptyLists(lists), nil
}

// SaveAdminLists substitui o registro inteiro (sem mesclar). As listas são
// aparadas, sem vazios nem duplicados, e ordenadas.
func (s *Service) SaveAdminLists(ctx context.Context, lists domain.AdminLists) (domain.AdminLists, error) {
	return s.putAdminLists(ctx, domain.AdminLists{
		Operadores:      normalizeList(lists.Operadores),
		Ruas:            normalizeList(lists.Ruas),
		LocaisDeEntrega: normalizeList(lists.LocaisDeEntrega),
	})
}

func (s *Service) putAdminLists(ctx context.Context, lists domain.AdminLists) (domain.AdminLists, error) {
	raw, err := json.Marshal(lists)
	if err != nil {
		return domain.AdminLists{}, apperror.NewInternalError("serializar listas administrativas", err)
	}
	if _, err := s.store.PutSingleton(ctx, domain.AdminListsKey, raw); err != nil {
		s.logger.Error("Falha ao gravar listas administrativas.", err)
		return domain.AdminLists{}, err
	}

	s.logger.Info("Listas administrativas gravadas.", map[string]interface{}{
		"operadores":        len(lists.Operadores),
		"ruas":              len(lists.Ruas),
		"locais_de_entrega": len(lists.LocaisDeEntrega),
	})
	return lists, nil
}

func withEmptyLists(l domain.AdminLists) domain.AdminLists {
	if l.Operadores == nil {
		l.Operadores = []string{}
	}
	if l.Ruas == nil {
		l.Ruas = []string{}
	}
	if l.LocaisDeEntrega == nil {
		l.LocaisDeEntrega = []string{}
	}
	return l
}
