package memrepo

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"controlemat/internal/domain"
	apperror "controlemat/internal/errors"
)

// Repository é um backend em memória. Cada gravação recebe um número de ordem
// crescente, usado para desempatar registros criados no mesmo instante.
type Repository struct {
	mu       sync.Mutex
	rows     map[domain.Kind][]storedRow
	settings map[string][]byte
	nextSeq  int64
}

type storedRow struct {
	seq int64
	row domain.Row
}

// Verify interface compliance
var _ domain.Backend = (*Repository)(nil)

// NewRepository cria um backend em memória vazio.
func NewRepository() *Repository {
	return &Repository{
		rows:     make(map[domain.Kind][]storedRow),
		settings: make(map[string][]byte),
	}
}

func table(kind domain.Kind) (domain.Table, error) {
	t, ok := domain.TableFor(kind)
	if !ok {
		return domain.Table{}, apperror.NewValidationError(fmt.Sprintf("classe de registro desconhecida: %q", kind))
	}
	return t, nil
}

// Query retorna as linhas de kind cujo escopo cai em r, mais novas primeiro.
func (r *Repository) Query(ctx context.Context, kind domain.Kind, rng domain.DateRange) ([]domain.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperror.NewQueryError(fmt.Sprintf("consultar %s", kind), err)
	}
	t, err := table(kind)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []storedRow
	for _, sr := range r.rows[kind] {
		if inScope(t, sr.row, rng) {
			matched = append(matched, sr)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.row.CreatedAt.Equal(b.row.CreatedAt) {
			return a.row.CreatedAt.After(b.row.CreatedAt)
		}
		return a.seq > b.seq
	})

	out := make([]domain.Row, 0, len(matched))
	for _, sr := range matched {
		out = append(out, cloneRow(sr.row))
	}
	return out, nil
}

func inScope(t domain.Table, row domain.Row, rng domain.DateRange) bool {
	if rng.IsZero() {
		return true
	}
	if t.ScopedByCreation() {
		return !row.CreatedAt.Before(rng.From) && row.CreatedAt.Before(rng.To)
	}
	date := row.Fields[t.ScopeColumn]
	return date >= rng.From.Format(domain.DateLayout) && date < rng.To.Format(domain.DateLayout)
}

// Get retorna a linha com o id informado.
func (r *Repository) Get(ctx context.Context, kind domain.Kind, id string) (domain.Row, error) {
	if err := ctx.Err(); err != nil {
		return domain.Row{}, apperror.NewQueryError(fmt.Sprintf("ler %s", kind), err)
	}
	if _, err := table(kind); err != nil {
		return domain.Row{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, sr := range r.rows[kind] {
		if sr.row.ID == id {
			return cloneRow(sr.row), nil
		}
	}
	return domain.Row{}, apperror.NewNotFoundError(fmt.Sprintf("registro %s em %s não existe.", id, kind))
}

// Insert grava uma linha nova.
func (r *Repository) Insert(ctx context.Context, kind domain.Kind, row domain.Row) (domain.Row, error) {
	rows, err := r.InsertMany(ctx, kind, []domain.Row{row})
	if err != nil {
		return domain.Row{}, err
	}
	return rows[0], nil
}

// InsertMany grava todas as linhas ou nenhuma.
func (r *Repository) InsertMany(ctx context.Context, kind domain.Kind, rows []domain.Row) ([]domain.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperror.NewWriteError(fmt.Sprintf("inserir em %s", kind), err)
	}
	t, err := table(kind)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]bool, len(r.rows[kind])+len(rows))
	for _, sr := range r.rows[kind] {
		seen[sr.row.ID] = true
	}
	for _, row := range rows {
		if row.ID == "" || seen[row.ID] {
			return nil, apperror.NewWriteError(fmt.Sprintf("inserir em %s", kind), fmt.Errorf("id %q vazio ou duplicado", row.ID))
		}
		for col := range row.Fields {
			if !t.HasColumn(col) {
				return nil, apperror.NewWriteError(fmt.Sprintf("inserir em %s", kind), fmt.Errorf("coluna desconhecida %q", col))
			}
		}
		seen[row.ID] = true
	}

	out := make([]domain.Row, 0, len(rows))
	for _, row := range rows {
		r.nextSeq++
		stored := cloneRow(row)
		r.rows[kind] = append(r.rows[kind], storedRow{seq: r.nextSeq, row: stored})
		out = append(out, cloneRow(stored))
	}
	return out, nil
}

// Update sobrescreve as colunas de conteúdo informadas em patch.
func (r *Repository) Update(ctx context.Context, kind domain.Kind, id string, patch map[string]string) (domain.Row, error) {
	if err := ctx.Err(); err != nil {
		return domain.Row{}, apperror.NewWriteError(fmt.Sprintf("atualizar %s", kind), err)
	}
	t, err := table(kind)
	if err != nil {
		return domain.Row{}, err
	}
	for col := range patch {
		if !t.HasColumn(col) {
			return domain.Row{}, apperror.NewWriteError(fmt.Sprintf("atualizar %s", kind), fmt.Errorf("coluna desconhecida %q", col))
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, sr := range r.rows[kind] {
		if sr.row.ID != id {
			continue
		}
		for col, value := range patch {
			sr.row.Fields[col] = value
		}
		r.rows[kind][i] = sr
		return cloneRow(sr.row), nil
	}
	return domain.Row{}, apperror.NewNotFoundError(fmt.Sprintf("registro %s em %s não existe.", id, kind))
}

// Delete remove a linha com o id informado e a retorna.
func (r *Repository) Delete(ctx context.Context, kind domain.Kind, id string) (domain.Row, error) {
	if err := ctx.Err(); err != nil {
		return domain.Row{}, apperror.NewWriteError(fmt.Sprintf("excluir de %s", kind), err)
	}
	if _, err := table(kind); err != nil {
		return domain.Row{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rows := r.rows[kind]
	for i, sr := range rows {
		if sr.row.ID == id {
			r.rows[kind] = append(rows[:i:i], rows[i+1:]...)
			return sr.row, nil
		}
	}
	return domain.Row{}, apperror.NewNotFoundError(fmt.Sprintf("registro %s em %s não existe.", id, kind))
}

// GetSingleton retorna o valor gravado sob key, se existir.
func (r *Repository) GetSingleton(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, apperror.NewQueryError(fmt.Sprintf("ler configuração %s", key), err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	value, ok := r.settings[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

// PutSingleton substitui o valor gravado sob key.
func (r *Repository) PutSingleton(ctx context.Context, key string, value []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperror.NewWriteError(fmt.Sprintf("gravar configuração %s", key), err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings[key] = append([]byte(nil), value...)
	return append([]byte(nil), value...), nil
}

func cloneRow(row domain.Row) domain.Row {
	fields := make(map[string]string, len(row.Fields))
	for k, v := range row.Fields {
		fields[k] = v
	}
	row.Fields = fields
	return row
}
