package sqlrepo

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"controlemat/internal/domain"
	"controlemat/internal/errors"
	"controlemat/internal/pkg/logger"
)

// Repository implementa domain.Backend sobre database/sql.
// O mesmo código atende o PostgreSQL remoto e o SQLite local; o Dialect
// resolve placeholders e o tipo de created_at.
type Repository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	dialect   Dialect
	logger    logger.Logger
}

// Verify interface compliance
var _ domain.Backend = (*Repository)(nil)

// NewPostgresRepository cria o backend remoto (tabelas no PostgreSQL).
func NewPostgresRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *Repository {
	return &Repository{DB: db, DBTimeout: dbTimeout, dialect: Postgres, logger: logger}
}

// NewSQLiteRepository cria o backend local embarcado (arquivo SQLite).
func NewSQLiteRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *Repository {
	return &Repository{DB: db, DBTimeout: dbTimeout, dialect: SQLite, logger: logger}
}

func (r *Repository) table(kind domain.Kind) (domain.Table, error) {
	t, ok := domain.TableFor(kind)
	if !ok {
		return domain.Table{}, errors.NewValidationError(fmt.Sprintf("classe de registro desconhecida: %q", kind))
	}
	return t, nil
}

// selectColumns retorna a lista de colunas na ordem usada por scanRow.
func selectColumns(t domain.Table) string {
	cols := append([]string{domain.ColumnID, domain.ColumnDisplayID, domain.ColumnCreatedAt}, t.Columns...)
	return strings.Join(cols, ", ")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRow(t domain.Table, s rowScanner) (domain.Row, error) {
	var (
		row       domain.Row
		createdAt timestamp
	)
	values := make([]string, len(t.Columns))
	dest := []interface{}{&row.ID, &row.DisplayID, &createdAt}
	for i := range values {
		dest = append(dest, &values[i])
	}
	if err := s.Scan(dest...); err != nil {
		return domain.Row{}, err
	}
	row.CreatedAt = createdAt.Time
	row.Fields = make(map[string]string, len(t.Columns))
	for i, col := range t.Columns {
		row.Fields[col] = values[i]
	}
	return row, nil
}

// Query busca as linhas de kind cujo escopo cai em rng, mais novas primeiro.
func (r *Repository) Query(ctx context.Context, kind domain.Kind, rng domain.DateRange) ([]domain.Row, error) {
	t, err := r.table(kind)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("Consultando registros no repositório.", map[string]interface{}{"kind": string(kind), "from": rng.From, "to": rng.To})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := fmt.Sprintf("SELECT %s FROM %s", selectColumns(t), t.Name)
	var args []interface{}
	if !rng.IsZero() {
		query += fmt.Sprintf(" WHERE %s >= %s AND %s < %s",
			t.ScopeColumn, r.dialect.Placeholder(1), t.ScopeColumn, r.dialect.Placeholder(2))
		if t.ScopedByCreation() {
			args = append(args, r.dialect.EncodeTime(rng.From), r.dialect.EncodeTime(rng.To))
		} else {
			args = append(args, rng.From.Format(domain.DateLayout), rng.To.Format(domain.DateLayout))
		}
	}
	query += " ORDER BY created_at DESC, seq DESC"

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error("Falha ao executar consulta de registros.", err)
		return nil, errors.NewQueryError(fmt.Sprintf("consultar %s", t.Name), err)
	}
	defer rows.Close()

	var out []domain.Row
	for rows.Next() {
		row, err := scanRow(t, rows)
		if err != nil {
			r.logger.Error("Falha ao mapear registro na consulta.", err)
			return nil, errors.NewQueryError(fmt.Sprintf("mapear %s", t.Name), err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas.", err)
		return nil, errors.NewQueryError(fmt.Sprintf("iterar %s", t.Name), err)
	}

	r.logger.Debug("Consulta de registros concluída.", map[string]interface{}{"kind": string(kind), "total": len(out)})
	return out, nil
}

// Get busca uma linha pelo id.
func (r *Repository) Get(ctx context.Context, kind domain.Kind, id string) (domain.Row, error) {
	t, err := r.table(kind)
	if err != nil {
		return domain.Row{}, err
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = %s", selectColumns(t), t.Name, r.dialect.Placeholder(1))
	row, err := scanRow(t, r.DB.QueryRowContext(ctxTimeout, query, id))
	if err == sql.ErrNoRows {
		return domain.Row{}, errors.NewNotFoundError(fmt.Sprintf("registro %s em %s não existe.", id, t.Name))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar registro por id.", err)
		return domain.Row{}, errors.NewQueryError(fmt.Sprintf("ler %s", t.Name), err)
	}
	return row, nil
}

func (r *Repository) insertSQL(t domain.Table) string {
	cols := append([]string{domain.ColumnID, domain.ColumnDisplayID, domain.ColumnCreatedAt}, t.Columns...)
	marks := make([]string, len(cols))
	for i := range cols {
		marks[i] = r.dialect.Placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		t.Name, strings.Join(cols, ", "), strings.Join(marks, ", "), selectColumns(t))
}

func (r *Repository) insertArgs(t domain.Table, row domain.Row) []interface{} {
	args := []interface{}{row.ID, row.DisplayID, r.dialect.EncodeTime(row.CreatedAt)}
	for _, col := range t.Columns {
		args = append(args, row.Fields[col])
	}
	return args
}

func checkColumns(t domain.Table, fields map[string]string) error {
	for col := range fields {
		if !t.HasColumn(col) {
			return fmt.Errorf("coluna desconhecida %q em %s", col, t.Name)
		}
	}
	return nil
}

// Insert grava uma linha nova e retorna a linha persistida.
func (r *Repository) Insert(ctx context.Context, kind domain.Kind, row domain.Row) (domain.Row, error) {
	t, err := r.table(kind)
	if err != nil {
		return domain.Row{}, err
	}
	if err := checkColumns(t, row.Fields); err != nil {
		return domain.Row{}, errors.NewWriteError(fmt.Sprintf("inserir em %s", t.Name), err)
	}
	r.logger.Debug("Inserindo registro no repositório.", map[string]interface{}{"kind": string(kind), "id": row.ID, "display_id": row.DisplayID})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	saved, err := scanRow(t, r.DB.QueryRowContext(ctxTimeout, r.insertSQL(t), r.insertArgs(t, row)...))
	if err != nil {
		r.logger.Error("Falha ao inserir registro no DB.", err)
		return domain.Row{}, errors.NewWriteError(fmt.Sprintf("inserir em %s", t.Name), err)
	}

	r.logger.Info("Registro inserido com sucesso.", map[string]interface{}{"kind": string(kind), "id": saved.ID, "display_id": saved.DisplayID})
	return saved, nil
}

// InsertMany grava todas as linhas numa única transação.
func (r *Repository) InsertMany(ctx context.Context, kind domain.Kind, rows []domain.Row) ([]domain.Row, error) {
	t, err := r.table(kind)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := checkColumns(t, row.Fields); err != nil {
			return nil, errors.NewWriteError(fmt.Sprintf("inserir em %s", t.Name), err)
		}
	}
	r.logger.Debug("Iniciando inserção em lote no repositório.", map[string]interface{}{"kind": string(kind), "total": len(rows)})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	tx, err := r.DB.BeginTx(ctxTimeout, nil)
	if err != nil {
		r.logger.Error("Falha ao iniciar transação de inserção em lote.", err)
		return nil, errors.NewWriteError("iniciar transação", err)
	}
	defer tx.Rollback() // Sem efeito após o Commit

	query := r.insertSQL(t)
	saved := make([]domain.Row, 0, len(rows))
	for i, row := range rows {
		s, err := scanRow(t, tx.QueryRowContext(ctxTimeout, query, r.insertArgs(t, row)...))
		if err != nil {
			r.logger.Error("Falha ao inserir linha do lote.", err)
			return nil, errors.NewWriteError(fmt.Sprintf("inserir linha %d em %s", i+1, t.Name), err)
		}
		saved = append(saved, s)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Falha ao commitar transação de inserção em lote.", err)
		return nil, errors.NewWriteError("commitar transação", err)
	}

	r.logger.Info("Inserção em lote concluída.", map[string]interface{}{"kind": string(kind), "total": len(saved)})
	return saved, nil
}

// Update sobrescreve as colunas informadas em patch; id, display_id e
// created_at nunca são alterados.
func (r *Repository) Update(ctx context.Context, kind domain.Kind, id string, patch map[string]string) (domain.Row, error) {
	t, err := r.table(kind)
	if err != nil {
		return domain.Row{}, err
	}
	if err := checkColumns(t, patch); err != nil {
		return domain.Row{}, errors.NewWriteError(fmt.Sprintf("atualizar %s", t.Name), err)
	}
	r.logger.Debug("Atualizando registro no repositório.", map[string]interface{}{"kind": string(kind), "id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	cols := make([]string, 0, len(patch))
	for col := range patch {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	var (
		query string
		args  []interface{}
	)
	if len(cols) == 0 {
		query = fmt.Sprintf("SELECT %s FROM %s WHERE id = %s", selectColumns(t), t.Name, r.dialect.Placeholder(1))
		args = []interface{}{id}
	} else {
		sets := make([]string, len(cols))
		for i, col := range cols {
			sets[i] = fmt.Sprintf("%s = %s", col, r.dialect.Placeholder(i+1))
			args = append(args, patch[col])
		}
		args = append(args, id)
		query = fmt.Sprintf("UPDATE %s SET %s WHERE id = %s RETURNING %s",
			t.Name, strings.Join(sets, ", "), r.dialect.Placeholder(len(cols)+1), selectColumns(t))
	}

	saved, err := scanRow(t, r.DB.QueryRowContext(ctxTimeout, query, args...))
	if err == sql.ErrNoRows {
		r.logger.Info("Registro não encontrado para atualização.", map[string]interface{}{"kind": string(kind), "id": id})
		return domain.Row{}, errors.NewNotFoundError(fmt.Sprintf("registro %s em %s não existe.", id, t.Name))
	}
	if err != nil {
		r.logger.Error("Falha ao atualizar registro no DB.", err)
		return domain.Row{}, errors.NewWriteError(fmt.Sprintf("atualizar %s", t.Name), err)
	}

	r.logger.Info("Registro atualizado com sucesso.", map[string]interface{}{"kind": string(kind), "id": id})
	return saved, nil
}

// Delete remove a linha com o id informado e a retorna.
func (r *Repository) Delete(ctx context.Context, kind domain.Kind, id string) (domain.Row, error) {
	t, err := r.table(kind)
	if err != nil {
		return domain.Row{}, err
	}
	r.logger.Debug("Excluindo registro no repositório.", map[string]interface{}{"kind": string(kind), "id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := fmt.Sprintf("DELETE FROM %s WHERE id = %s RETURNING %s", t.Name, r.dialect.Placeholder(1), selectColumns(t))
	deleted, err := scanRow(t, r.DB.QueryRowContext(ctxTimeout, query, id))
	if err == sql.ErrNoRows {
		r.logger.Info("Registro não encontrado para exclusão.", map[string]interface{}{"kind": string(kind), "id": id})
		return domain.Row{}, errors.NewNotFoundError(fmt.Sprintf("registro %s em %s não existe.", id, t.Name))
	}
	if err != nil {
		r.logger.Error("Falha ao excluir registro do DB.", err)
		return domain.Row{}, errors.NewWriteError(fmt.Sprintf("excluir de %s", t.Name), err)
	}

	r.logger.Info("Registro excluído com sucesso.", map[string]interface{}{"kind": string(kind), "id": id, "display_id": deleted.DisplayID})
	return deleted, nil
}

// GetSingleton lê o valor JSON gravado sob key em app_settings.
func (r *Repository) GetSingleton(ctx context.Context, key string) ([]byte, bool, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var value []byte
	err := r.DB.QueryRowContext(ctxTimeout,
		fmt.Sprintf("SELECT value FROM app_settings WHERE key = %s", r.dialect.Placeholder(1)), key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		r.logger.Error("Falha ao ler configuração no DB.", err)
		return nil, false, errors.NewQueryError(fmt.Sprintf("ler configuração %s", key), err)
	}
	return value, true, nil
}

// PutSingleton grava (ou substitui) o valor JSON sob key em app_settings.
func (r *Repository) PutSingleton(ctx context.Context, key string, value []byte) ([]byte, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	p := r.dialect.Placeholder
	query := fmt.Sprintf(`
        INSERT INTO app_settings (key, value, updated_at)
        VALUES (%s, %s, %s)
        ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		p(1), p(2), p(3))

	if _, err := r.DB.ExecContext(ctxTimeout, query, key, string(value), r.dialect.EncodeTime(time.Now())); err != nil {
		r.logger.Error("Falha ao gravar configuração no DB.", err)
		return nil, errors.NewWriteError(fmt.Sprintf("gravar configuração %s", key), err)
	}

	r.logger.Info("Configuração gravada com sucesso.", map[string]interface{}{"key": key})
	return value, nil
}
