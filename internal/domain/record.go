package domain

import (
	"context"
	"time"
)

// Kind identifica a classe de registro (e a tabela que a armazena).
type Kind string

// Classes de registro suportadas pelo armazenamento.
const (
	KindRelease    Kind = "releases"
	KindFiberStock Kind = "fiber_stock"
)

// Nomes de colunas comuns a todas as tabelas de registros.
const (
	ColumnID        = "id"
	ColumnDisplayID = "display_id"
	ColumnCreatedAt = "created_at"
)

// DateLayout é o formato de data civil (YYYY-MM-DD) usado em `data`.
const DateLayout = "2006-01-02"

// Table descreve o esquema de armazenamento de uma classe de registro.
// Columns lista as colunas de conteúdo (snake_case), na ordem usada nos SQLs.
// ScopeColumn é a coluna cuja data define o mês do ID de exibição:
// ColumnCreatedAt ou uma coluna de data civil presente em Columns.
type Table struct {
	Name        string
	Columns     []string
	ScopeColumn string
}

// HasColumn informa se a coluna de conteúdo existe na tabela.
func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// ScopedByCreation informa se o escopo mensal usa o instante de criação.
func (t Table) ScopedByCreation() bool {
	return t.ScopeColumn == ColumnCreatedAt
}

var tables = map[Kind]Table{
	KindRelease: {
		Name:        string(KindRelease),
		Columns:     []string{"material", "operador", "rua", "local_de_entrega", "data", "status", "sm"},
		ScopeColumn: "data",
	},
	KindFiberStock: {
		Name:        string(KindFiberStock),
		Columns:     []string{"material", "lote", "qtd", "prateleira", "rua", "sala", "status", "sm"},
		ScopeColumn: ColumnCreatedAt,
	},
}

// TableFor retorna o descritor da tabela de uma classe de registro.
func TableFor(kind Kind) (Table, bool) {
	t, ok := tables[kind]
	return t, ok
}

// Row é um registro no formato do armazenamento: colunas de sistema tipadas
// e colunas de conteúdo indexadas pelo nome da coluna (snake_case).
type Row struct {
	ID        string
	DisplayID string
	CreatedAt time.Time
	Fields    map[string]string
}

// DateRange é um intervalo semiaberto [From, To). O valor zero significa
// "sem filtro".
type DateRange struct {
	From time.Time
	To   time.Time
}

// IsZero informa se o intervalo não restringe a consulta.
func (r DateRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// MonthRange retorna o intervalo do mês civil que contém t, no fuso de t.
func MonthRange(t time.Time) DateRange {
	from := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return DateRange{From: from, To: from.AddDate(0, 1, 0)}
}

// Backend é a porta de armazenamento. Existem implementações locais (SQLite),
// remotas (PostgreSQL) e em memória; o serviço de registros depende apenas
// desta interface.
type Backend interface {
	// Query retorna as linhas cujo escopo cai em r, das mais novas para as mais antigas.
	Query(ctx context.Context, kind Kind, r DateRange) ([]Row, error)
	// Get retorna a linha com o id informado ou NotFoundError.
	Get(ctx context.Context, kind Kind, id string) (Row, error)
	Insert(ctx context.Context, kind Kind, row Row) (Row, error)
	// InsertMany grava todas as linhas ou nenhuma.
	InsertMany(ctx context.Context, kind Kind, rows []Row) ([]Row, error)
	Update(ctx context.Context, kind Kind, id string, patch map[string]string) (Row, error)
	// Delete remove a linha e a retorna como estava antes da exclusão.
	Delete(ctx context.Context, kind Kind, id string) (Row, error)
	GetSingleton(ctx context.Context, key string) ([]byte, bool, error)
	PutSingleton(ctx context.Context, key string, value []byte) ([]byte, error)
}
