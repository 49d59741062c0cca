package sqlrepo

import (
	"fmt"
	"strconv"
	"time"
)

// Dialect isola as diferenças de SQL entre o backend remoto (PostgreSQL)
// e o backend local (SQLite).
type Dialect struct {
	Name string
	// Placeholder retorna o marcador do n-ésimo argumento (1-based).
	Placeholder func(n int) string
	// EncodeTime converte um instante para o tipo da coluna created_at.
	EncodeTime func(t time.Time) interface{}
}

// Postgres usa $n e TIMESTAMPTZ.
var Postgres = Dialect{
	Name:        "postgres",
	Placeholder: func(n int) string { return "$" + strconv.Itoa(n) },
	EncodeTime:  func(t time.Time) interface{} { return t.UTC() },
}

// SQLite usa ? e guarda instantes como milissegundos Unix (INTEGER).
var SQLite = Dialect{
	Name:        "sqlite",
	Placeholder: func(int) string { return "?" },
	EncodeTime:  func(t time.Time) interface{} { return t.UTC().UnixMilli() },
}

// timestamp lê created_at tanto de TIMESTAMPTZ quanto de INTEGER (ms).
type timestamp struct {
	time.Time
}

func (ts *timestamp) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		ts.Time = v.UTC()
	case int64:
		ts.Time = time.UnixMilli(v).UTC()
	case []byte:
		return ts.parse(string(v))
	case string:
		return ts.parse(v)
	case nil:
		ts.Time = time.Time{}
	default:
		return fmt.Errorf("created_at: tipo não suportado %T", src)
	}
	return nil
}

func (ts *timestamp) parse(s string) error {
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		ts.Time = time.UnixMilli(ms).UTC()
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("created_at: %w", err)
	}
	ts.Time = t.UTC()
	return nil
}
