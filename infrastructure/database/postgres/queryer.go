package postgres

import (
	"database/sql"
)

// Queryer é o subconjunto de operações comum a *Connection e *sql.Tx,
// permitindo que os repositórios executem as mesmas queries dentro ou fora
// de uma transação
type Queryer interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}
