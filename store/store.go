package store

import "database/sql"

// Store es la capa de acceso a datos: un método por caso de uso, siempre
// con consultas parametrizadas sobre *sql.DB.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// execer cubre lo que comparten *sql.DB y *sql.Tx para poder reutilizar
// operaciones dentro y fuera de una transacción.
type execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
