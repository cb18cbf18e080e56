package db

// Supported storage backends, selected with DB_TYPE.
const (
	Postgres = "postgres"
	Mongo    = "mongo"
)

// Store is a connectable storage backend.
type Store interface {
	Connect() error
	Disconnect() error
}
