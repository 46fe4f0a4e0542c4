package storage

import (
	"context"
	"database/sql"
	"errors"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/udyog-books/ledger-server/internal/config"
	"github.com/udyog-books/ledger-server/internal/storage/sqlconfig"
)

// ErrNotFound is returned by write actions when the target row does not
// exist or belongs to another user. Callers must not learn which.
var ErrNotFound = errors.New("storage: transaction not found")

type Storage struct {
	DB           bob.DB
	Transactions sqlconfig.ITransactionsTable
	InsightCache sqlconfig.IInsightCacheTable
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	bdb := bob.NewDB(db)

	return &Storage{
		DB:           bdb,
		Transactions: sqlconfig.NewTransactionsTable(bdb),
		InsightCache: sqlconfig.NewInsightCacheTable(bdb),
	}
}

// Write opens a database transaction and returns a Writer whose tables
// are scoped to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
