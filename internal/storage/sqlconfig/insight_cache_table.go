package sqlconfig

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IInsightCacheTable = (*InsightCacheTable)(nil)

type insightCacheRow struct {
	UserID                   uuid.UUID `db:"user_id"`
	Year                     int       `db:"year"`
	Month                    int       `db:"month"`
	TransactionCount         int64     `db:"transaction_count"`
	LastTransactionUpdatedAt time.Time `db:"last_transaction_updated_at"`
	Insights                 []byte    `db:"insights"`
	CreatedAt                time.Time `db:"created_at"`
}

type InsightCacheTable struct {
	exec bob.Executor
}

func NewInsightCacheTable(exec bob.Executor) *InsightCacheTable {
	return &InsightCacheTable{exec: exec}
}

// Get returns the cache entry for (user, year, month), or nil on a miss.
func (t *InsightCacheTable) Get(ctx context.Context, userID uuid.UUID, year, month int) (*InsightCacheEntry, error) {
	q := psql.Select(
		sm.Columns("user_id", "year", "month", "transaction_count",
			"last_transaction_updated_at", "insights", "created_at"),
		sm.From("insight_cache"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("year").EQ(psql.Arg(year))),
		sm.Where(psql.Quote("month").EQ(psql.Arg(month))),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[insightCacheRow]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var insights []InsightItem
	if err := json.Unmarshal(row.Insights, &insights); err != nil {
		return nil, err
	}

	return &InsightCacheEntry{
		UserID:                   row.UserID,
		Year:                     row.Year,
		Month:                    row.Month,
		TransactionCount:         row.TransactionCount,
		LastTransactionUpdatedAt: row.LastTransactionUpdatedAt,
		Insights:                 insights,
		CreatedAt:                row.CreatedAt,
	}, nil
}

// Upsert writes the cache entry for (user, year, month), replacing any
// previous entry for the same key. The unique index on the key makes the
// last writer win when concurrent misses race.
func (t *InsightCacheTable) Upsert(ctx context.Context, upsert *InsightCacheUpsert) error {
	insights, err := json.Marshal(upsert.Insights)
	if err != nil {
		return err
	}

	q := psql.Insert(
		im.Into("insight_cache",
			"user_id", "year", "month", "transaction_count",
			"last_transaction_updated_at", "insights"),
		im.Values(psql.Arg(
			upsert.UserID, upsert.Year, upsert.Month, upsert.TransactionCount,
			upsert.LastTransactionUpdatedAt, insights)),
		im.OnConflict("user_id", "year", "month").DoUpdate(
			im.SetExcluded("transaction_count", "last_transaction_updated_at", "insights"),
		),
	)

	_, err = bob.Exec(ctx, t.exec, q)
	return err
}
