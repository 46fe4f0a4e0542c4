package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ ITransactionsTable = (*TransactionsTable)(nil)

var transactionColumns = []any{
	"id", "user_id", "type", "vendor_name", "amount", "currency",
	"gst_percent", "gst_amount", "category", "invoice_number", "date",
	"created_at", "updated_at",
}

type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable wraps an executor, which may be a DB handle or an
// open transaction.
func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// FindByID retrieves a transaction by primary key, scoped to its owner.
// Returns nil when no such row exists for that owner.
func (t *TransactionsTable) FindByID(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// List returns transactions matching the filter, newest first.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))),
	}

	if filter.Type != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("type").EQ(psql.Arg(*filter.Type))))
	}
	if filter.Category != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("category").EQ(psql.Arg(*filter.Category))))
	}
	if filter.Currency != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("currency").EQ(psql.Arg(*filter.Currency))))
	}
	if filter.Search != nil {
		pattern := "%" + *filter.Search + "%"
		queryMods = append(queryMods, sm.Where(
			psql.Raw("(vendor_name ILIKE ? OR invoice_number ILIKE ?)", pattern, pattern),
		))
	}
	if filter.From != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("date").GTE(psql.Arg(*filter.From))))
	}
	if filter.To != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("date").LTE(psql.Arg(*filter.To))))
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}

	queryMods = append(queryMods,
		sm.OrderBy("date").Desc(),
		sm.OrderBy("created_at").Desc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}

	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("transactions",
			"user_id", "type", "vendor_name", "amount", "currency",
			"gst_percent", "gst_amount", "category", "invoice_number", "date"),
		im.Values(psql.Arg(
			create.UserID, create.Type, create.VendorName, create.Amount,
			create.Currency, create.GstPercent, create.GstAmount,
			create.Category, create.InvoiceNumber, create.Date)),
		im.Returning("id"),
	)

	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update replaces every mutable field and advances updated_at. Returns
// false when the row does not exist or belongs to another user.
func (t *TransactionsTable) Update(ctx context.Context, userID, id uuid.UUID, update *TransactionUpdate) (bool, error) {
	q := psql.Update(
		um.Table("transactions"),
		um.SetCol("type").ToArg(update.Type),
		um.SetCol("vendor_name").ToArg(update.VendorName),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("currency").ToArg(update.Currency),
		um.SetCol("gst_percent").ToArg(update.GstPercent),
		um.SetCol("gst_amount").ToArg(update.GstAmount),
		um.SetCol("category").ToArg(update.Category),
		um.SetCol("invoice_number").ToArg(update.InvoiceNumber),
		um.SetCol("date").ToArg(update.Date),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	result, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Delete removes a transaction. Returns false when the row does not exist
// or belongs to another user.
func (t *TransactionsTable) Delete(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	result, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// CountAndMaxModified computes the cache fingerprint for a date window.
// Unlike the dashboard totals this covers every currency: an edit to a
// USD row must still invalidate the month's cached insights.
func (t *TransactionsTable) CountAndMaxModified(ctx context.Context, userID uuid.UUID, from, to time.Time) (*Fingerprint, error) {
	q := psql.Select(
		sm.Columns(
			psql.Raw("COUNT(*) AS tx_count"),
			psql.Raw("MAX(updated_at) AS last_updated_at"),
		),
		sm.From("transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("date").GTE(psql.Arg(from))),
		sm.Where(psql.Quote("date").LTE(psql.Arg(to))),
	)

	fingerprint, err := bob.One(ctx, t.exec, q, scan.StructMapper[Fingerprint]())
	if err != nil {
		return nil, err
	}
	return &fingerprint, nil
}

// TopExpenseCategory returns the expense category with the highest summed
// amount in the window, or nil when there are no expenses.
func (t *TransactionsTable) TopExpenseCategory(ctx context.Context, userID uuid.UUID, from, to time.Time, currency string) (*CategoryTotal, error) {
	q := psql.Select(
		sm.Columns("category", psql.Raw("SUM(amount) AS total")),
		sm.From("transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("type").EQ(psql.Arg(TypeExpense))),
		sm.Where(psql.Quote("currency").EQ(psql.Arg(currency))),
		sm.Where(psql.Quote("date").GTE(psql.Arg(from))),
		sm.Where(psql.Quote("date").LTE(psql.Arg(to))),
		sm.GroupBy("category"),
		sm.OrderBy(psql.Raw("total")).Desc(),
		sm.Limit(1),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[CategoryTotal]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// SumExpenses totals expense amounts in the window for one currency.
func (t *TransactionsTable) SumExpenses(ctx context.Context, userID uuid.UUID, from, to time.Time, currency string) (decimal.Decimal, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("COALESCE(SUM(amount), 0) AS total")),
		sm.From("transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("type").EQ(psql.Arg(TypeExpense))),
		sm.Where(psql.Quote("currency").EQ(psql.Arg(currency))),
		sm.Where(psql.Quote("date").GTE(psql.Arg(from))),
		sm.Where(psql.Quote("date").LTE(psql.Arg(to))),
	)

	total, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[decimal.Decimal])
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
