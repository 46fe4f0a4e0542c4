package sqlconfig

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)
