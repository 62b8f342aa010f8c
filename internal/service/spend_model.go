package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// SpendReport is the monthly category-spend report model: transactions for
// one category in one month, grouped and totaled by memo prefix.
type SpendReport struct {
	BudgetName string
	MonthName  string
	Groups     []SpendGroup
	Total      decimal.Decimal
}

// SpendGroup is one memo-prefix bucket of spend transactions.
type SpendGroup struct {
	MemoPrefix   string
	Transactions []SpendTransaction
	Total        decimal.Decimal
}

// SpendTransaction is one line of the spend report.
type SpendTransaction struct {
	Description string
	Date        time.Time
	Amount      decimal.Decimal
}
