package service

import "github.com/shopspring/decimal"

// BalancesReport lists the balances of all open accounts whose names contain
// the requested name.
type BalancesReport struct {
	Name     string
	Balances []AccountBalance
}

// AccountBalance is one matched account's current balance.
type AccountBalance struct {
	Name    string
	Balance decimal.Decimal
}

// FundedReport shows how much of a category's goal, or of each goal in a
// category group, has been funded.
type FundedReport struct {
	Name       string
	Categories []FundedCategory
}

// FundedCategory is one category's funded amount against its goal target.
type FundedCategory struct {
	Name   string
	Funded decimal.Decimal
	Target decimal.Decimal
}

// ActivityReport shows the current month's activity and the amount needed
// per month for a category or a category group.
type ActivityReport struct {
	Name     string
	Activity decimal.Decimal
	Need     decimal.Decimal
}
