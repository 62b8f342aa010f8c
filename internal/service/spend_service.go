package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-reports/internal/ynab"
)

// SpendService builds the monthly spend report for a single category,
// grouping transactions by the prefix of their memo text (the part before
// the first ":").
type SpendService struct {
	client       BudgetClient
	payeeAliases map[string]string
}

// NewSpendService creates a new SpendService. payeeAliases maps
// case-insensitive payee-name substrings to cleaned display names.
func NewSpendService(client BudgetClient, payeeAliases map[string]string) *SpendService {
	return &SpendService{client: client, payeeAliases: payeeAliases}
}

// spendLine is a transaction or flattened subtransaction attributed to the
// requested category.
type spendLine struct {
	Date       time.Time
	Amount     ynab.Milliunits
	Memo       string
	PayeeName  string
	CategoryID *uuid.UUID
}

// Build assembles the spend report for a category and month. month is
// "2006-01".
func (s *SpendService) Build(ctx context.Context, budgetName, categoryName, month string) (*SpendReport, error) {
	startOfMonth, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, fmt.Errorf("parsing month %q: %w", month, err)
	}

	budget, err := s.client.GetBudgetDetail(ctx, budgetName)
	if err != nil {
		return nil, err
	}

	var categoryID uuid.UUID
	found := false
	for _, category := range budget.Categories {
		if strings.EqualFold(category.Name, categoryName) {
			categoryID = category.ID
			found = true
			break
		}
	}
	if !found {
		return nil, ynab.NewCategoryOrGroupNotFound(categoryName)
	}

	transactions, err := s.client.GetTransactions(ctx, budget.ID, &startOfMonth)
	if err != nil {
		return nil, err
	}

	var lines []spendLine
	for _, transaction := range transactions {
		lines = append(lines, spendLine{
			Date:       transaction.Date.Time,
			Amount:     transaction.Amount,
			Memo:       stringValue(transaction.Memo),
			PayeeName:  stringValue(transaction.PayeeName),
			CategoryID: transaction.CategoryID,
		})
		// Splits inherit the parent's date and payee; nested splits are not
		// supported by the upstream service.
		for _, sub := range transaction.Subtransactions {
			memo := transaction.Memo
			if sub.Memo != nil {
				memo = sub.Memo
			}
			subCategoryID := transaction.CategoryID
			if sub.CategoryID != nil {
				subCategoryID = sub.CategoryID
			}
			lines = append(lines, spendLine{
				Date:       transaction.Date.Time,
				Amount:     sub.Amount,
				Memo:       stringValue(memo),
				PayeeName:  stringValue(transaction.PayeeName),
				CategoryID: subCategoryID,
			})
		}
	}

	report := &SpendReport{
		BudgetName: budget.Name,
		MonthName:  startOfMonth.Format("January 2006"),
	}

	groupIndex := make(map[string]int)
	for _, line := range lines {
		if line.CategoryID == nil || *line.CategoryID != categoryID {
			continue
		}
		if line.Date.Month() != startOfMonth.Month() || line.Date.Year() != startOfMonth.Year() {
			continue
		}

		prefix := strings.Split(line.Memo, ":")[0]
		index, ok := groupIndex[prefix]
		if !ok {
			index = len(report.Groups)
			groupIndex[prefix] = index
			report.Groups = append(report.Groups, SpendGroup{MemoPrefix: prefix})
		}

		amount := line.Amount.Decimal()
		report.Groups[index].Transactions = append(report.Groups[index].Transactions, SpendTransaction{
			Description: s.buildDescription(prefix, line),
			Date:        line.Date,
			Amount:      amount,
		})
		report.Groups[index].Total = report.Groups[index].Total.Add(amount)
		report.Total = report.Total.Add(amount)
	}

	for i := range report.Groups {
		transactions := report.Groups[i].Transactions
		sort.SliceStable(transactions, func(a, b int) bool {
			return transactions[a].Description < transactions[b].Description
		})
	}

	return report, nil
}

func (s *SpendService) buildDescription(memoPrefix string, line spendLine) string {
	payee := s.cleanPayee(line.PayeeName)
	memo := strings.ReplaceAll(line.Memo, memoPrefix+":", "")
	if strings.TrimSpace(memo) == "" {
		return payee
	}
	return payee + " - " + memo
}

func (s *SpendService) cleanPayee(payee string) string {
	substrings := make([]string, 0, len(s.payeeAliases))
	for substring := range s.payeeAliases {
		substrings = append(substrings, substring)
	}
	sort.Strings(substrings)

	for _, substring := range substrings {
		if strings.Contains(strings.ToLower(payee), strings.ToLower(substring)) {
			return s.payeeAliases[substring]
		}
	}
	return payee
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
