// Package report contains the Huma handlers for the budget report
// operations.
package report

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-reports/internal/ynab"
)

// serviceError translates a report-build failure into an HTTP error. Missing
// budgets, accounts, and categories are the caller's problem; everything
// else is ours.
func serviceError(err error, message string) error {
	var notFound *ynab.NotFoundError
	if errors.As(err, &notFound) {
		return huma.NewError(http.StatusNotFound, notFound.Error())
	}
	return huma.NewError(http.StatusInternalServerError, message, err)
}
