package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-reports/internal/logging"
	"github.com/carson-networks/budget-reports/internal/service"
)

// SpendTransaction is the API response model for one spend report line.
type SpendTransaction struct {
	Description string `json:"description" doc:"Cleaned payee plus memo text"`
	Date        string `json:"date" doc:"Transaction date"`
	Amount      string `json:"amount" doc:"Decimal signed amount"`
}

// SpendGroup is the API response model for one memo-prefix bucket.
type SpendGroup struct {
	MemoPrefix   string             `json:"memoPrefix" doc:"Memo text before the first colon"`
	Transactions []SpendTransaction `json:"transactions" doc:"Transactions in the bucket, ordered by description"`
	Total        string             `json:"total" doc:"Decimal bucket total"`
}

// SpendInput is the Huma input for the spend report.
type SpendInput struct {
	Budget   string `query:"budget" doc:"Budget name, defaults to the first budget"`
	Category string `query:"category" required:"true" doc:"Category name, matched case-insensitively"`
	Month    string `query:"month" required:"true" pattern:"^\\d{4}-\\d{2}$" doc:"Report month, e.g. 2025-03"`
}

// SpendResponseBody is the response body for the spend report.
type SpendResponseBody struct {
	BudgetName string       `json:"budgetName" doc:"Budget the report was built for"`
	MonthName  string       `json:"monthName" doc:"Human-readable month, e.g. March 2025"`
	Groups     []SpendGroup `json:"groups" doc:"Memo-prefix buckets"`
	Total      string       `json:"total" doc:"Decimal total across all buckets"`
}

// SpendOutput is the Huma output for the spend report.
type SpendOutput struct {
	Body SpendResponseBody
}

// spendBuilder is the interface for building the spend report.
type spendBuilder interface {
	Build(ctx context.Context, budgetName, categoryName, month string) (*service.SpendReport, error)
}

// SpendHandler handles GET /v1/reports/spend.
type SpendHandler struct {
	SpendService spendBuilder
}

// NewSpendHandler creates a new SpendHandler.
func NewSpendHandler(svc spendBuilder) *SpendHandler {
	return &SpendHandler{SpendService: svc}
}

// Register registers the spend report endpoint with the Huma API.
func (h *SpendHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "report-spend",
		Method:      http.MethodGet,
		Path:        "/v1/reports/spend",
		Summary:     "Spend report",
		Description: "Returns one month of a category's transactions grouped and totaled by memo prefix.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *SpendHandler) handle(ctx context.Context, input *SpendInput) (*SpendOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("spendBuildMs")
	}
	report, err := h.SpendService.Build(ctx, input.Budget, input.Category, input.Month)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, serviceError(err, "failed to build spend report")
	}

	if logData != nil {
		logData.AddData("groupCount", len(report.Groups))
	}

	resp := SpendResponseBody{
		BudgetName: report.BudgetName,
		MonthName:  report.MonthName,
		Groups:     make([]SpendGroup, len(report.Groups)),
		Total:      report.Total.String(),
	}

	for i, group := range report.Groups {
		transactions := make([]SpendTransaction, len(group.Transactions))
		for j, transaction := range group.Transactions {
			transactions[j] = SpendTransaction{
				Description: transaction.Description,
				Date:        transaction.Date.Format("2006-01-02"),
				Amount:      transaction.Amount.String(),
			}
		}
		resp.Groups[i] = SpendGroup{
			MemoPrefix:   group.MemoPrefix,
			Transactions: transactions,
			Total:        group.Total.String(),
		}
	}

	return &SpendOutput{Body: resp}, nil
}
