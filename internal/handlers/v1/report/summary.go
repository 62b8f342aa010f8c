package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-reports/internal/logging"
	"github.com/carson-networks/budget-reports/internal/service"
)

// AccountBalance is the API response model for one matched account.
type AccountBalance struct {
	Name    string `json:"name" doc:"Account name"`
	Balance string `json:"balance" doc:"Decimal current balance"`
}

// BalancesInput is the Huma input for the account balances summary.
type BalancesInput struct {
	Budget  string `query:"budget" doc:"Budget name, defaults to the first budget"`
	Account string `query:"account" required:"true" doc:"Account name fragment, matched case-insensitively"`
}

// BalancesResponseBody is the response body for the account balances summary.
type BalancesResponseBody struct {
	Name     string           `json:"name" doc:"Requested account name fragment"`
	Balances []AccountBalance `json:"balances" doc:"Open accounts matching the fragment"`
}

// BalancesOutput is the Huma output for the account balances summary.
type BalancesOutput struct {
	Body BalancesResponseBody
}

// FundedCategory is the API response model for one category's funded state.
type FundedCategory struct {
	Name   string `json:"name" doc:"Category name"`
	Funded string `json:"funded" doc:"Decimal amount funded toward the goal"`
	Target string `json:"target" doc:"Decimal goal target amount"`
}

// FundedInput is the Huma input for the funded summary.
type FundedInput struct {
	Budget string `query:"budget" doc:"Budget name, defaults to the first budget"`
	Name   string `query:"name" required:"true" doc:"Category or category group name"`
}

// FundedResponseBody is the response body for the funded summary.
type FundedResponseBody struct {
	Name       string           `json:"name" doc:"Matched category or group name"`
	Categories []FundedCategory `json:"categories" doc:"Funded state per category"`
}

// FundedOutput is the Huma output for the funded summary.
type FundedOutput struct {
	Body FundedResponseBody
}

// ActivityInput is the Huma input for the activity summary.
type ActivityInput struct {
	Budget string `query:"budget" doc:"Budget name, defaults to the first budget"`
	Name   string `query:"name" required:"true" doc:"Category or category group name"`
}

// ActivityResponseBody is the response body for the activity summary.
type ActivityResponseBody struct {
	Name     string `json:"name" doc:"Matched category or group name"`
	Activity string `json:"activity" doc:"Decimal absolute activity for the current month"`
	Need     string `json:"need" doc:"Decimal amount needed per month"`
}

// ActivityOutput is the Huma output for the activity summary.
type ActivityOutput struct {
	Body ActivityResponseBody
}

// summaryBuilder is the interface for building the summary reports.
type summaryBuilder interface {
	AccountBalances(ctx context.Context, budgetName, accountName string) (*service.BalancesReport, error)
	Funded(ctx context.Context, budgetName, categoryOrGroupName string) (*service.FundedReport, error)
	Activity(ctx context.Context, budgetName, categoryOrGroupName string) (*service.ActivityReport, error)
}

// SummaryHandler handles the summary endpoints under /v1/summaries.
type SummaryHandler struct {
	SummaryService summaryBuilder
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(svc summaryBuilder) *SummaryHandler {
	return &SummaryHandler{SummaryService: svc}
}

// Register registers the summary endpoints with the Huma API.
func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "account-balances",
		Method:      http.MethodGet,
		Path:        "/v1/summaries/account-balances",
		Summary:     "Account balances",
		Description: "Returns the balances of all open accounts matching a name fragment.",
		Tags:        []string{"Summaries"},
	}, h.handleBalances)

	huma.Register(api, huma.Operation{
		OperationID: "category-funded",
		Method:      http.MethodGet,
		Path:        "/v1/summaries/funded",
		Summary:     "Funded progress",
		Description: "Returns how much of a category's goal, or of each goal in a group, has been funded.",
		Tags:        []string{"Summaries"},
	}, h.handleFunded)

	huma.Register(api, huma.Operation{
		OperationID: "category-activity",
		Method:      http.MethodGet,
		Path:        "/v1/summaries/activity",
		Summary:     "Monthly activity",
		Description: "Returns the current month's activity and monthly need for a category or group.",
		Tags:        []string{"Summaries"},
	}, h.handleActivity)
}

func (h *SummaryHandler) handleBalances(ctx context.Context, input *BalancesInput) (*BalancesOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("accountBalancesMs")
	}
	report, err := h.SummaryService.AccountBalances(ctx, input.Budget, input.Account)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, serviceError(err, "failed to look up account balances")
	}

	resp := BalancesResponseBody{
		Name:     report.Name,
		Balances: make([]AccountBalance, len(report.Balances)),
	}
	for i, balance := range report.Balances {
		resp.Balances[i] = AccountBalance{Name: balance.Name, Balance: balance.Balance.String()}
	}

	return &BalancesOutput{Body: resp}, nil
}

func (h *SummaryHandler) handleFunded(ctx context.Context, input *FundedInput) (*FundedOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("fundedMs")
	}
	report, err := h.SummaryService.Funded(ctx, input.Budget, input.Name)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, serviceError(err, "failed to build funded summary")
	}

	resp := FundedResponseBody{
		Name:       report.Name,
		Categories: make([]FundedCategory, len(report.Categories)),
	}
	for i, category := range report.Categories {
		resp.Categories[i] = FundedCategory{
			Name:   category.Name,
			Funded: category.Funded.String(),
			Target: category.Target.String(),
		}
	}

	return &FundedOutput{Body: resp}, nil
}

func (h *SummaryHandler) handleActivity(ctx context.Context, input *ActivityInput) (*ActivityOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("activityMs")
	}
	report, err := h.SummaryService.Activity(ctx, input.Budget, input.Name)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, serviceError(err, "failed to build activity summary")
	}

	return &ActivityOutput{Body: ActivityResponseBody{
		Name:     report.Name,
		Activity: report.Activity.String(),
		Need:     report.Need.String(),
	}}, nil
}
