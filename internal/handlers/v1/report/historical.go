package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-reports/internal/ledger"
	"github.com/carson-networks/budget-reports/internal/logging"
	"github.com/carson-networks/budget-reports/internal/service"
)

// BalancePoint is the API response model for one running-balance point.
type BalancePoint struct {
	Date           string `json:"date" doc:"Transaction date"`
	Amount         string `json:"amount" doc:"Decimal adjusted delta amount"`
	RunningBalance string `json:"runningBalance" doc:"Decimal cumulative balance"`
}

// SeriesPoint is the API response model for one resampled chart point.
type SeriesPoint struct {
	Date    string `json:"date" doc:"Week or month boundary date"`
	Balance string `json:"balance" doc:"Decimal averaged or interpolated balance"`
}

// AxisBounds is the API response model for chart y-axis limits.
type AxisBounds struct {
	Min  string `json:"min" doc:"Decimal lower axis limit"`
	Max  string `json:"max" doc:"Decimal upper axis limit"`
	Step string `json:"step" doc:"Decimal major-gridline step"`
}

// HistoricalAccount is the API response model for one member account.
type HistoricalAccount struct {
	Name   string         `json:"name" doc:"Account name"`
	Points []BalancePoint `json:"points" doc:"Running-balance series for the account"`
}

// HistoricalGroup is the API response model for one account group.
type HistoricalGroup struct {
	Name      string              `json:"name" doc:"Account group display name"`
	Accounts  []HistoricalAccount `json:"accounts" doc:"Member accounts with their series"`
	AllPoints []BalancePoint      `json:"allPoints" doc:"Group running balance recomputed from merged deltas"`
	Series    []SeriesPoint       `json:"series" doc:"Resampled chartable series"`
	Bounds    AxisBounds          `json:"bounds" doc:"Chart axis bounds for the series"`
}

// HistoricalInput is the Huma input for the historical report.
type HistoricalInput struct {
	Budget   string `query:"budget" doc:"Budget name, defaults to the first budget"`
	Interval string `query:"interval" enum:"weekly,monthly" default:"weekly" doc:"Resampling interval"`
}

// HistoricalResponseBody is the response body for the historical report.
type HistoricalResponseBody struct {
	BudgetName string            `json:"budgetName" doc:"Budget the report was built for"`
	Groups     []HistoricalGroup `json:"groups" doc:"Account groups with balance series"`
}

// HistoricalOutput is the Huma output for the historical report.
type HistoricalOutput struct {
	Body HistoricalResponseBody
}

// historicalBuilder is the interface for building the historical report.
type historicalBuilder interface {
	Build(ctx context.Context, budgetName string, interval service.Interval) (*service.HistoricalReport, error)
}

// HistoricalHandler handles GET /v1/reports/historical.
type HistoricalHandler struct {
	HistoricalService historicalBuilder
}

// NewHistoricalHandler creates a new HistoricalHandler.
func NewHistoricalHandler(svc historicalBuilder) *HistoricalHandler {
	return &HistoricalHandler{HistoricalService: svc}
}

// Register registers the historical report endpoint with the Huma API.
func (h *HistoricalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "report-historical",
		Method:      http.MethodGet,
		Path:        "/v1/reports/historical",
		Summary:     "Historical report",
		Description: "Returns running balances per account group over the trailing year, resampled for charting.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *HistoricalHandler) handle(ctx context.Context, input *HistoricalInput) (*HistoricalOutput, error) {
	logData := logging.GetLogData(ctx)

	interval := service.IntervalWeekly
	if input.Interval == string(service.IntervalMonthly) {
		interval = service.IntervalMonthly
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("historicalBuildMs")
	}
	report, err := h.HistoricalService.Build(ctx, input.Budget, interval)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, serviceError(err, "failed to build historical report")
	}

	if logData != nil {
		logData.AddData("groupCount", len(report.Groups))
	}

	resp := HistoricalResponseBody{
		BudgetName: report.BudgetName,
		Groups:     make([]HistoricalGroup, len(report.Groups)),
	}

	for i, group := range report.Groups {
		accounts := make([]HistoricalAccount, len(group.Accounts))
		for j, account := range group.Accounts {
			accounts[j] = HistoricalAccount{
				Name:   account.Name,
				Points: balancePoints(account.Points),
			}
		}

		series := make([]SeriesPoint, len(group.Series))
		for j, point := range group.Series {
			series[j] = SeriesPoint{
				Date:    point.Date.Format("2006-01-02"),
				Balance: point.Balance.String(),
			}
		}

		resp.Groups[i] = HistoricalGroup{
			Name:      group.Name,
			Accounts:  accounts,
			AllPoints: balancePoints(group.AllPoints),
			Series:    series,
			Bounds: AxisBounds{
				Min:  group.Bounds.Min.String(),
				Max:  group.Bounds.Max.String(),
				Step: group.Bounds.Step.String(),
			},
		}
	}

	return &HistoricalOutput{Body: resp}, nil
}

func balancePoints(points []ledger.BalancePoint) []BalancePoint {
	converted := make([]BalancePoint, len(points))
	for i, point := range points {
		converted[i] = BalancePoint{
			Date:           point.Date.Format("2006-01-02"),
			Amount:         point.Amount.String(),
			RunningBalance: point.RunningBalance.String(),
		}
	}
	return converted
}
