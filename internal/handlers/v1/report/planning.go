package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-reports/internal/logging"
	"github.com/carson-networks/budget-reports/internal/service"
)

// PlanningCategory is the API response model for one goal-bearing category.
type PlanningCategory struct {
	Name               string  `json:"name" doc:"Category name"`
	Cadence            string  `json:"cadence" doc:"Goal cadence label, e.g. Monthly or 3 Months"`
	Due                string  `json:"due" doc:"Goal due-date label"`
	GoalTarget         string  `json:"goalTarget" doc:"Decimal goal target amount"`
	PercentageComplete *string `json:"percentageComplete,omitempty" doc:"Completion fraction, only present for one-time goals"`
	MonthlyCost        string  `json:"monthlyCost" doc:"Decimal amount needed per month"`
	YearlyCost         string  `json:"yearlyCost" doc:"Decimal amount needed per year"`
}

// PlanningGroup is the API response model for one category group.
type PlanningGroup struct {
	Name         string             `json:"name" doc:"Category group name"`
	Categories   []PlanningCategory `json:"categories" doc:"Goal-bearing categories in the group"`
	MonthlyTotal string             `json:"monthlyTotal" doc:"Decimal monthly total for the group"`
	YearlyTotal  string             `json:"yearlyTotal" doc:"Decimal yearly total for the group"`
}

// PlanningInput is the Huma input for the planning report.
type PlanningInput struct {
	Budget string `query:"budget" doc:"Budget name, defaults to the first budget"`
}

// PlanningResponseBody is the response body for the planning report.
type PlanningResponseBody struct {
	BudgetName   string          `json:"budgetName" doc:"Budget the report was built for"`
	Groups       []PlanningGroup `json:"groups" doc:"Category groups with goal costs"`
	MonthlyTotal string          `json:"monthlyTotal" doc:"Decimal monthly total across all groups"`
	YearlyTotal  string          `json:"yearlyTotal" doc:"Decimal yearly total across all groups"`
}

// PlanningOutput is the Huma output for the planning report.
type PlanningOutput struct {
	Body PlanningResponseBody
}

// planningBuilder is the interface for building the planning report.
type planningBuilder interface {
	Build(ctx context.Context, budgetName string) (*service.PlanningReport, error)
}

// PlanningHandler handles GET /v1/reports/planning.
type PlanningHandler struct {
	PlanningService planningBuilder
}

// NewPlanningHandler creates a new PlanningHandler.
func NewPlanningHandler(svc planningBuilder) *PlanningHandler {
	return &PlanningHandler{PlanningService: svc}
}

// Register registers the planning report endpoint with the Huma API.
func (h *PlanningHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "report-planning",
		Method:      http.MethodGet,
		Path:        "/v1/reports/planning",
		Summary:     "Planning report",
		Description: "Returns the monthly cost of every category goal, grouped by category group.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *PlanningHandler) handle(ctx context.Context, input *PlanningInput) (*PlanningOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("planningBuildMs")
	}
	report, err := h.PlanningService.Build(ctx, input.Budget)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, serviceError(err, "failed to build planning report")
	}

	if logData != nil {
		logData.AddData("groupCount", len(report.Groups))
	}

	resp := PlanningResponseBody{
		BudgetName:   report.BudgetName,
		Groups:       make([]PlanningGroup, len(report.Groups)),
		MonthlyTotal: report.MonthlyTotal.String(),
		YearlyTotal:  report.YearlyTotal.String(),
	}

	for i, group := range report.Groups {
		categories := make([]PlanningCategory, len(group.Categories))
		for j, category := range group.Categories {
			categories[j] = PlanningCategory{
				Name:        category.CategoryName,
				Cadence:     category.CadenceLabel,
				Due:         category.DueLabel,
				GoalTarget:  category.GoalTarget.String(),
				MonthlyCost: category.MonthlyCost.String(),
				YearlyCost:  category.YearlyCost.String(),
			}
			if category.PercentageComplete != nil {
				complete := category.PercentageComplete.String()
				categories[j].PercentageComplete = &complete
			}
		}
		resp.Groups[i] = PlanningGroup{
			Name:         group.CategoryGroupName,
			Categories:   categories,
			MonthlyTotal: group.MonthlyTotal.String(),
			YearlyTotal:  group.YearlyTotal.String(),
		}
	}

	return &PlanningOutput{Body: resp}, nil
}
