package ynab

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

const defaultBaseURL = "https://api.ynab.com/v1"

// Client is a thin client for the budgeting service. Requests are single-shot:
// retry policy belongs to the caller, if anywhere.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a Client authenticated with the given access token.
// An empty baseURL selects the production API.
func NewClient(baseURL, accessToken string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

type budgetsResponse struct {
	Data struct {
		Budgets []BudgetSummary `json:"budgets"`
	} `json:"data"`
}

type budgetDetailResponse struct {
	Data struct {
		Budget BudgetDetail `json:"budget"`
	} `json:"data"`
}

type accountsResponse struct {
	Data struct {
		Accounts []Account `json:"accounts"`
	} `json:"data"`
}

type transactionsResponse struct {
	Data struct {
		Transactions []TransactionDetail `json:"transactions"`
	} `json:"data"`
}

type categoryResponse struct {
	Data struct {
		Category Category `json:"category"`
	} `json:"data"`
}

// GetBudgets returns all budget summaries.
func (c *Client) GetBudgets(ctx context.Context) ([]BudgetSummary, error) {
	var resp budgetsResponse
	if err := c.get(ctx, "/budgets", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Budgets, nil
}

// GetBudgetDetail resolves a budget by name and returns its full detail,
// categories and category groups included. An empty name selects the first
// budget.
func (c *Client) GetBudgetDetail(ctx context.Context, budgetName string) (*BudgetDetail, error) {
	budgets, err := c.GetBudgets(ctx)
	if err != nil {
		return nil, err
	}

	var summary *BudgetSummary
	if budgetName == "" {
		if len(budgets) > 0 {
			summary = &budgets[0]
		}
	} else {
		for i := range budgets {
			if budgets[i].Name == budgetName {
				summary = &budgets[i]
				break
			}
		}
	}
	if summary == nil {
		return nil, NewBudgetNotFound(budgetName)
	}

	var resp budgetDetailResponse
	if err := c.get(ctx, "/budgets/"+summary.ID.String(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data.Budget, nil
}

// GetAccounts returns all accounts for a budget.
func (c *Client) GetAccounts(ctx context.Context, budgetID uuid.UUID) ([]Account, error) {
	var resp accountsResponse
	if err := c.get(ctx, "/budgets/"+budgetID.String()+"/accounts", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Accounts, nil
}

// GetTransactions returns all transactions for a budget, optionally limited
// to those on or after sinceDate.
func (c *Client) GetTransactions(ctx context.Context, budgetID uuid.UUID, sinceDate *time.Time) ([]TransactionDetail, error) {
	var query url.Values
	if sinceDate != nil {
		query = url.Values{"since_date": []string{sinceDate.Format("2006-01-02")}}
	}

	var resp transactionsResponse
	if err := c.get(ctx, "/budgets/"+budgetID.String()+"/transactions", query, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Transactions, nil
}

// GetCategoryByID returns a single category with up-to-date activity and
// goal funding fields.
func (c *Client) GetCategoryByID(ctx context.Context, budgetID, categoryID uuid.UUID) (*Category, error) {
	var resp categoryResponse
	if err := c.get(ctx, "/budgets/"+budgetID.String()+"/categories/"+categoryID.String(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data.Category, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ynab: GET %s returned %d", path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// FindCategoryOrGroup looks up a category or a category group by name,
// case-insensitively. Exactly one of the results is non-nil on a match.
func FindCategoryOrGroup(budget *BudgetDetail, name string) (*Category, *CategoryGroup) {
	for i := range budget.Categories {
		if strings.EqualFold(budget.Categories[i].Name, name) {
			return &budget.Categories[i], nil
		}
	}
	for i := range budget.CategoryGroups {
		if strings.EqualFold(budget.CategoryGroups[i].Name, name) {
			return nil, &budget.CategoryGroups[i]
		}
	}
	return nil, nil
}
