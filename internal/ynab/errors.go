package ynab

import "fmt"

// NotFoundError reports that a named entity does not exist in the budgeting
// service. Report builds treat it as a distinct failure; there is no retry.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("no %ss found", e.Kind)
	}
	return fmt.Sprintf("%s '%s' not found", e.Kind, e.Name)
}

// NewBudgetNotFound reports a missing budget. An empty name means no budgets
// exist at all.
func NewBudgetNotFound(name string) *NotFoundError {
	return &NotFoundError{Kind: "budget", Name: name}
}

// NewAccountNotFound reports that no account matched the requested name.
func NewAccountNotFound(name string) *NotFoundError {
	return &NotFoundError{Kind: "account", Name: name}
}

// NewCategoryOrGroupNotFound reports that neither a category nor a category
// group matched the requested name.
func NewCategoryOrGroupNotFound(name string) *NotFoundError {
	return &NotFoundError{Kind: "category or group", Name: name}
}
