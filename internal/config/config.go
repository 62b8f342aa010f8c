package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"github.com/gofrs/uuid/v5"
	"github.com/joho/godotenv"
)

type Config struct {
	YnabBaseURL     string
	YnabAccessToken string
	Port            string

	// Report-shaping tables. The defaults match the budget layout the
	// reports were originally built for; override per deployment.
	SkipCategoryGroupIDs []uuid.UUID
	GroupDisplayNames    map[string]string
	AccountGroupMapping  map[string]string
	PayeeAliases         map[string]string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	env := Config{
		YnabBaseURL: "https://api.ynab.com/v1",
		Port:        "9446",
		SkipCategoryGroupIDs: []uuid.UUID{
			// Credit card payment categories.
			uuid.Must(uuid.FromString("1a129df6-4857-4ed9-8961-5b803b27707e")),
			// Internal master categories.
			uuid.Must(uuid.FromString("5fb28acc-c607-42dc-ab04-7963a6fe718d")),
		},
		GroupDisplayNames: map[string]string{
			"CASH": "Cash",
			"LOC":  "Credit Cards",
			"LOAN": "Loans",
			"CUS":  "Cushion",
			"RET":  "Retirement",
			"COL":  "College",
			"AST":  "Assets",
			"HSA":  "Health Savings",
			"EMR":  "Emergency",
		},
		PayeeAliases: map[string]string{
			"amazon":    "Amazon",
			"kindle":    "Kindle",
			"microsoft": "Microsoft",
			"nintendo":  "Nintendo",
			"apple":     "Apple",
		},
	}

	envBaseURL := os.Getenv("YNAB_BASE_URL")
	envAccessToken := os.Getenv("YNAB_ACCESS_TOKEN")
	envPort := os.Getenv("PORT")
	envAccountGroupsFile := os.Getenv("ACCOUNT_GROUPS_FILE")

	if len(envBaseURL) != 0 {
		env.YnabBaseURL = envBaseURL
	}

	if len(envAccessToken) != 0 {
		env.YnabAccessToken = envAccessToken
	} else {
		return nil, errors.New("YNAB_ACCESS_TOKEN is required")
	}

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envAccountGroupsFile) != 0 {
		mapping, err := loadAccountGroups(envAccountGroupsFile)
		if err != nil {
			return nil, err
		}
		env.AccountGroupMapping = mapping
	}

	return &env, nil
}

// loadAccountGroups reads an explicit account-to-group table from a two
// column CSV of account name, group name. When present it replaces the
// prefix-based grouping convention.
func loadAccountGroups(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening account groups file: %w", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading account groups file: %w", err)
	}

	mapping := make(map[string]string, len(rows))
	for _, row := range rows {
		if len(row) != 2 {
			return nil, fmt.Errorf("account groups file: expected 2 columns, got %d", len(row))
		}
		mapping[row[0]] = row[1]
	}

	return mapping, nil
}
