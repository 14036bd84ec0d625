// In file: internal/tools/catalog.go
package tools

// budgetIDSchema is shared by every tool that addresses a budget: all of them
// accept either a concrete budget ID or the "last-used" sentinel, which is
// passed through verbatim for the YNAB API to resolve.
func budgetIDSchema() *JSONSchema {
	return &JSONSchema{Type: "string", Description: "The budget ID or 'last-used'"}
}

// sinceDateSchema is shared by the transaction-listing tools.
func sinceDateSchema() *JSONSchema {
	return &JSONSchema{Type: "string", Description: "Filter transactions since this date (YYYY-MM-DD)"}
}

// Catalog returns the complete, stable list of tool descriptors. The returned
// slice is freshly built on each call so callers can hold it without aliasing
// package state.
func Catalog() []Tool {
	return []Tool{
		NewTool(
			"get_budgets",
			"Get all budgets associated with the YNAB account",
			JSONSchema{Type: "object"},
		),
		NewTool(
			"get_budget",
			"Get a single budget by ID. Use 'last-used' for the most recently accessed budget.",
			JSONSchema{
				Type: "object",
				Properties: map[string]*JSONSchema{
					"budget_id": budgetIDSchema(),
				},
				Required: []string{"budget_id"},
			},
		),
		NewTool(
			"get_budget_settings",
			"Get settings for a budget including currency format",
			JSONSchema{
				Type: "object",
				Properties: map[string]*JSONSchema{
					"budget_id": budgetIDSchema(),
				},
				Required: []string{"budget_id"},
			},
		),
		NewTool(
			"get_accounts",
			"Get all accounts for a budget",
			JSONSchema{
				Type: "object",
				Properties: map[string]*JSONSchema{
					"budget_id": budgetIDSchema(),
				},
				Required: []string{"budget_id"},
			},
		),
		NewTool(
			"get_account",
			"Get a single account by ID",
			JSONSchema{
				Type: "object",
				Properties: map[string]*JSONSchema{
					"budget_id":  budgetIDSchema(),
					"account_id": {Type: "string", Description: "The account ID"},
				},
				Required: []string{"budget_id", "account_id"},
			},
		),
		NewTool(
			"get_categories",
			"Get all categories for a budget",
			JSONSchema{
				Type: "object",
				Properties: map[string]*JSONSchema{
					"budget_id": budgetIDSchema(),
				},
				Required: []string{"budget_id"},
			},
		),
		NewTool(
			"get_category",
			"Get a single category by ID",
			JSONSchema{
				Type: "object",
				Properties: map[string]*JSONSchema{
					"budget_id":   budgetIDSchema(),
					"category_id": {Type: "string", Description: "The category ID"},
				},
				Required: []string{"budget_id", "category_id"},
			},
		),
		NewTool(
			"get_payees",
			"Get all payees for a budget",
			JSONSchema{
				Type: "object",
				Properties: map[string]*JSONSchema{
					"budget_id": budgetIDSchema(),
				},
				Required: []string{"budget_id"},
			},
		),
		NewTool(
			"get_payee",
			"Get a single payee by ID",
			JSONSchema{
				Type: "object",
				Properties: map[string]*JSONSchema{
					"budget_id": budgetIDSchema(),
					"payee_id":  {Type: "string", Description: "The payee ID"},
				},
				Required: []string{"budget_id", "payee_id"},
			},
		),
		NewTool(
			"get_transactions",
			"Get transactions for a budget. Optionally filter by date or type.",
			JSONSchema{
				Type: "object",
				Properties: map[string]*JSONSchema{
					"budget_id":  budgetIDSchema(),
					"since_date": sinceDateSchema(),
					"type": {
						Type:        "string",
						Description: "Filter by type: 'uncategorized' or 'unapproved'",
						Enum:        []string{"uncategorized", "unapproved"},
					},
				},
				Required: []string{"budget_id"},
			},
		),
		NewTool(
			"get_transaction",
			"Get a single transaction by ID",
			JSONSchema{
				Type: "object",
				Properties: map[string]*JSONSchema{
					"budget_id":      budgetIDSchema(),
					"transaction_id": {Type: "string", Description: "The transaction ID"},
				},
				Required: []string{"budget_id", "transaction_id"},
			},
		),
		NewTool(
			"get_transactions_by_account",
			"Get transactions for a specific account",
			JSONSchema{
				Type: "object",
				Properties: map[string]*JSONSchema{
					"budget_id":  budgetIDSchema(),
					"account_id": {Type: "string", Description: "The account ID"},
					"since_date": sinceDateSchema(),
				},
				Required: []string{"budget_id", "account_id"},
			},
		),
		NewTool(
			"get_transactions_by_category",
			"Get transactions for a specific category",
			JSONSchema{
				Type: "object",
				Properties: map[string]*JSONSchema{
					"budget_id":   budgetIDSchema(),
					"category_id": {Type: "string", Description: "The category ID"},
					"since_date":  sinceDateSchema(),
				},
				Required: []string{"budget_id", "category_id"},
			},
		),
		NewTool(
			"get_transactions_by_payee",
			"Get transactions for a specific payee",
			JSONSchema{
				Type: "object",
				Properties: map[string]*JSONSchema{
					"budget_id":  budgetIDSchema(),
					"payee_id":   {Type: "string", Description: "The payee ID"},
					"since_date": sinceDateSchema(),
				},
				Required: []string{"budget_id", "payee_id"},
			},
		),
		NewTool(
			"get_months",
			"Get all budget months",
			JSONSchema{
				Type: "object",
				Properties: map[string]*JSONSchema{
					"budget_id": budgetIDSchema(),
				},
				Required: []string{"budget_id"},
			},
		),
		NewTool(
			"get_month",
			"Get a single budget month with category balances",
			JSONSchema{
				Type: "object",
				Properties: map[string]*JSONSchema{
					"budget_id": budgetIDSchema(),
					"month":     {Type: "string", Description: "The month in YYYY-MM-DD format (day will be ignored)"},
				},
				Required: []string{"budget_id", "month"},
			},
		),
		NewTool(
			"get_scheduled_transactions",
			"Get all scheduled transactions for a budget",
			JSONSchema{
				Type: "object",
				Properties: map[string]*JSONSchema{
					"budget_id": budgetIDSchema(),
				},
				Required: []string{"budget_id"},
			},
		),
		NewTool(
			"get_scheduled_transaction",
			"Get a single scheduled transaction by ID",
			JSONSchema{
				Type: "object",
				Properties: map[string]*JSONSchema{
					"budget_id":                budgetIDSchema(),
					"scheduled_transaction_id": {Type: "string", Description: "The scheduled transaction ID"},
				},
				Required: []string{"budget_id", "scheduled_transaction_id"},
			},
		),
	}
}
