// In file: internal/ynab/client.go

// Package ynab wraps the read-only portion of the YNAB REST API.
//
// Every public method maps to exactly one GET request and funnels through a
// single request primitive, so there is exactly one place that performs
// network I/O and exactly one place that classifies failures. Response bodies
// are passed through untouched: this package never interprets, validates, or
// reshapes what the upstream service returns.
package ynab

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/brynsp/mcp-ynab/internal/config"
)

// ClientError is the uniform error kind for every upstream failure: HTTP
// responses outside the 2xx range and transport-level failures (DNS,
// connection refused, timeout) alike.
type ClientError struct {
	// StatusCode is the upstream HTTP status, or 0 for transport failures.
	StatusCode int
	// Message carries the status code and response body for HTTP errors, or
	// the underlying transport failure description otherwise.
	Message string
}

func (e *ClientError) Error() string {
	return e.Message
}

// Client provides read-only access to budgets, accounts, categories, payees,
// transactions, months, and scheduled transactions.
//
// A Client owns one HTTP session bound at construction to a base URL and
// bearer credential. Callers acquire it for the duration of a
// request-handling unit and must release it with Close on every exit path.
type Client struct {
	http *resty.Client
}

// NewClient creates a YNAB API client from the given configuration.
// It fails fast if the access token is absent, so a misconfigured process
// never gets as far as issuing an unauthenticated request.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, config.ErrMissingToken
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.Token).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.RequestTimeout)

	return &Client{http: httpClient}, nil
}

// Close releases the client's HTTP session. It is safe to call more than
// once.
func (c *Client) Close() {
	c.http.GetClient().CloseIdleConnections()
}

// get is the single request primitive every public method funnels through.
// It issues one GET against the given endpoint, attaches only the query
// parameters that are actually present, and normalizes every failure into a
// *ClientError. On success the raw JSON body is returned unmodified.
func (c *Client) get(ctx context.Context, endpoint string, query map[string]string) (json.RawMessage, error) {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(endpoint)
	if err != nil {
		return nil, &ClientError{
			Message: fmt.Sprintf("YNAB API request failed: %v", err),
		}
	}
	if resp.IsError() {
		return nil, &ClientError{
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("YNAB API request failed with status %d: %s", resp.StatusCode(), resp.String()),
		}
	}

	return json.RawMessage(resp.Body()), nil
}

// --- Budget endpoints ---

// GetBudgets returns all budgets associated with the account.
func (c *Client) GetBudgets(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/budgets", nil)
}

// GetBudget returns a single budget. budgetID may be a budget ID or the
// sentinel "last-used", which is passed through verbatim for the upstream
// service to resolve.
func (c *Client) GetBudget(ctx context.Context, budgetID string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/budgets/%s", budgetID), nil)
}

// GetBudgetSettings returns a budget's settings, including currency format.
func (c *Client) GetBudgetSettings(ctx context.Context, budgetID string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/budgets/%s/settings", budgetID), nil)
}

// --- Account endpoints ---

// GetAccounts returns all accounts for a budget.
func (c *Client) GetAccounts(ctx context.Context, budgetID string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/budgets/%s/accounts", budgetID), nil)
}

// GetAccount returns a single account by ID.
func (c *Client) GetAccount(ctx context.Context, budgetID, accountID string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/budgets/%s/accounts/%s", budgetID, accountID), nil)
}

// --- Category endpoints ---

// GetCategories returns all category groups with their categories.
func (c *Client) GetCategories(ctx context.Context, budgetID string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/budgets/%s/categories", budgetID), nil)
}

// GetCategory returns a single category by ID.
func (c *Client) GetCategory(ctx context.Context, budgetID, categoryID string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/budgets/%s/categories/%s", budgetID, categoryID), nil)
}

// --- Payee endpoints ---

// GetPayees returns all payees for a budget.
func (c *Client) GetPayees(ctx context.Context, budgetID string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/budgets/%s/payees", budgetID), nil)
}

// GetPayee returns a single payee by ID.
func (c *Client) GetPayee(ctx context.Context, budgetID, payeeID string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/budgets/%s/payees/%s", budgetID, payeeID), nil)
}

// --- Transaction endpoints ---

// GetTransactions returns transactions for a budget. sinceDate (YYYY-MM-DD)
// and typeFilter ("uncategorized" or "unapproved") are optional; an empty
// string means the filter is omitted from the request entirely.
func (c *Client) GetTransactions(ctx context.Context, budgetID, sinceDate, typeFilter string) (json.RawMessage, error) {
	query := map[string]string{}
	if sinceDate != "" {
		query["since_date"] = sinceDate
	}
	if typeFilter != "" {
		query["type"] = typeFilter
	}
	return c.get(ctx, fmt.Sprintf("/budgets/%s/transactions", budgetID), query)
}

// GetTransaction returns a single transaction by ID.
func (c *Client) GetTransaction(ctx context.Context, budgetID, transactionID string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/budgets/%s/transactions/%s", budgetID, transactionID), nil)
}

// GetTransactionsByAccount returns transactions for a specific account,
// optionally restricted to those on or after sinceDate.
func (c *Client) GetTransactionsByAccount(ctx context.Context, budgetID, accountID, sinceDate string) (json.RawMessage, error) {
	query := map[string]string{}
	if sinceDate != "" {
		query["since_date"] = sinceDate
	}
	return c.get(ctx, fmt.Sprintf("/budgets/%s/accounts/%s/transactions", budgetID, accountID), query)
}

// GetTransactionsByCategory returns transactions for a specific category,
// optionally restricted to those on or after sinceDate.
func (c *Client) GetTransactionsByCategory(ctx context.Context, budgetID, categoryID, sinceDate string) (json.RawMessage, error) {
	query := map[string]string{}
	if sinceDate != "" {
		query["since_date"] = sinceDate
	}
	return c.get(ctx, fmt.Sprintf("/budgets/%s/categories/%s/transactions", budgetID, categoryID), query)
}

// GetTransactionsByPayee returns transactions for a specific payee,
// optionally restricted to those on or after sinceDate.
func (c *Client) GetTransactionsByPayee(ctx context.Context, budgetID, payeeID, sinceDate string) (json.RawMessage, error) {
	query := map[string]string{}
	if sinceDate != "" {
		query["since_date"] = sinceDate
	}
	return c.get(ctx, fmt.Sprintf("/budgets/%s/payees/%s/transactions", budgetID, payeeID), query)
}

// --- Monthly budget endpoints ---

// GetMonths returns all budget months.
func (c *Client) GetMonths(ctx context.Context, budgetID string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/budgets/%s/months", budgetID), nil)
}

// GetMonth returns a single budget month with its category balances. month is
// a YYYY-MM-DD date; the upstream service ignores the day component.
func (c *Client) GetMonth(ctx context.Context, budgetID, month string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/budgets/%s/months/%s", budgetID, month), nil)
}

// --- Scheduled transaction endpoints ---

// GetScheduledTransactions returns all scheduled transactions for a budget.
func (c *Client) GetScheduledTransactions(ctx context.Context, budgetID string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/budgets/%s/scheduled_transactions", budgetID), nil)
}

// GetScheduledTransaction returns a single scheduled transaction by ID.
func (c *Client) GetScheduledTransaction(ctx context.Context, budgetID, scheduledTransactionID string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/budgets/%s/scheduled_transactions/%s", budgetID, scheduledTransactionID), nil)
}
