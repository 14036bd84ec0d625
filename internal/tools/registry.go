// In file: internal/tools/registry.go
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/brynsp/mcp-ynab/internal/ynab"
)

// Handler executes one tool against an acquired YNAB client. Handlers pull
// their arguments out of the validated mapping and delegate to exactly one
// client method; they never touch the network themselves.
type Handler func(ctx context.Context, client *ynab.Client, args Arguments) (json.RawMessage, error)

// handlers is the static tool-name to handler table, resolved once at
// startup. Every entry must correspond 1:1 with a Catalog descriptor; the
// registry verifies that invariant on construction.
var handlers = map[string]Handler{
	"get_budgets": func(ctx context.Context, client *ynab.Client, args Arguments) (json.RawMessage, error) {
		return client.GetBudgets(ctx)
	},
	"get_budget": func(ctx context.Context, client *ynab.Client, args Arguments) (json.RawMessage, error) {
		budgetID, err := args.Require("budget_id")
		if err != nil {
			return nil, err
		}
		return client.GetBudget(ctx, budgetID)
	},
	"get_budget_settings": func(ctx context.Context, client *ynab.Client, args Arguments) (json.RawMessage, error) {
		budgetID, err := args.Require("budget_id")
		if err != nil {
			return nil, err
		}
		return client.GetBudgetSettings(ctx, budgetID)
	},
	"get_accounts": func(ctx context.Context, client *ynab.Client, args Arguments) (json.RawMessage, error) {
		budgetID, err := args.Require("budget_id")
		if err != nil {
			return nil, err
		}
		return client.GetAccounts(ctx, budgetID)
	},
	"get_account": func(ctx context.Context, client *ynab.Client, args Arguments) (json.RawMessage, error) {
		budgetID, err := args.Require("budget_id")
		if err != nil {
			return nil, err
		}
		accountID, err := args.Require("account_id")
		if err != nil {
			return nil, err
		}
		return client.GetAccount(ctx, budgetID, accountID)
	},
	"get_categories": func(ctx context.Context, client *ynab.Client, args Arguments) (json.RawMessage, error) {
		budgetID, err := args.Require("budget_id")
		if err != nil {
			return nil, err
		}
		return client.GetCategories(ctx, budgetID)
	},
	"get_category": func(ctx context.Context, client *ynab.Client, args Arguments) (json.RawMessage, error) {
		budgetID, err := args.Require("budget_id")
		if err != nil {
			return nil, err
		}
		categoryID, err := args.Require("category_id")
		if err != nil {
			return nil, err
		}
		return client.GetCategory(ctx, budgetID, categoryID)
	},
	"get_payees": func(ctx context.Context, client *ynab.Client, args Arguments) (json.RawMessage, error) {
		budgetID, err := args.Require("budget_id")
		if err != nil {
			return nil, err
		}
		return client.GetPayees(ctx, budgetID)
	},
	"get_payee": func(ctx context.Context, client *ynab.Client, args Arguments) (json.RawMessage, error) {
		budgetID, err := args.Require("budget_id")
		if err != nil {
			return nil, err
		}
		payeeID, err := args.Require("payee_id")
		if err != nil {
			return nil, err
		}
		return client.GetPayee(ctx, budgetID, payeeID)
	},
	"get_transactions": func(ctx context.Context, client *ynab.Client, args Arguments) (json.RawMessage, error) {
		budgetID, err := args.Require("budget_id")
		if err != nil {
			return nil, err
		}
		return client.GetTransactions(ctx, budgetID, args.Optional("since_date"), args.Optional("type"))
	},
	"get_transaction": func(ctx context.Context, client *ynab.Client, args Arguments) (json.RawMessage, error) {
		budgetID, err := args.Require("budget_id")
		if err != nil {
			return nil, err
		}
		transactionID, err := args.Require("transaction_id")
		if err != nil {
			return nil, err
		}
		return client.GetTransaction(ctx, budgetID, transactionID)
	},
	"get_transactions_by_account": func(ctx context.Context, client *ynab.Client, args Arguments) (json.RawMessage, error) {
		budgetID, err := args.Require("budget_id")
		if err != nil {
			return nil, err
		}
		accountID, err := args.Require("account_id")
		if err != nil {
			return nil, err
		}
		return client.GetTransactionsByAccount(ctx, budgetID, accountID, args.Optional("since_date"))
	},
	"get_transactions_by_category": func(ctx context.Context, client *ynab.Client, args Arguments) (json.RawMessage, error) {
		budgetID, err := args.Require("budget_id")
		if err != nil {
			return nil, err
		}
		categoryID, err := args.Require("category_id")
		if err != nil {
			return nil, err
		}
		return client.GetTransactionsByCategory(ctx, budgetID, categoryID, args.Optional("since_date"))
	},
	"get_transactions_by_payee": func(ctx context.Context, client *ynab.Client, args Arguments) (json.RawMessage, error) {
		budgetID, err := args.Require("budget_id")
		if err != nil {
			return nil, err
		}
		payeeID, err := args.Require("payee_id")
		if err != nil {
			return nil, err
		}
		return client.GetTransactionsByPayee(ctx, budgetID, payeeID, args.Optional("since_date"))
	},
	"get_months": func(ctx context.Context, client *ynab.Client, args Arguments) (json.RawMessage, error) {
		budgetID, err := args.Require("budget_id")
		if err != nil {
			return nil, err
		}
		return client.GetMonths(ctx, budgetID)
	},
	"get_month": func(ctx context.Context, client *ynab.Client, args Arguments) (json.RawMessage, error) {
		budgetID, err := args.Require("budget_id")
		if err != nil {
			return nil, err
		}
		month, err := args.Require("month")
		if err != nil {
			return nil, err
		}
		return client.GetMonth(ctx, budgetID, month)
	},
	"get_scheduled_transactions": func(ctx context.Context, client *ynab.Client, args Arguments) (json.RawMessage, error) {
		budgetID, err := args.Require("budget_id")
		if err != nil {
			return nil, err
		}
		return client.GetScheduledTransactions(ctx, budgetID)
	},
	"get_scheduled_transaction": func(ctx context.Context, client *ynab.Client, args Arguments) (json.RawMessage, error) {
		budgetID, err := args.Require("budget_id")
		if err != nil {
			return nil, err
		}
		scheduledTransactionID, err := args.Require("scheduled_transaction_id")
		if err != nil {
			return nil, err
		}
		return client.GetScheduledTransaction(ctx, budgetID, scheduledTransactionID)
	},
}

// ClientFactory produces a YNAB client for one request-handling unit. The
// registry acquires a client per dispatch and guarantees its release, so a
// factory may hand out fresh sessions or a shared one.
type ClientFactory func() (*ynab.Client, error)

// Registry couples the static tool catalog with the handler table and an
// injected client factory. It is the single dispatch entry point for every
// transport.
type Registry struct {
	acquire ClientFactory
}

// NewRegistry builds a registry around the given client factory. It verifies
// at construction that the catalog and the handler table agree exactly, so a
// missing or orphaned handler is caught at startup rather than mid-dispatch.
func NewRegistry(acquire ClientFactory) (*Registry, error) {
	catalog := Catalog()
	if len(catalog) != len(handlers) {
		return nil, fmt.Errorf("tool catalog has %d entries but handler table has %d", len(catalog), len(handlers))
	}
	for _, tool := range catalog {
		if _, ok := handlers[tool.Name]; !ok {
			return nil, fmt.Errorf("tool %q has no handler", tool.Name)
		}
	}
	return &Registry{acquire: acquire}, nil
}

// Tools returns the full list of tool descriptors for discovery.
func (r *Registry) Tools() []Tool {
	return Catalog()
}

// Dispatch resolves the named tool, validates its arguments, and runs it
// against a freshly acquired YNAB client. The client is released on every
// exit path. Unknown names fail with ErrUnknownTool before any client is
// acquired; missing required arguments fail with *MissingArgumentError before
// any network call is attempted.
func (r *Registry) Dispatch(ctx context.Context, name string, arguments map[string]string) (json.RawMessage, error) {
	handler, ok := handlers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	client, err := r.acquire()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	return handler(ctx, client, Arguments{tool: name, values: arguments})
}
