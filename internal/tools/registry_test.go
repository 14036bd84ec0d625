// In file: internal/tools/registry_test.go
package tools

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brynsp/mcp-ynab/internal/config"
	"github.com/brynsp/mcp-ynab/internal/ynab"
)

// newTestRegistry wires a registry to a fake upstream and returns a counter
// of requests that actually hit the network plus a recorder of the last URL.
func newTestRegistry(t *testing.T) (*Registry, *int64, *atomic.Value) {
	t.Helper()

	var hits int64
	var lastURL atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		lastURL.Store(r.URL.String())
		w.Write([]byte(`{"data":{}}`))
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Token:          "test-token",
		BaseURL:        srv.URL,
		RequestTimeout: 5 * time.Second,
	}
	registry, err := NewRegistry(func() (*ynab.Client, error) {
		return ynab.NewClient(cfg)
	})
	require.NoError(t, err)

	return registry, &hits, &lastURL
}

// fullArguments builds a complete argument mapping for a tool by supplying a
// value for every declared parameter, required and optional alike.
func fullArguments(tool Tool) map[string]string {
	args := make(map[string]string, len(tool.InputSchema.Properties))
	for name, schema := range tool.InputSchema.Properties {
		if len(schema.Enum) > 0 {
			args[name] = schema.Enum[0]
			continue
		}
		args[name] = "v-" + name
	}
	return args
}

func TestCatalogDescriptors(t *testing.T) {
	catalog := Catalog()
	require.Len(t, catalog, 18)

	seen := map[string]bool{}
	for _, tool := range catalog {
		assert.False(t, seen[tool.Name], "tool name %q must be globally unique", tool.Name)
		seen[tool.Name] = true

		assert.NotEmpty(t, tool.Description, "tool %q needs a description", tool.Name)
		assert.Equal(t, "object", tool.InputSchema.Type)

		// Every required parameter must be declared in the contract.
		for _, required := range tool.InputSchema.Required {
			_, ok := tool.InputSchema.Properties[required]
			assert.True(t, ok, "tool %q requires undeclared parameter %q", tool.Name, required)
		}
	}
}

func TestEveryToolHasAHandler(t *testing.T) {
	// NewRegistry enforces catalog/handler parity at construction.
	_, err := NewRegistry(func() (*ynab.Client, error) {
		return nil, errors.New("unused")
	})
	require.NoError(t, err)

	for _, tool := range Catalog() {
		_, ok := handlers[tool.Name]
		assert.True(t, ok, "tool %q missing from handler table", tool.Name)
	}
	assert.Len(t, handlers, len(Catalog()))
}

func TestDispatchUnknownToolNeverAcquiresClient(t *testing.T) {
	acquired := 0
	registry, err := NewRegistry(func() (*ynab.Client, error) {
		acquired++
		return nil, errors.New("should not be called")
	})
	require.NoError(t, err)

	_, err = registry.Dispatch(context.Background(), "get_balance_sheet", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTool))
	assert.Contains(t, err.Error(), "get_balance_sheet")
	assert.Zero(t, acquired)
}

func TestMissingRequiredArgumentsFailBeforeNetwork(t *testing.T) {
	registry, hits, _ := newTestRegistry(t)

	for _, tool := range Catalog() {
		for _, required := range tool.InputSchema.Required {
			args := fullArguments(tool)
			delete(args, required)

			_, err := registry.Dispatch(context.Background(), tool.Name, args)
			require.Error(t, err, "tool %s must fail without %s", tool.Name, required)

			var missing *MissingArgumentError
			require.True(t, errors.As(err, &missing), "tool %s: want MissingArgumentError, got %v", tool.Name, err)
			assert.Equal(t, tool.Name, missing.Tool)
			assert.Equal(t, required, missing.Key)
		}
	}

	assert.Zero(t, atomic.LoadInt64(hits), "validation failures must never reach the network")
}

func TestDispatchRoutesEveryTool(t *testing.T) {
	wantPath := map[string]string{
		"get_budgets":                  "/budgets",
		"get_budget":                   "/budgets/v-budget_id",
		"get_budget_settings":          "/budgets/v-budget_id/settings",
		"get_accounts":                 "/budgets/v-budget_id/accounts",
		"get_account":                  "/budgets/v-budget_id/accounts/v-account_id",
		"get_categories":               "/budgets/v-budget_id/categories",
		"get_category":                 "/budgets/v-budget_id/categories/v-category_id",
		"get_payees":                   "/budgets/v-budget_id/payees",
		"get_payee":                    "/budgets/v-budget_id/payees/v-payee_id",
		"get_transactions":             "/budgets/v-budget_id/transactions",
		"get_transaction":              "/budgets/v-budget_id/transactions/v-transaction_id",
		"get_transactions_by_account":  "/budgets/v-budget_id/accounts/v-account_id/transactions",
		"get_transactions_by_category": "/budgets/v-budget_id/categories/v-category_id/transactions",
		"get_transactions_by_payee":    "/budgets/v-budget_id/payees/v-payee_id/transactions",
		"get_months":                   "/budgets/v-budget_id/months",
		"get_month":                    "/budgets/v-budget_id/months/v-month",
		"get_scheduled_transactions":   "/budgets/v-budget_id/scheduled_transactions",
		"get_scheduled_transaction":    "/budgets/v-budget_id/scheduled_transactions/v-scheduled_transaction_id",
	}

	registry, _, lastURL := newTestRegistry(t)

	for _, tool := range Catalog() {
		t.Run(tool.Name, func(t *testing.T) {
			body, err := registry.Dispatch(context.Background(), tool.Name, fullArguments(tool))
			require.NoError(t, err)
			assert.JSONEq(t, `{"data":{}}`, string(body))

			requested, err := url.Parse(lastURL.Load().(string))
			require.NoError(t, err)

			want, ok := wantPath[tool.Name]
			require.True(t, ok, "no expected path for %s", tool.Name)
			assert.Equal(t, want, requested.Path)

			// Optional parameters ride along as query parameters, never as
			// path segments.
			query := requested.Query()
			for name := range tool.InputSchema.Properties {
				if isRequired(tool, name) {
					assert.Empty(t, query.Get(name), "required %s must not be a query param", name)
					continue
				}
				assert.NotEmpty(t, query.Get(name), "optional %s missing from query", name)
			}
		})
	}
}

func TestDispatchOmitsAbsentOptionalFilters(t *testing.T) {
	registry, _, lastURL := newTestRegistry(t)

	_, err := registry.Dispatch(context.Background(), "get_transactions", map[string]string{"budget_id": "b1"})
	require.NoError(t, err)

	requested, parseErr := url.Parse(lastURL.Load().(string))
	require.NoError(t, parseErr)
	assert.Empty(t, requested.RawQuery, "absent filters must not appear at all")
}

func TestDispatchSurfacesConfigurationError(t *testing.T) {
	registry, err := NewRegistry(func() (*ynab.Client, error) {
		return ynab.NewClient(&config.Config{})
	})
	require.NoError(t, err)

	_, err = registry.Dispatch(context.Background(), "get_budgets", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrMissingToken))
}

func TestDispatchSurfacesGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"name":"unauthorized"}}`, http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{Token: "bad-token", BaseURL: srv.URL, RequestTimeout: 5 * time.Second}
	registry, err := NewRegistry(func() (*ynab.Client, error) {
		return ynab.NewClient(cfg)
	})
	require.NoError(t, err)

	_, err = registry.Dispatch(context.Background(), "get_budgets", nil)
	require.Error(t, err)

	var clientErr *ynab.ClientError
	require.True(t, errors.As(err, &clientErr))
	assert.Equal(t, http.StatusUnauthorized, clientErr.StatusCode)
}

func isRequired(tool Tool, name string) bool {
	for _, required := range tool.InputSchema.Required {
		if required == name {
			return true
		}
	}
	return false
}
