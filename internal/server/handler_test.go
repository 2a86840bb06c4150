package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiagodiogo/teya-tiny-ledger/internal/ledger"
	"github.com/tiagodiogo/teya-tiny-ledger/internal/server"
	"github.com/tiagodiogo/teya-tiny-ledger/internal/storage/memory"
)

func newTestApp() *fiber.App {
	ledgerService := ledger.NewLedger(memory.NewAccountStore(), nil, nil)
	app := fiber.New()
	server.RegisterRoutes(app, server.NewHandler(ledgerService, nil))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, payload
}

func createCustomer(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp, payload := doJSON(t, app, http.MethodPost, "/tiny-ledger/customers", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(payload, &created))
	require.NotEmpty(t, created.ID)
	return created.ID
}

func getBalance(t *testing.T, app *fiber.App, customerID string) decimal.Decimal {
	t.Helper()

	resp, payload := doJSON(t, app, http.MethodGet, fmt.Sprintf("/tiny-ledger/customers/%s/balance", customerID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		AccountID string          `json:"account_id"`
		Balance   decimal.Decimal `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(payload, &body))
	require.Equal(t, customerID, body.AccountID)
	return body.Balance
}

func TestHealth(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	resp, payload := doJSON(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(payload))
}

func TestLedgerEndToEnd(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	customerID := createCustomer(t, app)

	assert.True(t, getBalance(t, app, customerID).Equal(decimal.Zero))

	// Deposit 10.
	resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/tiny-ledger/customers/%s/transactions", customerID), fiber.Map{
		"type":        "DEPOSIT",
		"amount":      10,
		"description": "account-opening",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, getBalance(t, app, customerID).Equal(decimal.NewFromInt(10)))

	// Attempt to withdraw more than the balance.
	resp, payload := doJSON(t, app, http.MethodPost, fmt.Sprintf("/tiny-ledger/customers/%s/transactions", customerID), fiber.Map{
		"type":        "WITHDRAWAL",
		"amount":      20,
		"description": "greedy-transaction",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(payload), "insufficient funds")
	assert.True(t, getBalance(t, app, customerID).Equal(decimal.NewFromInt(10)))

	// Withdraw all the funds.
	resp, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/tiny-ledger/customers/%s/transactions", customerID), fiber.Map{
		"type":        "WITHDRAWAL",
		"amount":      10,
		"description": "fair-transaction",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, getBalance(t, app, customerID).Equal(decimal.Zero))

	// The log holds the deposit and the successful withdrawal, in order.
	resp, payload = doJSON(t, app, http.MethodGet, fmt.Sprintf("/tiny-ledger/customers/%s/transactions", customerID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listing struct {
		Transactions []struct {
			ID          string          `json:"id"`
			Type        string          `json:"type"`
			Amount      decimal.Decimal `json:"amount"`
			Description string          `json:"description"`
		} `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal(payload, &listing))
	require.Len(t, listing.Transactions, 2)
	assert.Equal(t, "DEPOSIT", listing.Transactions[0].Type)
	assert.Equal(t, "account-opening", listing.Transactions[0].Description)
	assert.Equal(t, "WITHDRAWAL", listing.Transactions[1].Type)
	assert.Equal(t, "fair-transaction", listing.Transactions[1].Description)
}

func TestUnknownCustomerReturnsNotFound(t *testing.T) {
	t.Parallel()

	app := newTestApp()

	resp, _ := doJSON(t, app, http.MethodGet, "/tiny-ledger/customers/b5bd1b9e-0000-0000-0000-000000000000/balance", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/tiny-ledger/customers/b5bd1b9e-0000-0000-0000-000000000000/transactions", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/tiny-ledger/customers/b5bd1b9e-0000-0000-0000-000000000000/transactions", fiber.Map{
		"type":   "DEPOSIT",
		"amount": 10,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInvalidTransactionTypeReturnsBadRequest(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	customerID := createCustomer(t, app)

	resp, payload := doJSON(t, app, http.MethodPost, fmt.Sprintf("/tiny-ledger/customers/%s/transactions", customerID), fiber.Map{
		"type":   "TRANSFER",
		"amount": 10,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(payload), "invalid transaction type")
	assert.True(t, getBalance(t, app, customerID).Equal(decimal.Zero))
}

func TestNonPositiveAmountReturnsBadRequest(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	customerID := createCustomer(t, app)

	resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/tiny-ledger/customers/%s/transactions", customerID), fiber.Map{
		"type":   "DEPOSIT",
		"amount": -5,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMalformedBodyReturnsBadRequest(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	customerID := createCustomer(t, app)

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/tiny-ledger/customers/%s/transactions", customerID), bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
