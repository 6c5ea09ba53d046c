package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rogerio-castellano/inventory-manager/internal/auth"
	"github.com/rogerio-castellano/inventory-manager/internal/console"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSession(t *testing.T, store *repo.ProductStore, lines ...string) (string, error) {
	t.Helper()
	users, err := repo.NewSeededUserRepository(repo.DefaultAccounts)
	require.NoError(t, err)

	var out bytes.Buffer
	s := console.NewSession(console.Deps{
		Products:      store,
		Metrics:       store,
		Authenticator: auth.NewCredentialAuthenticator(users),
	}, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)

	err = s.Run(context.Background())
	return out.String(), err
}

func TestSession_LoginGate(t *testing.T) {
	store := repo.NewProductStore()

	out, err := runSession(t, store, "admin", "bad", "ghost", "123", "user", "nope")

	assert.ErrorIs(t, err, console.ErrTooManyAttempts)
	assert.Equal(t, console.MaxLoginAttempts, strings.Count(out, "Invalid login"))
	assert.NotContains(t, out, "Welcome")
}

func TestSession_RetryThenQuit(t *testing.T) {
	store := repo.NewProductStore()

	out, err := runSession(t, store, "admin", "bad", "admin", "123", "quit")

	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "Invalid login"))
	assert.Contains(t, out, "Welcome, admin (Admin)")
}

func TestSession_AddListAndDelete(t *testing.T) {
	store := repo.NewProductStore()

	out, err := runSession(t, store,
		"user", "123",
		"add", "5", " Eggs ", "12", "0.25",
		"list",
		"delete", "1",
		"delete", "999",
		"quit",
	)

	require.NoError(t, err)
	assert.Contains(t, out, "Added.")
	assert.Contains(t, out, "Eggs")
	assert.Contains(t, out, "Deleted.")
	assert.Contains(t, out, "No product found with ID 999")
	assert.Equal(t, 4, store.TotalCount())
	assert.Equal(t, "Eggs", store.NewestItemName())
}

func TestSession_InputErrorsKeepSessionAlive(t *testing.T) {
	store := repo.NewProductStore()

	out, err := runSession(t, store,
		"user", "123",
		"add", "7", "Jam", "abc", "1",
		"add", "1", "Pear", "1", "1",
		"add", "8", "", "1", "1",
		"delete", "x",
		"frobnicate",
		"quit",
	)

	require.NoError(t, err)
	assert.Contains(t, out, "Quantity must be a non-negative integer.")
	assert.Contains(t, out, "A product with this ID already exists.")
	assert.Contains(t, out, "Name cannot be empty.")
	assert.Contains(t, out, "ID must be a non-negative integer.")
	assert.Contains(t, out, `Unknown command "frobnicate"`)
	assert.Equal(t, repo.SampleProducts(), store.GetAll())
}

func TestSession_AdminCommandsRequireAdmin(t *testing.T) {
	store := repo.NewProductStore()

	out, err := runSession(t, store, "user", "123", "clear", "reset", "update", "threshold", "quit")

	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "requires the Admin role"))
	assert.Equal(t, 4, store.TotalCount())
}

func TestSession_AdminPanel(t *testing.T) {
	store := repo.NewProductStore()

	out, err := runSession(t, store,
		"admin", "123",
		"update", "2", "Plantain", "3", "0.9",
		"threshold", "10",
		"clear", "n",
		"clear", "y",
		"dashboard",
		"reset",
		"quit",
	)

	require.NoError(t, err)
	assert.Contains(t, out, "Updated.")
	assert.Contains(t, out, "Low-stock threshold set to 10")
	assert.Contains(t, out, "Cancelled.")
	assert.Contains(t, out, "All products cleared.")
	assert.Contains(t, out, "Sample data restored.")
	assert.Equal(t, 10, store.LowStockThreshold())
	assert.Equal(t, repo.SampleProducts(), store.GetAll())
}

func TestSession_LogoutReturnsToLogin(t *testing.T) {
	store := repo.NewProductStore()

	out, err := runSession(t, store, "user", "123", "logout", "admin", "123", "reset", "quit")

	require.NoError(t, err)
	assert.Contains(t, out, "Logged out.")
	assert.Contains(t, out, "Welcome, admin (Admin)")
	assert.Contains(t, out, "Sample data restored.")
}

func TestSession_EndOfInputEndsQuietly(t *testing.T) {
	store := repo.NewProductStore()

	_, err := runSession(t, store, "user", "123", "add", "9")

	assert.NoError(t, err)
	assert.Equal(t, 4, store.TotalCount())
}

func TestRender(t *testing.T) {
	store := repo.NewProductStore()
	m, err := store.GetDashboardMetrics()
	require.NoError(t, err)

	dash := console.RenderDashboard(m)
	assert.Contains(t, dash, "Total Products")
	assert.Contains(t, dash, "130.00")
	assert.Contains(t, dash, "Milk")

	list := console.RenderProducts(store.GetAll(), store.LowStockThreshold())
	assert.Contains(t, list, "Banana")
	assert.Equal(t, 1, strings.Count(list, "low"))

	assert.Contains(t, console.RenderReport(store.LowStockReport()), "ID: 4 | Name: Milk | Qty: 5 | Price: 3.00")
	assert.Contains(t, console.RenderProducts(nil, 5), "No products.")
}
