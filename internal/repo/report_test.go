package repo_test

import (
	"testing"

	"github.com/rogerio-castellano/inventory-manager/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowStockReport_Text(t *testing.T) {
	s := repo.NewProductStore()

	want := "=== Low Stock Report (threshold 5) ===\n\n" +
		"ID: 4 | Name: Milk | Qty: 5 | Price: 3.00\n"
	assert.Equal(t, want, s.LowStockReport().Text())
	assert.Empty(t, s.LowStockReport().Message)
}

func TestLowStockReport_TextWhenNothingIsLow(t *testing.T) {
	s := repo.NewProductStore()
	s.SetLowStockThreshold(0)

	report := s.LowStockReport()

	assert.True(t, report.Empty())
	assert.Equal(t, repo.NoLowStockMessage, report.Message)
	assert.Equal(t, "=== Low Stock Report (threshold 0) ===\n\nNo items are low on stock.\n", report.Text())
}

func TestInMemoryUserRepository_Seeded(t *testing.T) {
	users, err := repo.NewSeededUserRepository(repo.DefaultAccounts)
	require.NoError(t, err)

	admin, err := users.GetByUsername("admin")
	require.NoError(t, err)
	assert.True(t, admin.Role.IsAdmin())
	assert.NotEqual(t, "123", admin.PasswordHash)

	_, err = users.GetByUsername("nobody")
	assert.ErrorIs(t, err, repo.ErrUserNotFound)

	_, err = users.CreateUser(admin)
	assert.ErrorIs(t, err, repo.ErrDuplicatedValueUnique)
}
