package response

import (
	"encoding/json"
	"testing"
	"time"

	"nirman/internal/domain/entities"
	"nirman/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountsEncodeAsNumbers(t *testing.T) {
	raw, err := json.Marshal(FromInstallmentResult(usecase.InstallmentResult{
		Installment:      entities.Installment{InstallmentNo: 2, Amount: decimal.RequireFromString("2500.50")},
		TotalReleased:    decimal.RequireFromString("7500.50"),
		RemainingBalance: decimal.RequireFromString("92499.50"),
	}))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, 7500.5, got["totalReleased"])
	assert.Equal(t, 92499.5, got["remainingBalance"])
}

func TestFromProgressHistory(t *testing.T) {
	t.Run("without ledger", func(t *testing.T) {
		out := FromProgressHistory(usecase.ProgressHistory{WorkInfo: usecase.WorkInfo{SerialNumber: "JSP/2026/00001"}})
		raw, err := json.Marshal(out)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"progress":null`)
	})

	t.Run("resolved user", func(t *testing.T) {
		ref := &entities.UserRef{ID: "u-1", Name: "Asha"}
		out := FromProgressHistory(usecase.ProgressHistory{
			Progress:      &entities.WorkProgress{ProgressPercentage: 40, LastUpdatedBy: "u-1", UpdatedAt: time.Now()},
			LastUpdatedBy: ref,
		})
		require.NotNil(t, out.Progress)
		assert.Equal(t, ref, out.Progress.LastUpdatedBy)
		assert.NotNil(t, out.Progress.Installments)
	})
}

func TestFromDashboardPage_EmptyDataIsArray(t *testing.T) {
	raw, err := json.Marshal(FromDashboardPage(usecase.DashboardPage{Pagination: usecase.Pagination{Current: 1, Limit: 10}}))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"data":[]`)
	assert.Contains(t, string(raw), `"pagination":{"current":1,"pages":0,"total":0,"limit":10}`)
}
