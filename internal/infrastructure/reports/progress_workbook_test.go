package reports

import (
	"bytes"
	"testing"
	"time"

	"nirman/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestProgressWorkbook_Render(t *testing.T) {
	updated := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	rows := []entities.WorkProposal{
		{
			SerialNumber:  "JSP/2026/00001",
			NameOfWork:    "Ward 4 drain",
			Department:    "PWD",
			CurrentStatus: entities.StatusWorkInProgress,
			WorkProgress: &entities.WorkProgress{
				ProgressPercentage:       40,
				SanctionedAmount:         decimal.NewFromInt(100000),
				TotalAmountReleasedSoFar: decimal.NewFromInt(25000),
				RemainingBalance:         decimal.NewFromInt(75000),
				UpdatedAt:                updated,
			},
		},
		{
			SerialNumber:  "JSP/2026/00002",
			NameOfWork:    "Library roof",
			Department:    "Education",
			CurrentStatus: entities.StatusWorkOrderCreated,
		},
	}

	data, err := NewProgressWorkbook().Render("Jashpur Work Progress", rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, headers, got[0])
	assert.Equal(t, []string{"JSP/2026/00001", "Ward 4 drain", "PWD", "Work In Progress", "40", "100000", "25000", "75000", "2026-03-14 10:00:00"}, got[1])
	assert.Equal(t, "JSP/2026/00002", got[2][0])
	assert.Equal(t, "0", got[2][4])

	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, "Jashpur Work Progress", props.Title)
}

func TestProgressWorkbook_RenderEmpty(t *testing.T) {
	data, err := NewProgressWorkbook().Render("", nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(sheetName)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
