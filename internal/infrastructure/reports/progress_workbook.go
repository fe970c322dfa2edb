package reports

import (
	"bytes"
	"time"

	"nirman/internal/domain/entities"
	"nirman/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Work Progress"

var headers = []string{
	"Serial No.",
	"Name of Work",
	"Department",
	"Status",
	"Progress %",
	"Sanctioned Amount",
	"Released So Far",
	"Remaining Balance",
	"Last Updated",
}

// ProgressWorkbook renders dashboard rows as a single-sheet xlsx workbook.
type ProgressWorkbook struct{}

var _ interfaces.IProgressReportRenderer = ProgressWorkbook{}

func NewProgressWorkbook() ProgressWorkbook {
	return ProgressWorkbook{}
}

func (ProgressWorkbook) Render(title string, rows []entities.WorkProposal) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}
	if title != "" {
		if err := f.SetDocProps(&excelize.DocProperties{Title: title, Creator: "nirman"}); err != nil {
			return nil, err
		}
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}

	for i, p := range rows {
		if err := f.SetSheetRow(sheetName, rowCell(i+2), rowValues(p)); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func rowCell(row int) string {
	cell, _ := excelize.CoordinatesToCellName(1, row)
	return cell
}

func rowValues(p entities.WorkProposal) *[]any {
	values := []any{
		p.SerialNumber,
		p.NameOfWork,
		p.Department,
		string(p.CurrentStatus),
		0,
		"",
		"",
		"",
		"",
	}
	if wp := p.WorkProgress; wp != nil {
		values[4] = wp.ProgressPercentage
		values[5] = amount(wp.SanctionedAmount)
		values[6] = amount(wp.TotalAmountReleasedSoFar)
		values[7] = amount(wp.RemainingBalance)
		if !wp.UpdatedAt.IsZero() {
			values[8] = wp.UpdatedAt.UTC().Format(time.DateTime)
		}
	}
	return &values
}

// amount keeps two decimal places; spreadsheets want numbers, not strings.
func amount(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
