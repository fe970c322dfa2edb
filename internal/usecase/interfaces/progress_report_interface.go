package interfaces

import "nirman/internal/domain/entities"

// IProgressReportRenderer turns dashboard rows into a downloadable workbook.
type IProgressReportRenderer interface {
	Render(title string, rows []entities.WorkProposal) ([]byte, error)
}
