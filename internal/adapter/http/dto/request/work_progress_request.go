package request

import (
	"strings"

	"nirman/internal/domain/entities"
	"nirman/internal/usecase"

	"github.com/shopspring/decimal"
)

type ProgressUpdateRequest struct {
	ProgressPercentage *int             `json:"progressPercentage" binding:"required"`
	MBStage            *string          `json:"mbStageMeasurementBookStag"`
	ExpenditureAmount  *decimal.Decimal `json:"expenditureAmount"`
	InstallmentAmount  *decimal.Decimal `json:"installmentAmount"`
	InstallmentDate    string           `json:"installmentDate"`
	Description        string           `json:"description"`
}

func (r ProgressUpdateRequest) ToInput() (usecase.ProgressUpdateInput, error) {
	in := usecase.ProgressUpdateInput{
		MBStage:           r.MBStage,
		ExpenditureAmount: r.ExpenditureAmount,
		InstallmentAmount: r.InstallmentAmount,
		Description:       strings.TrimSpace(r.Description),
	}
	if r.ProgressPercentage != nil {
		in.ProgressPercentage = *r.ProgressPercentage
	}
	date, err := parseDate(r.InstallmentDate)
	if err != nil {
		return usecase.ProgressUpdateInput{}, err
	}
	if !date.IsZero() {
		in.InstallmentDate = &date
	}
	return in, nil
}

type InstallmentRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Date        string           `json:"date"`
	Description string           `json:"description"`
}

func (r InstallmentRequest) ToInput() (usecase.InstallmentInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return usecase.InstallmentInput{}, err
	}
	in := usecase.InstallmentInput{Date: date, Description: strings.TrimSpace(r.Description)}
	if r.Amount != nil {
		in.Amount = *r.Amount
	}
	return in, nil
}

type DocumentRequest struct {
	Name        string `json:"name"`
	ObjectKey   string `json:"objectKey"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	UploadedBy  string `json:"uploadedBy"`
	UploadedAt  string `json:"uploadedAt"`
}

// CompleteWorkRequest: an absent completionDocuments keeps the stored list,
// an explicit [] clears it.
type CompleteWorkRequest struct {
	FinalExpenditureAmount *decimal.Decimal  `json:"finalExpenditureAmount"`
	CompletionDocuments    []DocumentRequest `json:"completionDocuments"`
}

func (r CompleteWorkRequest) ToInput() (usecase.CompleteWorkInput, error) {
	in := usecase.CompleteWorkInput{FinalExpenditureAmount: r.FinalExpenditureAmount}
	if r.CompletionDocuments == nil {
		return in, nil
	}

	in.CompletionDocuments = make([]entities.Document, 0, len(r.CompletionDocuments))
	for _, d := range r.CompletionDocuments {
		at, err := parseDate(d.UploadedAt)
		if err != nil {
			return usecase.CompleteWorkInput{}, err
		}
		in.CompletionDocuments = append(in.CompletionDocuments, entities.Document{
			Name:        d.Name,
			ObjectKey:   d.ObjectKey,
			URL:         d.URL,
			ContentType: d.ContentType,
			Size:        d.Size,
			UploadedBy:  d.UploadedBy,
			UploadedAt:  at,
		})
	}
	return in, nil
}

// DashboardRequest is bound from the query string. Status may repeat or be
// comma-separated.
type DashboardRequest struct {
	Page        int      `form:"page"`
	Limit       int      `form:"limit"`
	Status      []string `form:"status"`
	Department  string   `form:"department"`
	MinProgress *int     `form:"minProgress"`
	MaxProgress *int     `form:"maxProgress"`
}

func (r DashboardRequest) ToQuery() usecase.DashboardQuery {
	q := usecase.DashboardQuery{
		Page:        r.Page,
		Limit:       r.Limit,
		Department:  r.Department,
		MinProgress: r.MinProgress,
		MaxProgress: r.MaxProgress,
	}
	for _, raw := range r.Status {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				q.Statuses = append(q.Statuses, entities.WorkStatus(s))
			}
		}
	}
	return q
}
