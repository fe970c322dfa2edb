package response

import (
	"time"

	"nirman/internal/domain/entities"
	"nirman/internal/usecase"

	"github.com/shopspring/decimal"
)

type InstallmentResponse struct {
	Installment      entities.Installment `json:"installment"`
	TotalReleased    decimal.Decimal      `json:"totalReleased"`
	RemainingBalance decimal.Decimal      `json:"remainingBalance"`
}

func FromInstallmentResult(r usecase.InstallmentResult) InstallmentResponse {
	return InstallmentResponse{
		Installment:      r.Installment,
		TotalReleased:    r.TotalReleased,
		RemainingBalance: r.RemainingBalance,
	}
}

// ProgressView is the ledger with lastUpdatedBy resolved to a user.
type ProgressView struct {
	ProgressPercentage       int                    `json:"progressPercentage"`
	MBStage                  string                 `json:"mbStageMeasurementBookStag,omitempty"`
	ExpenditureAmount        *decimal.Decimal       `json:"expenditureAmount,omitempty"`
	SanctionedAmount         decimal.Decimal        `json:"sanctionedAmount"`
	Installments             []entities.Installment `json:"installments"`
	TotalAmountReleasedSoFar decimal.Decimal        `json:"totalAmountReleasedSoFar"`
	RemainingBalance         decimal.Decimal        `json:"remainingBalance"`
	LastUpdatedBy            *entities.UserRef      `json:"lastUpdatedBy,omitempty"`
	UpdatedAt                time.Time              `json:"updatedAt"`
}

type ProgressHistoryResponse struct {
	WorkInfo usecase.WorkInfo `json:"workInfo"`
	Progress *ProgressView    `json:"progress"`
}

func FromProgressHistory(h usecase.ProgressHistory) ProgressHistoryResponse {
	out := ProgressHistoryResponse{WorkInfo: h.WorkInfo}
	if wp := h.Progress; wp != nil {
		installments := wp.Installments
		if installments == nil {
			installments = []entities.Installment{}
		}
		out.Progress = &ProgressView{
			ProgressPercentage:       wp.ProgressPercentage,
			MBStage:                  wp.MBStage,
			ExpenditureAmount:        wp.ExpenditureAmount,
			SanctionedAmount:         wp.SanctionedAmount,
			Installments:             installments,
			TotalAmountReleasedSoFar: wp.TotalAmountReleasedSoFar,
			RemainingBalance:         wp.RemainingBalance,
			LastUpdatedBy:            h.LastUpdatedBy,
			UpdatedAt:                wp.UpdatedAt,
		}
	}
	return out
}

// DashboardResponse carries pagination next to the data rather than inside it.
type DashboardResponse struct {
	Success    bool                    `json:"success"`
	Data       []entities.WorkProposal `json:"data"`
	Pagination usecase.Pagination      `json:"pagination"`
}

func FromDashboardPage(p usecase.DashboardPage) DashboardResponse {
	data := p.Data
	if data == nil {
		data = []entities.WorkProposal{}
	}
	return DashboardResponse{Success: true, Data: data, Pagination: p.Pagination}
}
