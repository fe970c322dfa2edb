package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInstallmentAmount = errors.New("installment amount must be greater than zero")
	ErrExceedsSanctionedAmount  = errors.New("installment exceeds remaining sanctioned amount")
)

type Installment struct {
	InstallmentNo int             `json:"installmentNo"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description,omitempty"`
}

// WorkProgress is the financial/progress ledger embedded in a proposal once
// its work order is issued.
//
// Invariants after every successful AppendInstallment:
//   - TotalAmountReleasedSoFar == sum(Installments[].Amount)
//   - RemainingBalance == SanctionedAmount - TotalAmountReleasedSoFar
type WorkProgress struct {
	ProgressPercentage       int              `json:"progressPercentage"`
	MBStage                  string           `json:"mbStageMeasurementBookStag,omitempty"`
	ExpenditureAmount        *decimal.Decimal `json:"expenditureAmount,omitempty"`
	SanctionedAmount         decimal.Decimal  `json:"sanctionedAmount"`
	Installments             []Installment    `json:"installments"`
	TotalAmountReleasedSoFar decimal.Decimal  `json:"totalAmountReleasedSoFar"`
	RemainingBalance         decimal.Decimal  `json:"remainingBalance"`
	LastUpdatedBy            string           `json:"lastUpdatedBy,omitempty"`
	UpdatedAt                time.Time        `json:"updatedAt"`
}

// NewWorkProgress opens a ledger with nothing released.
func NewWorkProgress(sanctioned decimal.Decimal, by string, now time.Time) *WorkProgress {
	return &WorkProgress{
		SanctionedAmount:         sanctioned,
		Installments:             []Installment{},
		TotalAmountReleasedSoFar: decimal.Zero,
		RemainingBalance:         sanctioned,
		LastUpdatedBy:            by,
		UpdatedAt:                now.UTC(),
	}
}

// ReleasedTotal sums the installment amounts.
func (w *WorkProgress) ReleasedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, in := range w.Installments {
		total = total.Add(in.Amount)
	}
	return total
}

// AppendInstallment records one release. With enforceCeiling the append is
// refused when the new total would pass the sanctioned amount; the ledger is
// untouched on error.
func (w *WorkProgress) AppendInstallment(amount decimal.Decimal, date time.Time, description string, enforceCeiling bool) (Installment, error) {
	if !amount.IsPositive() {
		return Installment{}, ErrInvalidInstallmentAmount
	}

	newTotal := w.TotalAmountReleasedSoFar.Add(amount)
	if enforceCeiling && newTotal.GreaterThan(w.SanctionedAmount) {
		return Installment{}, ErrExceedsSanctionedAmount
	}

	in := Installment{
		InstallmentNo: len(w.Installments) + 1,
		Amount:        amount,
		Date:          date.UTC(),
		Description:   description,
	}
	w.Installments = append(w.Installments, in)
	w.TotalAmountReleasedSoFar = newTotal
	w.RemainingBalance = w.SanctionedAmount.Sub(newTotal)
	return in, nil
}

// Touch records the acting user and the update time.
func (w *WorkProgress) Touch(by string, now time.Time) {
	w.LastUpdatedBy = by
	w.UpdatedAt = now.UTC()
}

func (w WorkProgress) clone() WorkProgress {
	out := w
	if w.ExpenditureAmount != nil {
		v := *w.ExpenditureAmount
		out.ExpenditureAmount = &v
	}
	out.Installments = append([]Installment(nil), w.Installments...)
	return out
}
