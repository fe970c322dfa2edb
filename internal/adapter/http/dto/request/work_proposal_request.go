package request

import (
	"nirman/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateWorkProposalRequest struct {
	NameOfWork     string           `json:"nameOfWork" binding:"required"`
	City           string           `json:"city"`
	Ward           string           `json:"ward"`
	Scheme         string           `json:"scheme"`
	TypeOfWork     string           `json:"typeOfWork"`
	Department     string           `json:"department" binding:"required"`
	FinancialYear  string           `json:"financialYear"`
	ProposedAmount *decimal.Decimal `json:"proposedAmount" binding:"required"`
}

func (r CreateWorkProposalRequest) ToInput() usecase.CreateWorkProposalInput {
	in := usecase.CreateWorkProposalInput{
		NameOfWork:    r.NameOfWork,
		City:          r.City,
		Ward:          r.Ward,
		Scheme:        r.Scheme,
		TypeOfWork:    r.TypeOfWork,
		Department:    r.Department,
		FinancialYear: r.FinancialYear,
	}
	if r.ProposedAmount != nil {
		in.ProposedAmount = *r.ProposedAmount
	}
	return in
}

type StageApprovalRequest struct {
	ApprovalNumber string           `json:"approvalNumber"`
	Date           string           `json:"date"`
	Amount         *decimal.Decimal `json:"amount"`
	Remarks        string           `json:"remarks"`
}

func (r StageApprovalRequest) ToInput() (usecase.StageApprovalInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return usecase.StageApprovalInput{}, err
	}
	in := usecase.StageApprovalInput{ApprovalNumber: r.ApprovalNumber, Date: date, Remarks: r.Remarks}
	if r.Amount != nil {
		in.Amount = *r.Amount
	}
	return in, nil
}

type TenderRequest struct {
	TenderNumber   string `json:"tenderNumber"`
	Date           string `json:"date"`
	ContractorName string `json:"contractorName"`
}

func (r TenderRequest) ToInput() (usecase.TenderInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return usecase.TenderInput{}, err
	}
	return usecase.TenderInput{TenderNumber: r.TenderNumber, Date: date, ContractorName: r.ContractorName}, nil
}

type WorkOrderRequest struct {
	WorkOrderNumber string           `json:"workOrderNumber"`
	Date            string           `json:"date"`
	WorkOrderAmount *decimal.Decimal `json:"workOrderAmount"`
	ContractorName  string           `json:"contractorName"`
}

func (r WorkOrderRequest) ToInput() (usecase.WorkOrderInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return usecase.WorkOrderInput{}, err
	}
	in := usecase.WorkOrderInput{WorkOrderNumber: r.WorkOrderNumber, Date: date, ContractorName: r.ContractorName}
	if r.WorkOrderAmount != nil {
		in.WorkOrderAmount = *r.WorkOrderAmount
	}
	return in, nil
}

type ReasonRequest struct {
	Reason string `json:"reason"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
