package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkStatus is the lifecycle position of a work proposal.
//
// The ordered path is
//
//	Pending Technical Approval -> Pending Administrative Approval -> Pending Tender ->
//	Pending Work Order -> Work Order Created -> Work In Progress -> Work Completed
//
// with Work Cancelled and Work Closed as terminal side branches. Legal moves
// are owned by the workflow package.
type WorkStatus string

const (
	StatusPendingTechnicalApproval      WorkStatus = "Pending Technical Approval"
	StatusPendingAdministrativeApproval WorkStatus = "Pending Administrative Approval"
	StatusPendingTender                 WorkStatus = "Pending Tender"
	StatusPendingWorkOrder              WorkStatus = "Pending Work Order"
	StatusWorkOrderCreated              WorkStatus = "Work Order Created"
	StatusWorkInProgress                WorkStatus = "Work In Progress"
	StatusWorkCompleted                 WorkStatus = "Work Completed"
	StatusWorkCancelled                 WorkStatus = "Work Cancelled"
	StatusWorkClosed                    WorkStatus = "Work Closed"
)

var allStatuses = []WorkStatus{
	StatusPendingTechnicalApproval,
	StatusPendingAdministrativeApproval,
	StatusPendingTender,
	StatusPendingWorkOrder,
	StatusWorkOrderCreated,
	StatusWorkInProgress,
	StatusWorkCompleted,
	StatusWorkCancelled,
	StatusWorkClosed,
}

// ActiveStatuses are the statuses the progress dashboard lists by default.
func ActiveStatuses() []WorkStatus {
	return []WorkStatus{StatusWorkOrderCreated, StatusWorkInProgress, StatusWorkCompleted}
}

func (s WorkStatus) Valid() bool {
	for _, v := range allStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// StageApproval is the sub-document recorded by the technical and
// administrative approval stages.
type StageApproval struct {
	ApprovalNumber string          `json:"approvalNumber"`
	Date           time.Time       `json:"date"`
	Amount         decimal.Decimal `json:"amount"`
	Remarks        string          `json:"remarks,omitempty"`
	ApprovedBy     string          `json:"approvedBy"`
}

type Tender struct {
	TenderNumber   string    `json:"tenderNumber"`
	Date           time.Time `json:"date"`
	ContractorName string    `json:"contractorName,omitempty"`
	RecordedBy     string    `json:"recordedBy"`
}

type WorkOrder struct {
	WorkOrderNumber string          `json:"workOrderNumber"`
	Date            time.Time       `json:"date"`
	WorkOrderAmount decimal.Decimal `json:"workOrderAmount"`
	ContractorName  string          `json:"contractorName,omitempty"`
	IssuedBy        string          `json:"issuedBy"`
}

// Closure records why a proposal left the normal path (cancel/close).
type Closure struct {
	Reason string    `json:"reason"`
	By     string    `json:"by"`
	At     time.Time `json:"at"`
}

// Document is a stored file attached to a proposal (completion photos,
// measurement-book scans, certificates).
type Document struct {
	Name        string    `json:"name"`
	ObjectKey   string    `json:"objectKey"`
	URL         string    `json:"url,omitempty"`
	ContentType string    `json:"contentType,omitempty"`
	Size        int64     `json:"size"`
	UploadedBy  string    `json:"uploadedBy,omitempty"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// WorkProposal is one civil-works record tracked from proposal to completion.
//
// Storage model (DynamoDB):
//   - PK: id
//   - serial_number is unique, assigned from the counters table at creation.
//
// Version is bumped on every successful write and used as the compare-and-swap
// guard for read-modify-write updates.
type WorkProposal struct {
	ID             string          `json:"id"`
	SerialNumber   string          `json:"serialNumber"`
	NameOfWork     string          `json:"nameOfWork"`
	City           string          `json:"city,omitempty"`
	Ward           string          `json:"ward,omitempty"`
	Scheme         string          `json:"scheme,omitempty"`
	TypeOfWork     string          `json:"typeOfWork,omitempty"`
	Department     string          `json:"department"`
	FinancialYear  string          `json:"financialYear,omitempty"`
	ProposedAmount decimal.Decimal `json:"proposedAmount"`

	CurrentStatus     WorkStatus `json:"currentStatus"`
	WorkProgressStage WorkStatus `json:"workProgressStage"`

	TechnicalApproval      *StageApproval `json:"technicalApproval,omitempty"`
	AdministrativeApproval *StageApproval `json:"administrativeApproval,omitempty"`
	Tender                 *Tender        `json:"tender,omitempty"`
	WorkOrder              *WorkOrder     `json:"workOrder,omitempty"`
	WorkProgress           *WorkProgress  `json:"workProgress,omitempty"`
	Closure                *Closure       `json:"closure,omitempty"`

	CompletionDate      *time.Time       `json:"completionDate,omitempty"`
	FinalCost           *decimal.Decimal `json:"finalCost,omitempty"`
	CompletionDocuments []Document       `json:"completionDocuments,omitempty"`

	Version   int64     `json:"version"`
	CreatedBy string    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SetStatus moves both status fields together.
func (p *WorkProposal) SetStatus(s WorkStatus) {
	p.CurrentStatus = s
	p.WorkProgressStage = s
}

// WorkOrderAmount returns the contracted value, zero when no work order exists.
func (p *WorkProposal) WorkOrderAmount() decimal.Decimal {
	if p.WorkOrder == nil {
		return decimal.Zero
	}
	return p.WorkOrder.WorkOrderAmount
}

// MarkCompleted stamps completion once. finalCost is the reported
// expenditure when present, the work-order amount otherwise.
func (p *WorkProposal) MarkCompleted(now time.Time) {
	cost := p.WorkOrderAmount()
	if p.WorkProgress != nil && p.WorkProgress.ExpenditureAmount != nil {
		cost = *p.WorkProgress.ExpenditureAmount
	}
	p.CompleteWithCost(now, cost)
}

// CompleteWithCost stamps completionDate and finalCost unless already set.
func (p *WorkProposal) CompleteWithCost(now time.Time, cost decimal.Decimal) {
	if p.CompletionDate != nil {
		return
	}
	at := now.UTC()
	p.CompletionDate = &at
	p.FinalCost = &cost
}

// Clone returns a deep copy so callers can mutate without touching the
// original (used by retry loops and tests).
func (p WorkProposal) Clone() WorkProposal {
	out := p
	if p.TechnicalApproval != nil {
		v := *p.TechnicalApproval
		out.TechnicalApproval = &v
	}
	if p.AdministrativeApproval != nil {
		v := *p.AdministrativeApproval
		out.AdministrativeApproval = &v
	}
	if p.Tender != nil {
		v := *p.Tender
		out.Tender = &v
	}
	if p.WorkOrder != nil {
		v := *p.WorkOrder
		out.WorkOrder = &v
	}
	if p.WorkProgress != nil {
		v := p.WorkProgress.clone()
		out.WorkProgress = &v
	}
	if p.Closure != nil {
		v := *p.Closure
		out.Closure = &v
	}
	if p.CompletionDate != nil {
		v := *p.CompletionDate
		out.CompletionDate = &v
	}
	if p.FinalCost != nil {
		v := *p.FinalCost
		out.FinalCost = &v
	}
	if p.CompletionDocuments != nil {
		out.CompletionDocuments = append([]Document(nil), p.CompletionDocuments...)
	}
	return out
}
