package repository

import (
	"strings"

	"nirman/internal/domain/entities"
)

type approvalItem struct {
	ApprovalNumber string `dynamodbav:"approval_number"`
	Date           string `dynamodbav:"date"`
	Amount         string `dynamodbav:"amount"`
	Remarks        string `dynamodbav:"remarks,omitempty"`
	ApprovedBy     string `dynamodbav:"approved_by"`
}

type tenderItem struct {
	TenderNumber   string `dynamodbav:"tender_number"`
	Date           string `dynamodbav:"date"`
	ContractorName string `dynamodbav:"contractor_name,omitempty"`
	RecordedBy     string `dynamodbav:"recorded_by"`
}

type workOrderItem struct {
	WorkOrderNumber string `dynamodbav:"work_order_number"`
	Date            string `dynamodbav:"date"`
	WorkOrderAmount string `dynamodbav:"work_order_amount"`
	ContractorName  string `dynamodbav:"contractor_name,omitempty"`
	IssuedBy        string `dynamodbav:"issued_by"`
}

type installmentItem struct {
	InstallmentNo int    `dynamodbav:"installment_no"`
	Amount        string `dynamodbav:"amount"`
	Date          string `dynamodbav:"date"`
	Description   string `dynamodbav:"description,omitempty"`
}

type progressItem struct {
	ProgressPercentage int               `dynamodbav:"progress_percentage"`
	MBStage            string            `dynamodbav:"mb_stage,omitempty"`
	ExpenditureAmount  string            `dynamodbav:"expenditure_amount,omitempty"`
	SanctionedAmount   string            `dynamodbav:"sanctioned_amount"`
	Installments       []installmentItem `dynamodbav:"installments"`
	TotalReleased      string            `dynamodbav:"total_amount_released_so_far"`
	RemainingBalance   string            `dynamodbav:"remaining_balance"`
	LastUpdatedBy      string            `dynamodbav:"last_updated_by,omitempty"`
	UpdatedAt          string            `dynamodbav:"updated_at"`
}

type closureItem struct {
	Reason string `dynamodbav:"reason"`
	By     string `dynamodbav:"by"`
	At     string `dynamodbav:"at"`
}

type documentItem struct {
	Name        string `dynamodbav:"name"`
	ObjectKey   string `dynamodbav:"object_key"`
	URL         string `dynamodbav:"url,omitempty"`
	ContentType string `dynamodbav:"content_type,omitempty"`
	Size        int64  `dynamodbav:"size"`
	UploadedBy  string `dynamodbav:"uploaded_by,omitempty"`
	UploadedAt  string `dynamodbav:"uploaded_at"`
}

// proposalItem is the DynamoDB shape of a WorkProposal. department_lc backs
// the case-insensitive department filter.
type proposalItem struct {
	ID                string `dynamodbav:"id"`
	SerialNumber      string `dynamodbav:"serial_number"`
	NameOfWork        string `dynamodbav:"name_of_work"`
	City              string `dynamodbav:"city,omitempty"`
	Ward              string `dynamodbav:"ward,omitempty"`
	Scheme            string `dynamodbav:"scheme,omitempty"`
	TypeOfWork        string `dynamodbav:"type_of_work,omitempty"`
	Department        string `dynamodbav:"department"`
	DepartmentLC      string `dynamodbav:"department_lc"`
	FinancialYear     string `dynamodbav:"financial_year,omitempty"`
	ProposedAmount    string `dynamodbav:"proposed_amount"`
	Status            string `dynamodbav:"status"`
	WorkProgressStage string `dynamodbav:"work_progress_stage"`

	TechnicalApproval      *approvalItem  `dynamodbav:"technical_approval,omitempty"`
	AdministrativeApproval *approvalItem  `dynamodbav:"administrative_approval,omitempty"`
	Tender                 *tenderItem    `dynamodbav:"tender,omitempty"`
	WorkOrder              *workOrderItem `dynamodbav:"work_order,omitempty"`
	WorkProgress           *progressItem  `dynamodbav:"work_progress,omitempty"`
	Closure                *closureItem   `dynamodbav:"closure,omitempty"`

	CompletionDate      string         `dynamodbav:"completion_date,omitempty"`
	FinalCost           string         `dynamodbav:"final_cost,omitempty"`
	CompletionDocuments []documentItem `dynamodbav:"completion_documents,omitempty"`

	Version   int64  `dynamodbav:"version"`
	CreatedBy string `dynamodbav:"created_by,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

func toProposalItem(p entities.WorkProposal) proposalItem {
	it := proposalItem{
		ID:                p.ID,
		SerialNumber:      p.SerialNumber,
		NameOfWork:        p.NameOfWork,
		City:              p.City,
		Ward:              p.Ward,
		Scheme:            p.Scheme,
		TypeOfWork:        p.TypeOfWork,
		Department:        p.Department,
		DepartmentLC:      strings.ToLower(p.Department),
		FinancialYear:     p.FinancialYear,
		ProposedAmount:    formatDecimal(p.ProposedAmount),
		Status:            string(p.CurrentStatus),
		WorkProgressStage: string(p.WorkProgressStage),
		CompletionDate:    formatTimePtr(p.CompletionDate),
		FinalCost:         formatDecimalPtr(p.FinalCost),
		Version:           p.Version,
		CreatedBy:         p.CreatedBy,
		CreatedAt:         formatTime(p.CreatedAt),
		UpdatedAt:         formatTime(p.UpdatedAt),
	}
	it.TechnicalApproval = toApprovalItem(p.TechnicalApproval)
	it.AdministrativeApproval = toApprovalItem(p.AdministrativeApproval)
	if t := p.Tender; t != nil {
		it.Tender = &tenderItem{
			TenderNumber:   t.TenderNumber,
			Date:           formatTime(t.Date),
			ContractorName: t.ContractorName,
			RecordedBy:     t.RecordedBy,
		}
	}
	if w := p.WorkOrder; w != nil {
		it.WorkOrder = &workOrderItem{
			WorkOrderNumber: w.WorkOrderNumber,
			Date:            formatTime(w.Date),
			WorkOrderAmount: formatDecimal(w.WorkOrderAmount),
			ContractorName:  w.ContractorName,
			IssuedBy:        w.IssuedBy,
		}
	}
	if wp := p.WorkProgress; wp != nil {
		pi := &progressItem{
			ProgressPercentage: wp.ProgressPercentage,
			MBStage:            wp.MBStage,
			ExpenditureAmount:  formatDecimalPtr(wp.ExpenditureAmount),
			SanctionedAmount:   formatDecimal(wp.SanctionedAmount),
			Installments:       make([]installmentItem, 0, len(wp.Installments)),
			TotalReleased:      formatDecimal(wp.TotalAmountReleasedSoFar),
			RemainingBalance:   formatDecimal(wp.RemainingBalance),
			LastUpdatedBy:      wp.LastUpdatedBy,
			UpdatedAt:          formatTime(wp.UpdatedAt),
		}
		for _, in := range wp.Installments {
			pi.Installments = append(pi.Installments, installmentItem{
				InstallmentNo: in.InstallmentNo,
				Amount:        formatDecimal(in.Amount),
				Date:          formatTime(in.Date),
				Description:   in.Description,
			})
		}
		it.WorkProgress = pi
	}
	if c := p.Closure; c != nil {
		it.Closure = &closureItem{Reason: c.Reason, By: c.By, At: formatTime(c.At)}
	}
	for _, d := range p.CompletionDocuments {
		it.CompletionDocuments = append(it.CompletionDocuments, documentItem{
			Name:        d.Name,
			ObjectKey:   d.ObjectKey,
			URL:         d.URL,
			ContentType: d.ContentType,
			Size:        d.Size,
			UploadedBy:  d.UploadedBy,
			UploadedAt:  formatTime(d.UploadedAt),
		})
	}
	return it
}

func toApprovalItem(a *entities.StageApproval) *approvalItem {
	if a == nil {
		return nil
	}
	return &approvalItem{
		ApprovalNumber: a.ApprovalNumber,
		Date:           formatTime(a.Date),
		Amount:         formatDecimal(a.Amount),
		Remarks:        a.Remarks,
		ApprovedBy:     a.ApprovedBy,
	}
}

func fromApprovalItem(a *approvalItem) *entities.StageApproval {
	if a == nil {
		return nil
	}
	return &entities.StageApproval{
		ApprovalNumber: a.ApprovalNumber,
		Date:           parseTime(a.Date),
		Amount:         parseDecimal(a.Amount),
		Remarks:        a.Remarks,
		ApprovedBy:     a.ApprovedBy,
	}
}

func fromProposalItem(it proposalItem) entities.WorkProposal {
	p := entities.WorkProposal{
		ID:                     it.ID,
		SerialNumber:           it.SerialNumber,
		NameOfWork:             it.NameOfWork,
		City:                   it.City,
		Ward:                   it.Ward,
		Scheme:                 it.Scheme,
		TypeOfWork:             it.TypeOfWork,
		Department:             it.Department,
		FinancialYear:          it.FinancialYear,
		ProposedAmount:         parseDecimal(it.ProposedAmount),
		CurrentStatus:          entities.WorkStatus(it.Status),
		WorkProgressStage:      entities.WorkStatus(it.WorkProgressStage),
		TechnicalApproval:      fromApprovalItem(it.TechnicalApproval),
		AdministrativeApproval: fromApprovalItem(it.AdministrativeApproval),
		CompletionDate:         parseTimePtr(it.CompletionDate),
		FinalCost:              parseDecimalPtr(it.FinalCost),
		Version:                it.Version,
		CreatedBy:              it.CreatedBy,
		CreatedAt:              parseTime(it.CreatedAt),
		UpdatedAt:              parseTime(it.UpdatedAt),
	}
	if t := it.Tender; t != nil {
		p.Tender = &entities.Tender{
			TenderNumber:   t.TenderNumber,
			Date:           parseTime(t.Date),
			ContractorName: t.ContractorName,
			RecordedBy:     t.RecordedBy,
		}
	}
	if w := it.WorkOrder; w != nil {
		p.WorkOrder = &entities.WorkOrder{
			WorkOrderNumber: w.WorkOrderNumber,
			Date:            parseTime(w.Date),
			WorkOrderAmount: parseDecimal(w.WorkOrderAmount),
			ContractorName:  w.ContractorName,
			IssuedBy:        w.IssuedBy,
		}
	}
	if pi := it.WorkProgress; pi != nil {
		wp := &entities.WorkProgress{
			ProgressPercentage:       pi.ProgressPercentage,
			MBStage:                  pi.MBStage,
			ExpenditureAmount:        parseDecimalPtr(pi.ExpenditureAmount),
			SanctionedAmount:         parseDecimal(pi.SanctionedAmount),
			Installments:             make([]entities.Installment, 0, len(pi.Installments)),
			TotalAmountReleasedSoFar: parseDecimal(pi.TotalReleased),
			RemainingBalance:         parseDecimal(pi.RemainingBalance),
			LastUpdatedBy:            pi.LastUpdatedBy,
			UpdatedAt:                parseTime(pi.UpdatedAt),
		}
		for _, in := range pi.Installments {
			wp.Installments = append(wp.Installments, entities.Installment{
				InstallmentNo: in.InstallmentNo,
				Amount:        parseDecimal(in.Amount),
				Date:          parseTime(in.Date),
				Description:   in.Description,
			})
		}
		p.WorkProgress = wp
	}
	if c := it.Closure; c != nil {
		p.Closure = &entities.Closure{Reason: c.Reason, By: c.By, At: parseTime(c.At)}
	}
	for _, d := range it.CompletionDocuments {
		p.CompletionDocuments = append(p.CompletionDocuments, entities.Document{
			Name:        d.Name,
			ObjectKey:   d.ObjectKey,
			URL:         d.URL,
			ContentType: d.ContentType,
			Size:        d.Size,
			UploadedBy:  d.UploadedBy,
			UploadedAt:  parseTime(d.UploadedAt),
		})
	}
	return p
}
