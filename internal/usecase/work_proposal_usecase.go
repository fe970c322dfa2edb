package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"nirman/internal/domain/auth"
	"nirman/internal/domain/entities"
	"nirman/internal/domain/workflow"
	"nirman/internal/usecase/interfaces"
	"nirman/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidWorkProposal     = errors.New("nameOfWork, department and a positive proposedAmount are required")
	ErrInvalidApproval         = errors.New("approvalNumber, date and a positive amount are required")
	ErrInvalidTender           = errors.New("tenderNumber and date are required")
	ErrInvalidWorkOrder        = errors.New("workOrderNumber, date and a positive workOrderAmount are required")
	ErrReasonRequired          = errors.New("reason is required")
	ErrInvalidDocument         = errors.New("a non-empty file is required")
	ErrDocumentUploadForbidden = errors.New("documents can only be attached to works in progress or completed")
)

type CreateWorkProposalInput struct {
	NameOfWork     string
	City           string
	Ward           string
	Scheme         string
	TypeOfWork     string
	Department     string
	FinancialYear  string
	ProposedAmount decimal.Decimal
}

type StageApprovalInput struct {
	ApprovalNumber string
	Date           time.Time
	Amount         decimal.Decimal
	Remarks        string
}

type TenderInput struct {
	TenderNumber   string
	Date           time.Time
	ContractorName string
}

type WorkOrderInput struct {
	WorkOrderNumber string
	Date            time.Time
	WorkOrderAmount decimal.Decimal
	ContractorName  string
}

type DocumentUpload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

type WorkProposalOptions struct {
	DeploymentCode    string
	MaxUpdateAttempts int
}

// IWorkProposalUseCase drives a proposal through the approval stages up to the
// work order, plus the administrative exits (cancel, close).
type IWorkProposalUseCase interface {
	Create(ctx context.Context, in CreateWorkProposalInput) (entities.WorkProposal, error)
	GetByID(ctx context.Context, id string) (entities.WorkProposal, error)
	ApproveTechnical(ctx context.Context, id string, in StageApprovalInput) (entities.WorkProposal, error)
	ApproveAdministrative(ctx context.Context, id string, in StageApprovalInput) (entities.WorkProposal, error)
	AwardTender(ctx context.Context, id string, in TenderInput) (entities.WorkProposal, error)
	IssueWorkOrder(ctx context.Context, id string, in WorkOrderInput) (entities.WorkProposal, error)
	Cancel(ctx context.Context, id string, reason string) (entities.WorkProposal, error)
	Close(ctx context.Context, id string, reason string) (entities.WorkProposal, error)
	UploadDocument(ctx context.Context, id string, doc DocumentUpload) (entities.Document, error)
}

type WorkProposalUseCase struct {
	proposalMutator
	seq     interfaces.ISequenceRepository
	storage interfaces.IDocumentStorage
	code    string
}

var _ IWorkProposalUseCase = (*WorkProposalUseCase)(nil)

func NewWorkProposalUseCase(
	repo interfaces.IWorkProposalRepository,
	seq interfaces.ISequenceRepository,
	storage interfaces.IDocumentStorage,
	opts WorkProposalOptions,
) *WorkProposalUseCase {
	code := strings.ToUpper(strings.TrimSpace(opts.DeploymentCode))
	if code == "" {
		code = "NRM"
	}
	return &WorkProposalUseCase{
		proposalMutator: newProposalMutator(repo, opts.MaxUpdateAttempts),
		seq:             seq,
		storage:         storage,
		code:            code,
	}
}

func (u *WorkProposalUseCase) Create(ctx context.Context, in CreateWorkProposalInput) (entities.WorkProposal, error) {
	in.NameOfWork = strings.TrimSpace(in.NameOfWork)
	in.Department = strings.TrimSpace(in.Department)
	if in.NameOfWork == "" || in.Department == "" || !in.ProposedAmount.IsPositive() {
		return entities.WorkProposal{}, ErrInvalidWorkProposal
	}

	now := u.now().UTC()
	serial, err := u.nextSerial(ctx, now.Year())
	if err != nil {
		logger.Error(ctx, "[proposal][usecase] serial allocation failed", zap.Error(err))
		return entities.WorkProposal{}, err
	}

	p := entities.WorkProposal{
		ID:             uuid.NewString(),
		SerialNumber:   serial,
		NameOfWork:     in.NameOfWork,
		City:           strings.TrimSpace(in.City),
		Ward:           strings.TrimSpace(in.Ward),
		Scheme:         strings.TrimSpace(in.Scheme),
		TypeOfWork:     strings.TrimSpace(in.TypeOfWork),
		Department:     in.Department,
		FinancialYear:  strings.TrimSpace(in.FinancialYear),
		ProposedAmount: in.ProposedAmount,
		CreatedBy:      auth.ActorID(ctx),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	p.SetStatus(entities.StatusPendingTechnicalApproval)

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.WorkProposal{}, err
	}
	logger.Info(ctx, "[proposal][usecase] created", zap.String("proposal_id", created.ID), zap.String("serial_number", created.SerialNumber))
	return created, nil
}

// nextSerial formats <CODE>/<YEAR>/<seq>, the sequence restarting each year.
func (u *WorkProposalUseCase) nextSerial(ctx context.Context, year int) (string, error) {
	n, err := u.seq.Next(ctx, fmt.Sprintf("%s/%d", u.code, year))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%d/%05d", u.code, year, n), nil
}

func (u *WorkProposalUseCase) GetByID(ctx context.Context, id string) (entities.WorkProposal, error) {
	return u.load(ctx, id)
}

func (u *WorkProposalUseCase) ApproveTechnical(ctx context.Context, id string, in StageApprovalInput) (entities.WorkProposal, error) {
	if err := validateApproval(in); err != nil {
		return entities.WorkProposal{}, err
	}
	return u.advance(ctx, id, workflow.ActionApproveTechnical, func(p *entities.WorkProposal, _ time.Time) {
		p.TechnicalApproval = stageApproval(in, auth.ActorID(ctx))
	})
}

func (u *WorkProposalUseCase) ApproveAdministrative(ctx context.Context, id string, in StageApprovalInput) (entities.WorkProposal, error) {
	if err := validateApproval(in); err != nil {
		return entities.WorkProposal{}, err
	}
	return u.advance(ctx, id, workflow.ActionApproveAdministrative, func(p *entities.WorkProposal, _ time.Time) {
		p.AdministrativeApproval = stageApproval(in, auth.ActorID(ctx))
	})
}

func (u *WorkProposalUseCase) AwardTender(ctx context.Context, id string, in TenderInput) (entities.WorkProposal, error) {
	in.TenderNumber = strings.TrimSpace(in.TenderNumber)
	if in.TenderNumber == "" || in.Date.IsZero() {
		return entities.WorkProposal{}, ErrInvalidTender
	}
	return u.advance(ctx, id, workflow.ActionAwardTender, func(p *entities.WorkProposal, _ time.Time) {
		p.Tender = &entities.Tender{
			TenderNumber:   in.TenderNumber,
			Date:           in.Date.UTC(),
			ContractorName: strings.TrimSpace(in.ContractorName),
			RecordedBy:     auth.ActorID(ctx),
		}
	})
}

// IssueWorkOrder records the contract and opens the ledger with the
// work-order amount as sanctioned ceiling.
func (u *WorkProposalUseCase) IssueWorkOrder(ctx context.Context, id string, in WorkOrderInput) (entities.WorkProposal, error) {
	in.WorkOrderNumber = strings.TrimSpace(in.WorkOrderNumber)
	if in.WorkOrderNumber == "" || in.Date.IsZero() || !in.WorkOrderAmount.IsPositive() {
		return entities.WorkProposal{}, ErrInvalidWorkOrder
	}
	actor := auth.ActorID(ctx)
	return u.advance(ctx, id, workflow.ActionIssueWorkOrder, func(p *entities.WorkProposal, now time.Time) {
		contractor := strings.TrimSpace(in.ContractorName)
		if contractor == "" && p.Tender != nil {
			contractor = p.Tender.ContractorName
		}
		p.WorkOrder = &entities.WorkOrder{
			WorkOrderNumber: in.WorkOrderNumber,
			Date:            in.Date.UTC(),
			WorkOrderAmount: in.WorkOrderAmount,
			ContractorName:  contractor,
			IssuedBy:        actor,
		}
		p.WorkProgress = entities.NewWorkProgress(in.WorkOrderAmount, actor, now)
	})
}

func (u *WorkProposalUseCase) Cancel(ctx context.Context, id string, reason string) (entities.WorkProposal, error) {
	return u.exit(ctx, id, workflow.ActionCancel, reason)
}

func (u *WorkProposalUseCase) Close(ctx context.Context, id string, reason string) (entities.WorkProposal, error) {
	return u.exit(ctx, id, workflow.ActionClose, reason)
}

func (u *WorkProposalUseCase) exit(ctx context.Context, id string, action workflow.Action, reason string) (entities.WorkProposal, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.WorkProposal{}, ErrReasonRequired
	}
	return u.advance(ctx, id, action, func(p *entities.WorkProposal, now time.Time) {
		p.Closure = &entities.Closure{Reason: reason, By: auth.ActorID(ctx), At: now}
	})
}

// advance applies action through the state machine and, only when it is
// legal, lets record fill the stage sub-document.
func (u *WorkProposalUseCase) advance(ctx context.Context, id string, action workflow.Action, record func(p *entities.WorkProposal, now time.Time)) (entities.WorkProposal, error) {
	logger.Info(ctx, "[proposal][usecase] transition start", zap.String("proposal_id", id), zap.String("action", string(action)))
	saved, err := u.mutate(ctx, id, func(p *entities.WorkProposal, now time.Time) error {
		if err := workflow.Apply(p, action); err != nil {
			return err
		}
		record(p, now)
		return nil
	})
	if err != nil {
		logger.Warn(ctx, "[proposal][usecase] transition failed", zap.String("proposal_id", id), zap.String("action", string(action)), zap.Error(err))
		return entities.WorkProposal{}, err
	}
	logger.Info(ctx, "[proposal][usecase] transition success", zap.String("proposal_id", saved.ID), zap.String("status", string(saved.CurrentStatus)))
	return saved, nil
}

// UploadDocument stores a file for later inclusion in the completion
// documents. It does not modify the proposal.
func (u *WorkProposalUseCase) UploadDocument(ctx context.Context, id string, doc DocumentUpload) (entities.Document, error) {
	if doc.Body == nil || doc.Size <= 0 || strings.TrimSpace(doc.Name) == "" {
		return entities.Document{}, ErrInvalidDocument
	}
	if u.storage == nil {
		return entities.Document{}, errors.New("document storage not configured")
	}

	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Document{}, err
	}
	if p.CurrentStatus != entities.StatusWorkInProgress && p.CurrentStatus != entities.StatusWorkCompleted {
		return entities.Document{}, ErrDocumentUploadForbidden
	}

	name := sanitizeFileName(doc.Name)
	key := fmt.Sprintf("proposals/%s/%s-%s", p.ID, uuid.NewString(), name)
	contentType := doc.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := u.storage.Put(ctx, key, doc.Body, doc.Size, contentType); err != nil {
		logger.Error(ctx, "[proposal][usecase] document store failed", zap.String("proposal_id", p.ID), zap.String("object_key", key), zap.Error(err))
		return entities.Document{}, err
	}
	url, err := u.storage.PresignedURL(ctx, key)
	if err != nil {
		return entities.Document{}, err
	}

	logger.Info(ctx, "[proposal][usecase] document stored", zap.String("proposal_id", p.ID), zap.String("object_key", key), zap.Int64("size", doc.Size))
	return entities.Document{
		Name:        name,
		ObjectKey:   key,
		URL:         url,
		ContentType: contentType,
		Size:        doc.Size,
		UploadedBy:  auth.ActorID(ctx),
		UploadedAt:  u.now().UTC(),
	}, nil
}

func validateApproval(in StageApprovalInput) error {
	if strings.TrimSpace(in.ApprovalNumber) == "" || in.Date.IsZero() || !in.Amount.IsPositive() {
		return ErrInvalidApproval
	}
	return nil
}

func stageApproval(in StageApprovalInput, by string) *entities.StageApproval {
	return &entities.StageApproval{
		ApprovalNumber: strings.TrimSpace(in.ApprovalNumber),
		Date:           in.Date.UTC(),
		Amount:         in.Amount,
		Remarks:        strings.TrimSpace(in.Remarks),
		ApprovedBy:     by,
	}
}

func sanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, name)
	if name == "" || name == "." || name == ".." {
		return "document"
	}
	return name
}
