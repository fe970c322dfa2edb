package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"nirman/internal/domain/auth"
	"nirman/internal/domain/entities"
	"nirman/internal/domain/workflow"
	"nirman/internal/usecase/interfaces"
	"nirman/pkg/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidProgressPercentage = errors.New("progress percentage must be between 0 and 100")
	ErrProgressNotAllowed        = errors.New("progress can only be recorded for works with status Work Order Created or Work In Progress")
	ErrProgressNotInitialized    = errors.New("work progress has not been initialised for this proposal")
	ErrInvalidInstallment        = errors.New("installment amount and date are required and amount must be greater than zero")
	ErrExceedsSanctionedAmount   = errors.New("installment exceeds remaining sanctioned amount")
	ErrInvalidExpenditure        = errors.New("expenditure amount cannot be negative")
	ErrCompletionNotAllowed      = errors.New("only works with status Work In Progress can be completed")
	ErrInvalidStatusFilter       = errors.New("invalid status filter")
	ErrInvalidProgressRange      = errors.New("minProgress and maxProgress must be given together with 0 <= minProgress <= maxProgress <= 100")
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// ProgressUpdateInput is the progress report of one site visit. Nil fields
// are left untouched on the ledger.
type ProgressUpdateInput struct {
	ProgressPercentage int
	MBStage            *string
	ExpenditureAmount  *decimal.Decimal
	InstallmentAmount  *decimal.Decimal
	InstallmentDate    *time.Time
	Description        string
}

func (in ProgressUpdateInput) releasesInstallment() bool {
	return in.InstallmentAmount != nil && !in.InstallmentAmount.IsZero() && in.InstallmentDate != nil
}

type InstallmentInput struct {
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

type InstallmentResult struct {
	Installment      entities.Installment
	TotalReleased    decimal.Decimal
	RemainingBalance decimal.Decimal
}

// CompleteWorkInput closes the ledger. A non-nil CompletionDocuments replaces
// the stored list, an empty slice included.
type CompleteWorkInput struct {
	FinalExpenditureAmount *decimal.Decimal
	CompletionDocuments    []entities.Document
}

type WorkInfo struct {
	SerialNumber  string              `json:"serialNumber"`
	NameOfWork    string              `json:"nameOfWork"`
	CurrentStatus entities.WorkStatus `json:"currentStatus"`
}

type ProgressHistory struct {
	WorkInfo      WorkInfo
	Progress      *entities.WorkProgress
	LastUpdatedBy *entities.UserRef
}

// DashboardQuery mirrors the listing query string. Statuses defaults to the
// active statuses when empty.
type DashboardQuery struct {
	Page        int
	Limit       int
	Statuses    []entities.WorkStatus
	Department  string
	MinProgress *int
	MaxProgress *int
}

type Pagination struct {
	Current int `json:"current"`
	Pages   int `json:"pages"`
	Total   int `json:"total"`
	Limit   int `json:"limit"`
}

type DashboardPage struct {
	Data       []entities.WorkProposal
	Pagination Pagination
}

type WorkProgressOptions struct {
	MaxUpdateAttempts        int
	EnforceCeilingOnProgress bool
	DeploymentName           string
}

// IWorkProgressUseCase is the financial/progress ledger of a proposal once its
// work order is issued.
type IWorkProgressUseCase interface {
	UpdateProgress(ctx context.Context, id string, in ProgressUpdateInput) (entities.WorkProposal, error)
	AddInstallment(ctx context.Context, id string, in InstallmentInput) (InstallmentResult, error)
	CompleteWork(ctx context.Context, id string, in CompleteWorkInput) (entities.WorkProposal, error)
	GetHistory(ctx context.Context, id string) (ProgressHistory, error)
	ListDashboard(ctx context.Context, q DashboardQuery) (DashboardPage, error)
	ExportDashboard(ctx context.Context, q DashboardQuery) ([]byte, error)
}

type WorkProgressUseCase struct {
	proposalMutator
	users    IUserUseCase
	renderer interfaces.IProgressReportRenderer
	opts     WorkProgressOptions
}

var _ IWorkProgressUseCase = (*WorkProgressUseCase)(nil)

func NewWorkProgressUseCase(
	repo interfaces.IWorkProposalRepository,
	users IUserUseCase,
	renderer interfaces.IProgressReportRenderer,
	opts WorkProgressOptions,
) *WorkProgressUseCase {
	return &WorkProgressUseCase{
		proposalMutator: newProposalMutator(repo, opts.MaxUpdateAttempts),
		users:           users,
		renderer:        renderer,
		opts:            opts,
	}
}

func (u *WorkProgressUseCase) UpdateProgress(ctx context.Context, id string, in ProgressUpdateInput) (entities.WorkProposal, error) {
	logger.Info(ctx, "[progress][usecase] update start", zap.String("proposal_id", id), zap.Int("progress", in.ProgressPercentage))
	if in.ProgressPercentage < 0 || in.ProgressPercentage > 100 {
		return entities.WorkProposal{}, ErrInvalidProgressPercentage
	}
	if in.ExpenditureAmount != nil && in.ExpenditureAmount.IsNegative() {
		return entities.WorkProposal{}, ErrInvalidExpenditure
	}
	if in.InstallmentAmount != nil && in.InstallmentAmount.IsNegative() {
		return entities.WorkProposal{}, ErrInvalidInstallment
	}
	actor := auth.ActorID(ctx)

	saved, err := u.mutate(ctx, id, func(p *entities.WorkProposal, now time.Time) error {
		if !workflow.Can(p.CurrentStatus, workflow.ActionReportProgress) {
			return ErrProgressNotAllowed
		}
		if p.WorkProgress == nil {
			p.WorkProgress = entities.NewWorkProgress(p.WorkOrderAmount(), actor, now)
		}
		wp := p.WorkProgress

		wp.ProgressPercentage = in.ProgressPercentage
		if in.MBStage != nil {
			wp.MBStage = *in.MBStage
		}
		if in.ExpenditureAmount != nil {
			v := *in.ExpenditureAmount
			wp.ExpenditureAmount = &v
		}
		// A zero amount is an unfilled form field, not a release.
		if in.releasesInstallment() {
			if _, err := wp.AppendInstallment(*in.InstallmentAmount, *in.InstallmentDate, in.Description, u.opts.EnforceCeilingOnProgress); err != nil {
				return mapLedgerError(err)
			}
		}
		wp.Touch(actor, now)

		if err := workflow.Apply(p, workflow.ActionReportProgress); err != nil {
			return err
		}
		if in.ProgressPercentage == 100 {
			if err := workflow.Apply(p, workflow.ActionComplete); err != nil {
				return err
			}
			p.MarkCompleted(now)
		}
		return nil
	})
	if err != nil {
		logger.Warn(ctx, "[progress][usecase] update failed", zap.String("proposal_id", id), zap.Error(err))
		return entities.WorkProposal{}, err
	}
	logger.Info(ctx, "[progress][usecase] update success",
		zap.String("proposal_id", saved.ID),
		zap.String("status", string(saved.CurrentStatus)),
		zap.Int64("version", saved.Version),
	)
	return saved, nil
}

func (u *WorkProgressUseCase) AddInstallment(ctx context.Context, id string, in InstallmentInput) (InstallmentResult, error) {
	logger.Info(ctx, "[progress][usecase] installment start", zap.String("proposal_id", id), zap.String("amount", in.Amount.String()))
	if !in.Amount.IsPositive() || in.Date.IsZero() {
		return InstallmentResult{}, ErrInvalidInstallment
	}
	actor := auth.ActorID(ctx)

	var added entities.Installment
	saved, err := u.mutate(ctx, id, func(p *entities.WorkProposal, now time.Time) error {
		if p.WorkProgress == nil {
			return ErrProgressNotInitialized
		}
		inst, err := p.WorkProgress.AppendInstallment(in.Amount, in.Date, in.Description, true)
		if err != nil {
			return mapLedgerError(err)
		}
		p.WorkProgress.Touch(actor, now)
		added = inst
		return nil
	})
	if err != nil {
		logger.Warn(ctx, "[progress][usecase] installment failed", zap.String("proposal_id", id), zap.Error(err))
		return InstallmentResult{}, err
	}
	logger.Info(ctx, "[progress][usecase] installment success",
		zap.String("proposal_id", saved.ID),
		zap.Int("installment_no", added.InstallmentNo),
		zap.String("total_released", saved.WorkProgress.TotalAmountReleasedSoFar.String()),
	)
	return InstallmentResult{
		Installment:      added,
		TotalReleased:    saved.WorkProgress.TotalAmountReleasedSoFar,
		RemainingBalance: saved.WorkProgress.RemainingBalance,
	}, nil
}

func (u *WorkProgressUseCase) CompleteWork(ctx context.Context, id string, in CompleteWorkInput) (entities.WorkProposal, error) {
	logger.Info(ctx, "[progress][usecase] complete start", zap.String("proposal_id", id))
	if in.FinalExpenditureAmount != nil && in.FinalExpenditureAmount.IsNegative() {
		return entities.WorkProposal{}, ErrInvalidExpenditure
	}
	actor := auth.ActorID(ctx)

	saved, err := u.mutate(ctx, id, func(p *entities.WorkProposal, now time.Time) error {
		if p.CurrentStatus != entities.StatusWorkInProgress {
			return ErrCompletionNotAllowed
		}
		if p.WorkProgress == nil {
			p.WorkProgress = entities.NewWorkProgress(p.WorkOrderAmount(), actor, now)
		}
		wp := p.WorkProgress
		wp.ProgressPercentage = 100

		cost := p.WorkOrderAmount()
		if in.FinalExpenditureAmount != nil {
			v := *in.FinalExpenditureAmount
			wp.ExpenditureAmount = &v
			cost = v
		}
		wp.Touch(actor, now)

		if err := workflow.Apply(p, workflow.ActionComplete); err != nil {
			return err
		}
		p.CompleteWithCost(now, cost)

		if in.CompletionDocuments != nil {
			p.CompletionDocuments = append([]entities.Document{}, in.CompletionDocuments...)
		}
		return nil
	})
	if err != nil {
		logger.Warn(ctx, "[progress][usecase] complete failed", zap.String("proposal_id", id), zap.Error(err))
		return entities.WorkProposal{}, err
	}
	logger.Info(ctx, "[progress][usecase] complete success", zap.String("proposal_id", saved.ID))
	return saved, nil
}

func (u *WorkProgressUseCase) GetHistory(ctx context.Context, id string) (ProgressHistory, error) {
	p, err := u.load(ctx, id)
	if err != nil {
		return ProgressHistory{}, err
	}

	h := ProgressHistory{
		WorkInfo: WorkInfo{
			SerialNumber:  p.SerialNumber,
			NameOfWork:    p.NameOfWork,
			CurrentStatus: p.CurrentStatus,
		},
		Progress: p.WorkProgress,
	}
	if p.WorkProgress != nil && p.WorkProgress.LastUpdatedBy != "" && u.users != nil {
		ref, err := u.users.ResolveRef(ctx, p.WorkProgress.LastUpdatedBy)
		switch {
		case err == nil:
			h.LastUpdatedBy = &ref
		case errors.Is(err, ErrUserNotFound):
			h.LastUpdatedBy = &entities.UserRef{ID: p.WorkProgress.LastUpdatedBy}
		default:
			// History is still useful without display fields.
			logger.Warn(ctx, "[progress][usecase] user resolution failed", zap.String("user_id", p.WorkProgress.LastUpdatedBy), zap.Error(err))
			h.LastUpdatedBy = &entities.UserRef{ID: p.WorkProgress.LastUpdatedBy}
		}
	}
	return h, nil
}

func (u *WorkProgressUseCase) ListDashboard(ctx context.Context, q DashboardQuery) (DashboardPage, error) {
	q = normalizeDashboardQuery(q)
	rows, err := u.dashboardRows(ctx, q)
	if err != nil {
		return DashboardPage{}, err
	}

	total := len(rows)
	pages := (total + q.Limit - 1) / q.Limit
	start := (q.Page - 1) * q.Limit
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}

	logger.Debug(ctx, "[progress][usecase] dashboard listed", zap.Int("total", total), zap.Int("page", q.Page))
	return DashboardPage{
		Data:       rows[start:end],
		Pagination: Pagination{Current: q.Page, Pages: pages, Total: total, Limit: q.Limit},
	}, nil
}

func (u *WorkProgressUseCase) ExportDashboard(ctx context.Context, q DashboardQuery) ([]byte, error) {
	if u.renderer == nil {
		return nil, errors.New("progress report renderer not configured")
	}
	rows, err := u.dashboardRows(ctx, normalizeDashboardQuery(q))
	if err != nil {
		return nil, err
	}
	title := "Work Progress"
	if u.opts.DeploymentName != "" {
		title = fmt.Sprintf("%s Work Progress", u.opts.DeploymentName)
	}
	logger.Info(ctx, "[progress][usecase] export", zap.Int("rows", len(rows)))
	return u.renderer.Render(title, rows)
}

// dashboardRows validates the filters, queries the store and orders the rows
// by last progress update, newest first.
func (u *WorkProgressUseCase) dashboardRows(ctx context.Context, q DashboardQuery) ([]entities.WorkProposal, error) {
	for _, s := range q.Statuses {
		if !s.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatusFilter, s)
		}
	}
	if (q.MinProgress == nil) != (q.MaxProgress == nil) {
		return nil, ErrInvalidProgressRange
	}
	if q.MinProgress != nil {
		lo, hi := *q.MinProgress, *q.MaxProgress
		if lo < 0 || hi > 100 || lo > hi {
			return nil, ErrInvalidProgressRange
		}
	}

	rows, err := u.repo.List(ctx, interfaces.WorkProposalFilter{
		Statuses:    q.Statuses,
		Department:  q.Department,
		MinProgress: q.MinProgress,
		MaxProgress: q.MaxProgress,
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(rows, func(i, j int) bool {
		ti, tj := progressUpdatedAt(rows[i]), progressUpdatedAt(rows[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return rows[i].SerialNumber < rows[j].SerialNumber
	})
	return rows, nil
}

func normalizeDashboardQuery(q DashboardQuery) DashboardQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultPageLimit
	}
	if q.Limit > maxPageLimit {
		q.Limit = maxPageLimit
	}
	if len(q.Statuses) == 0 {
		q.Statuses = entities.ActiveStatuses()
	} else {
		q.Statuses = uniqueStatuses(q.Statuses)
	}
	q.Department = strings.TrimSpace(q.Department)
	return q
}

// uniqueStatuses drops repeats, keeping first-seen order. The status set is
// small, so the deduplicated list stays within DynamoDB's IN operand limit.
func uniqueStatuses(in []entities.WorkStatus) []entities.WorkStatus {
	seen := make(map[entities.WorkStatus]struct{}, len(in))
	out := make([]entities.WorkStatus, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func progressUpdatedAt(p entities.WorkProposal) time.Time {
	if p.WorkProgress == nil {
		return time.Time{}
	}
	return p.WorkProgress.UpdatedAt
}

func mapLedgerError(err error) error {
	switch {
	case errors.Is(err, entities.ErrExceedsSanctionedAmount):
		return ErrExceedsSanctionedAmount
	case errors.Is(err, entities.ErrInvalidInstallmentAmount):
		return ErrInvalidInstallment
	default:
		return err
	}
}
