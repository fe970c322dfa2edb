package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"nirman/internal/domain/auth"
	"nirman/internal/domain/entities"
	"nirman/internal/domain/workflow"
	mock_interfaces "nirman/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type proposalMocks struct {
	repo    *mock_interfaces.MockIWorkProposalRepository
	seq     *mock_interfaces.MockISequenceRepository
	storage *mock_interfaces.MockIDocumentStorage
}

func newProposalUC(t *testing.T) (*WorkProposalUseCase, proposalMocks) {
	ctrl := gomock.NewController(t)
	m := proposalMocks{
		repo:    mock_interfaces.NewMockIWorkProposalRepository(ctrl),
		seq:     mock_interfaces.NewMockISequenceRepository(ctrl),
		storage: mock_interfaces.NewMockIDocumentStorage(ctrl),
	}
	uc := NewWorkProposalUseCase(m.repo, m.seq, m.storage, WorkProposalOptions{DeploymentCode: "jsp"})
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func adminCtx() context.Context {
	return auth.WithSession(context.Background(), auth.Session{UserID: "u-admin", Role: auth.RoleAdmin})
}

func TestWorkProposalUseCase_Create(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc, _ := newProposalUC(t)
		cases := []CreateWorkProposalInput{
			{Department: "PWD", ProposedAmount: dec(10)},
			{NameOfWork: "Road", ProposedAmount: dec(10)},
			{NameOfWork: "Road", Department: "PWD"},
		}
		for _, in := range cases {
			if _, err := uc.Create(adminCtx(), in); !errors.Is(err, ErrInvalidWorkProposal) {
				t.Fatalf("expected ErrInvalidWorkProposal for %+v, got %v", in, err)
			}
		}
	})

	t.Run("sequence error", func(t *testing.T) {
		uc, m := newProposalUC(t)
		m.seq.EXPECT().Next(gomock.Any(), "JSP/2026").Return(int64(0), errors.New("counter"))

		_, err := uc.Create(adminCtx(), CreateWorkProposalInput{NameOfWork: "Road", Department: "PWD", ProposedAmount: dec(10)})
		if err == nil || err.Error() != "counter" {
			t.Fatalf("expected counter error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newProposalUC(t)
		m.seq.EXPECT().Next(gomock.Any(), "JSP/2026").Return(int64(42), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkProposal{})).DoAndReturn(
			func(_ context.Context, p entities.WorkProposal) (entities.WorkProposal, error) {
				if p.ID == "" || p.SerialNumber != "JSP/2026/00042" {
					t.Fatalf("unexpected identity: %q %q", p.ID, p.SerialNumber)
				}
				if p.CurrentStatus != entities.StatusPendingTechnicalApproval || p.WorkProgressStage != entities.StatusPendingTechnicalApproval {
					t.Fatalf("unexpected status %q", p.CurrentStatus)
				}
				if p.CreatedBy != "u-admin" || !p.CreatedAt.Equal(fixedNow) || p.WorkProgress != nil {
					t.Fatalf("unexpected proposal: %+v", p)
				}
				return p, nil
			},
		)

		res, err := uc.Create(adminCtx(), CreateWorkProposalInput{NameOfWork: " Road ", Department: "PWD", ProposedAmount: dec(500000)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.NameOfWork != "Road" {
			t.Fatalf("expected trimmed name, got %q", res.NameOfWork)
		}
	})
}

func TestWorkProposalUseCase_StageFlow(t *testing.T) {
	date := fixedNow.Add(-24 * time.Hour)

	t.Run("technical approval", func(t *testing.T) {
		uc, m := newProposalUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "wp-1").Return(proposalIn(entities.StatusPendingTechnicalApproval), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(savedAsIs)

		res, err := uc.ApproveTechnical(adminCtx(), "wp-1", StageApprovalInput{ApprovalNumber: "TA-7", Date: date, Amount: dec(480000)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CurrentStatus != entities.StatusPendingAdministrativeApproval {
			t.Fatalf("unexpected status %q", res.CurrentStatus)
		}
		if res.TechnicalApproval == nil || res.TechnicalApproval.ApprovalNumber != "TA-7" || res.TechnicalApproval.ApprovedBy != "u-admin" {
			t.Fatalf("unexpected approval: %+v", res.TechnicalApproval)
		}
	})

	t.Run("approval out of order is refused", func(t *testing.T) {
		uc, m := newProposalUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "wp-1").Return(proposalIn(entities.StatusPendingTechnicalApproval), nil)

		_, err := uc.ApproveAdministrative(adminCtx(), "wp-1", StageApprovalInput{ApprovalNumber: "AA-1", Date: date, Amount: dec(1)})
		if !errors.Is(err, workflow.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("approval validation", func(t *testing.T) {
		uc, _ := newProposalUC(t)
		if _, err := uc.ApproveTechnical(adminCtx(), "wp-1", StageApprovalInput{Date: date, Amount: dec(1)}); !errors.Is(err, ErrInvalidApproval) {
			t.Fatalf("expected ErrInvalidApproval, got %v", err)
		}
	})

	t.Run("tender", func(t *testing.T) {
		uc, m := newProposalUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "wp-1").Return(proposalIn(entities.StatusPendingTender), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(savedAsIs)

		res, err := uc.AwardTender(adminCtx(), "wp-1", TenderInput{TenderNumber: "T-9", Date: date, ContractorName: "Sahu Builders"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CurrentStatus != entities.StatusPendingWorkOrder || res.Tender.ContractorName != "Sahu Builders" {
			t.Fatalf("unexpected result: %q %+v", res.CurrentStatus, res.Tender)
		}
	})

	t.Run("work order opens the ledger", func(t *testing.T) {
		uc, m := newProposalUC(t)
		p := proposalIn(entities.StatusPendingWorkOrder)
		p.WorkOrder = nil
		p.Tender = &entities.Tender{TenderNumber: "T-9", ContractorName: "Sahu Builders"}
		m.repo.EXPECT().GetByID(gomock.Any(), "wp-1").Return(p, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(savedAsIs)

		res, err := uc.IssueWorkOrder(adminCtx(), "wp-1", WorkOrderInput{WorkOrderNumber: "WO-3", Date: date, WorkOrderAmount: dec(450000)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CurrentStatus != entities.StatusWorkOrderCreated {
			t.Fatalf("unexpected status %q", res.CurrentStatus)
		}
		if res.WorkOrder.ContractorName != "Sahu Builders" {
			t.Fatalf("expected contractor from tender, got %q", res.WorkOrder.ContractorName)
		}
		wp := res.WorkProgress
		if wp == nil || !wp.SanctionedAmount.Equal(dec(450000)) || !wp.RemainingBalance.Equal(dec(450000)) || !wp.TotalAmountReleasedSoFar.IsZero() {
			t.Fatalf("unexpected ledger: %+v", wp)
		}
	})

	t.Run("work order validation", func(t *testing.T) {
		uc, _ := newProposalUC(t)
		if _, err := uc.IssueWorkOrder(adminCtx(), "wp-1", WorkOrderInput{WorkOrderNumber: "WO-3", Date: date}); !errors.Is(err, ErrInvalidWorkOrder) {
			t.Fatalf("expected ErrInvalidWorkOrder, got %v", err)
		}
	})
}

func TestWorkProposalUseCase_CancelAndClose(t *testing.T) {
	t.Run("reason required", func(t *testing.T) {
		uc, _ := newProposalUC(t)
		if _, err := uc.Cancel(adminCtx(), "wp-1", "  "); !errors.Is(err, ErrReasonRequired) {
			t.Fatalf("expected ErrReasonRequired, got %v", err)
		}
	})

	t.Run("cancel in progress work", func(t *testing.T) {
		uc, m := newProposalUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "wp-1").Return(proposalIn(entities.StatusWorkInProgress), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(savedAsIs)

		res, err := uc.Cancel(adminCtx(), "wp-1", "Site dispute")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CurrentStatus != entities.StatusWorkCancelled || res.Closure == nil || res.Closure.Reason != "Site dispute" {
			t.Fatalf("unexpected result: %q %+v", res.CurrentStatus, res.Closure)
		}
	})

	t.Run("completed work cannot be cancelled", func(t *testing.T) {
		uc, m := newProposalUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "wp-1").Return(proposalIn(entities.StatusWorkCompleted), nil)

		if _, err := uc.Cancel(adminCtx(), "wp-1", "late"); !errors.Is(err, workflow.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("close completed work", func(t *testing.T) {
		uc, m := newProposalUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "wp-1").Return(proposalIn(entities.StatusWorkCompleted), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(savedAsIs)

		res, err := uc.Close(adminCtx(), "wp-1", "Handed over")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CurrentStatus != entities.StatusWorkClosed {
			t.Fatalf("unexpected status %q", res.CurrentStatus)
		}
	})
}

func TestWorkProposalUseCase_UploadDocument(t *testing.T) {
	body := func() io.Reader { return bytes.NewBufferString("%PDF-1.4") }

	t.Run("empty file", func(t *testing.T) {
		uc, _ := newProposalUC(t)
		_, err := uc.UploadDocument(adminCtx(), "wp-1", DocumentUpload{Name: "a.pdf", Size: 0, Body: body()})
		if !errors.Is(err, ErrInvalidDocument) {
			t.Fatalf("expected ErrInvalidDocument, got %v", err)
		}
	})

	t.Run("wrong status", func(t *testing.T) {
		uc, m := newProposalUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "wp-1").Return(proposalIn(entities.StatusPendingTender), nil)

		_, err := uc.UploadDocument(adminCtx(), "wp-1", DocumentUpload{Name: "a.pdf", Size: 8, Body: body()})
		if !errors.Is(err, ErrDocumentUploadForbidden) {
			t.Fatalf("expected ErrDocumentUploadForbidden, got %v", err)
		}
	})

	t.Run("stores and presigns", func(t *testing.T) {
		uc, m := newProposalUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "wp-1").Return(proposalIn(entities.StatusWorkInProgress), nil)

		var storedKey string
		m.storage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), int64(8), "application/pdf").DoAndReturn(
			func(_ context.Context, key string, _ io.Reader, _ int64, _ string) error {
				storedKey = key
				return nil
			},
		)
		m.storage.EXPECT().PresignedURL(gomock.Any(), gomock.Any()).Return("http://minio/signed", nil)

		doc, err := uc.UploadDocument(adminCtx(), "wp-1", DocumentUpload{Name: "../Completion Cert.pdf", ContentType: "application/pdf", Size: 8, Body: body()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(storedKey, "proposals/wp-1/") || !strings.HasSuffix(storedKey, "-Completion_Cert.pdf") {
			t.Fatalf("unexpected object key %q", storedKey)
		}
		if doc.ObjectKey != storedKey || doc.URL != "http://minio/signed" || doc.UploadedBy != "u-admin" {
			t.Fatalf("unexpected document: %+v", doc)
		}
	})
}

func TestSanitizeFileName(t *testing.T) {
	cases := map[string]string{
		"photo 1.jpg":         "photo_1.jpg",
		"..\\..\\secret.txt":  "secret.txt",
		"/etc/passwd":         "passwd",
		"नक्शा.pdf":           ".pdf",
		"":                    "document",
		"..":                  "document",
	}
	for in, want := range cases {
		if got := sanitizeFileName(in); got != want {
			t.Fatalf("sanitizeFileName(%q) = %q, want %q", in, got, want)
		}
	}
}
