package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"nirman/internal/adapter/http/handlers/mocks"
	"nirman/internal/domain/entities"
	"nirman/internal/domain/workflow"
	"nirman/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func proposalRouter(uc usecase.IWorkProposalUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewWorkProposalHandler(uc)
	r := gin.New()
	r.POST("/api/work-proposals", h.Create)
	r.GET("/api/work-proposals/:id", h.GetByID)
	r.POST("/api/work-proposals/:id/technical-approval", h.ApproveTechnical)
	r.POST("/api/work-proposals/:id/administrative-approval", h.ApproveAdministrative)
	r.POST("/api/work-proposals/:id/tender", h.AwardTender)
	r.POST("/api/work-proposals/:id/work-order", h.IssueWorkOrder)
	r.POST("/api/work-proposals/:id/cancel", h.Cancel)
	r.POST("/api/work-proposals/:id/close", h.Close)
	r.POST("/api/work-proposals/:id/progress/documents", h.UploadDocument)
	return r
}

func TestWorkProposalHandler_Create(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := proposalRouter(mocks.NewMockIWorkProposalUseCase(ctrl))

		w := doJSON(r, http.MethodPost, "/api/work-proposals", `{"nameOfWork":"Drain"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWorkProposalUseCase(ctrl)
		r := proposalRouter(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.CreateWorkProposalInput) (entities.WorkProposal, error) {
				if in.NameOfWork != "Ward 4 drain" || !in.ProposedAmount.Equal(decimal.NewFromInt(120000)) {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.WorkProposal{ID: "wp-1", SerialNumber: "JSP/2026/00001"}, nil
			},
		)

		w := doJSON(r, http.MethodPost, "/api/work-proposals", `{"nameOfWork":"Ward 4 drain","department":"PWD","proposedAmount":120000}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestWorkProposalHandler_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIWorkProposalUseCase(ctrl)
	r := proposalRouter(uc)

	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.WorkProposal{}, usecase.ErrWorkProposalNotFound)

	w := doJSON(r, http.MethodGet, "/api/work-proposals/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestWorkProposalHandler_Stages(t *testing.T) {
	t.Run("technical approval out of order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWorkProposalUseCase(ctrl)
		r := proposalRouter(uc)

		refused := &workflow.InvalidTransitionError{From: entities.StatusPendingTender, Action: workflow.ActionApproveTechnical}
		uc.EXPECT().ApproveTechnical(gomock.Any(), "wp-1", gomock.Any()).Return(entities.WorkProposal{}, refused)

		w := doJSON(r, http.MethodPost, "/api/work-proposals/wp-1/technical-approval", `{"approvalNumber":"TA-1","date":"2026-01-10","amount":100}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if env := decodeEnvelope(t, w); env.Error != "INVALID_STATUS" {
			t.Fatalf("expected INVALID_STATUS, got %q", env.Error)
		}
	})

	t.Run("administrative approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWorkProposalUseCase(ctrl)
		r := proposalRouter(uc)

		uc.EXPECT().ApproveAdministrative(gomock.Any(), "wp-1", gomock.Any()).Return(entities.WorkProposal{ID: "wp-1"}, nil)

		w := doJSON(r, http.MethodPost, "/api/work-proposals/wp-1/administrative-approval", `{"approvalNumber":"AA-1","date":"2026-01-12","amount":100}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("tender", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWorkProposalUseCase(ctrl)
		r := proposalRouter(uc)

		uc.EXPECT().AwardTender(gomock.Any(), "wp-1", gomock.Any()).Return(entities.WorkProposal{}, usecase.ErrInvalidTender)

		w := doJSON(r, http.MethodPost, "/api/work-proposals/wp-1/tender", `{"contractorName":"Acme"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("work order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWorkProposalUseCase(ctrl)
		r := proposalRouter(uc)

		uc.EXPECT().IssueWorkOrder(gomock.Any(), "wp-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in usecase.WorkOrderInput) (entities.WorkProposal, error) {
				if !in.WorkOrderAmount.Equal(decimal.NewFromInt(100000)) || in.Date.IsZero() {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.WorkProposal{ID: "wp-1", CurrentStatus: entities.StatusWorkOrderCreated}, nil
			},
		)

		w := doJSON(r, http.MethodPost, "/api/work-proposals/wp-1/work-order", `{"workOrderNumber":"WO-1","date":"2026-02-01","workOrderAmount":100000}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestWorkProposalHandler_Exits(t *testing.T) {
	t.Run("cancel without reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWorkProposalUseCase(ctrl)
		r := proposalRouter(uc)

		uc.EXPECT().Cancel(gomock.Any(), "wp-1", "").Return(entities.WorkProposal{}, usecase.ErrReasonRequired)

		w := doJSON(r, http.MethodPost, "/api/work-proposals/wp-1/cancel", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("close", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWorkProposalUseCase(ctrl)
		r := proposalRouter(uc)

		uc.EXPECT().Close(gomock.Any(), "wp-1", "handed over").Return(entities.WorkProposal{ID: "wp-1", CurrentStatus: entities.StatusWorkClosed}, nil)

		w := doJSON(r, http.MethodPost, "/api/work-proposals/wp-1/close", `{"reason":"handed over"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func multipartBody(t *testing.T, field, name string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		fw, err := mw.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write(content); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestWorkProposalHandler_UploadDocument(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := proposalRouter(mocks.NewMockIWorkProposalUseCase(ctrl))

		body, ct := multipartBody(t, "", "", nil)
		req := httptest.NewRequest(http.MethodPost, "/api/work-proposals/wp-1/progress/documents", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWorkProposalUseCase(ctrl)
		r := proposalRouter(uc)

		uc.EXPECT().UploadDocument(gomock.Any(), "wp-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, doc usecase.DocumentUpload) (entities.Document, error) {
				content, err := io.ReadAll(doc.Body)
				if err != nil || string(content) != "measurement book" || doc.Name != "mb.pdf" || doc.Size != 16 {
					t.Fatalf("unexpected upload: %+v %q %v", doc, content, err)
				}
				return entities.Document{Name: "mb.pdf", ObjectKey: "proposals/wp-1/x-mb.pdf", Size: doc.Size}, nil
			},
		)

		body, ct := multipartBody(t, "file", "mb.pdf", []byte("measurement book"))
		req := httptest.NewRequest(http.MethodPost, "/api/work-proposals/wp-1/progress/documents", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWorkProposalUseCase(ctrl)
		r := proposalRouter(uc)

		uc.EXPECT().UploadDocument(gomock.Any(), "wp-1", gomock.Any()).Return(entities.Document{}, errors.New("minio: connection refused"))

		body, ct := multipartBody(t, "file", "mb.pdf", []byte("x"))
		req := httptest.NewRequest(http.MethodPost, "/api/work-proposals/wp-1/progress/documents", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
