package handlers

import (
	"context"
	"errors"
	"net/http"

	"nirman/internal/adapter/http/dto/request"
	"nirman/internal/adapter/http/dto/response"
	"nirman/internal/domain/entities"
	"nirman/internal/usecase"
	"nirman/pkg"

	"github.com/gin-gonic/gin"
)

// maxDocumentSize bounds a single completion-document upload.
const maxDocumentSize = 25 << 20

var errDocumentTooLarge = pkg.NewDomainErrorSimple("DOCUMENT_TOO_LARGE", "Documents are limited to 25 MB", http.StatusRequestEntityTooLarge)

// WorkProposalHandler drives a proposal through the lifecycle stages.
type WorkProposalHandler struct {
	usecase usecase.IWorkProposalUseCase
}

func NewWorkProposalHandler(uc usecase.IWorkProposalUseCase) *WorkProposalHandler {
	return &WorkProposalHandler{usecase: uc}
}

// Create godoc
// @Summary      Create a work proposal
// @Tags         work-proposals
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  request.CreateWorkProposalRequest  true  "Proposal"
// @Success      201   {object}  response.Envelope
// @Failure      400   {object}  pkg.HTTPError
// @Router       /work-proposals [post]
func (h *WorkProposalHandler) Create(c *gin.Context) {
	var payload request.CreateWorkProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	proposal, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWith(c, mapWorkError(err))
		return
	}
	c.JSON(http.StatusCreated, response.OKWithMessage("Work proposal created", proposal))
}

// GetByID godoc
// @Summary      Get a work proposal
// @Tags         work-proposals
// @Produce      json
// @Security     Bearer
// @Param        id  path  string  true  "Work proposal id"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  pkg.HTTPError
// @Router       /work-proposals/{id} [get]
func (h *WorkProposalHandler) GetByID(c *gin.Context) {
	proposal, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapWorkError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(proposal))
}

func (h *WorkProposalHandler) ApproveTechnical(c *gin.Context) {
	h.approve(c, h.usecase.ApproveTechnical)
}

func (h *WorkProposalHandler) ApproveAdministrative(c *gin.Context) {
	h.approve(c, h.usecase.ApproveAdministrative)
}

func (h *WorkProposalHandler) approve(
	c *gin.Context,
	stage func(ctx context.Context, id string, in usecase.StageApprovalInput) (entities.WorkProposal, error),
) {
	var payload request.StageApprovalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		abortWith(c, mapWorkError(err))
		return
	}

	proposal, err := stage(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		abortWith(c, mapWorkError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(proposal))
}

func (h *WorkProposalHandler) AwardTender(c *gin.Context) {
	var payload request.TenderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		abortWith(c, mapWorkError(err))
		return
	}

	proposal, err := h.usecase.AwardTender(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		abortWith(c, mapWorkError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(proposal))
}

// IssueWorkOrder godoc
// @Summary      Issue the work order and open the progress ledger
// @Tags         work-proposals
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string                    true  "Work proposal id"
// @Param        body  body  request.WorkOrderRequest  true  "Work order"
// @Success      200   {object}  response.Envelope
// @Router       /work-proposals/{id}/work-order [post]
func (h *WorkProposalHandler) IssueWorkOrder(c *gin.Context) {
	var payload request.WorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		abortWith(c, mapWorkError(err))
		return
	}

	proposal, err := h.usecase.IssueWorkOrder(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		abortWith(c, mapWorkError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(proposal))
}

func (h *WorkProposalHandler) Cancel(c *gin.Context) {
	h.exit(c, h.usecase.Cancel)
}

func (h *WorkProposalHandler) Close(c *gin.Context) {
	h.exit(c, h.usecase.Close)
}

func (h *WorkProposalHandler) exit(
	c *gin.Context,
	action func(ctx context.Context, id string, reason string) (entities.WorkProposal, error),
) {
	var payload request.ReasonRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	proposal, err := action(c.Request.Context(), c.Param("id"), payload.Reason)
	if err != nil {
		abortWith(c, mapWorkError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(proposal))
}

// UploadDocument godoc
// @Summary      Upload a completion document
// @Description  Stores the file and returns its metadata for the completion request.
// @Tags         work-progress
// @Accept       multipart/form-data
// @Produce      json
// @Security     Bearer
// @Param        id    path      string  true  "Work proposal id"
// @Param        file  formData  file    true  "Document"
// @Success      201   {object}  response.Envelope
// @Failure      413   {object}  pkg.HTTPError
// @Router       /work-proposals/{id}/progress/documents [post]
func (h *WorkProposalHandler) UploadDocument(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxDocumentSize+(1<<20))

	fh, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			abortWith(c, errDocumentTooLarge)
			return
		}
		abortWith(c, mapWorkError(usecase.ErrInvalidDocument))
		return
	}
	if fh.Size > maxDocumentSize {
		abortWith(c, errDocumentTooLarge)
		return
	}

	f, err := fh.Open()
	if err != nil {
		abortWith(c, pkg.Internal(err))
		return
	}
	defer f.Close()

	doc, err := h.usecase.UploadDocument(c.Request.Context(), c.Param("id"), usecase.DocumentUpload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		abortWith(c, mapWorkError(err))
		return
	}
	c.JSON(http.StatusCreated, response.OKWithMessage("Document uploaded", doc))
}
