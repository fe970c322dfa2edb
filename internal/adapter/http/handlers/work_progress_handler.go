package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"nirman/internal/adapter/http/dto/request"
	"nirman/internal/adapter/http/dto/response"
	"nirman/internal/usecase"
	"nirman/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WorkProgressHandler exposes the financial/progress ledger of a proposal.
type WorkProgressHandler struct {
	usecase usecase.IWorkProgressUseCase
}

func NewWorkProgressHandler(uc usecase.IWorkProgressUseCase) *WorkProgressHandler {
	return &WorkProgressHandler{usecase: uc}
}

// UpdateProgress godoc
// @Summary      Record a progress report
// @Description  Partial update of the ledger; may append an installment and completes the work at 100%.
// @Tags         work-progress
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string                         true  "Work proposal id"
// @Param        body  body  request.ProgressUpdateRequest  true  "Progress report"
// @Success      200   {object}  response.Envelope
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /work-proposals/{id}/progress [post]
func (h *WorkProgressHandler) UpdateProgress(c *gin.Context) {
	var payload request.ProgressUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		abortWith(c, mapWorkError(err))
		return
	}

	proposal, err := h.usecase.UpdateProgress(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		abortWith(c, mapWorkError(err))
		return
	}
	c.JSON(http.StatusOK, response.OKWithMessage("Progress updated", proposal))
}

// AddInstallment godoc
// @Summary      Release an installment
// @Tags         work-progress
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string                      true  "Work proposal id"
// @Param        body  body  request.InstallmentRequest  true  "Installment"
// @Success      201   {object}  response.Envelope{data=response.InstallmentResponse}
// @Failure      400   {object}  pkg.HTTPError
// @Router       /work-proposals/{id}/progress/installment [post]
func (h *WorkProgressHandler) AddInstallment(c *gin.Context) {
	var payload request.InstallmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		abortWith(c, mapWorkError(err))
		return
	}

	result, err := h.usecase.AddInstallment(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		abortWith(c, mapWorkError(err))
		return
	}
	c.JSON(http.StatusCreated, response.OKWithMessage("Installment added", response.FromInstallmentResult(result)))
}

// CompleteWork godoc
// @Summary      Complete a work in progress
// @Tags         work-progress
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string                       true   "Work proposal id"
// @Param        body  body  request.CompleteWorkRequest  false  "Final expenditure and documents"
// @Success      200   {object}  response.Envelope
// @Router       /work-proposals/{id}/progress/complete [post]
func (h *WorkProgressHandler) CompleteWork(c *gin.Context) {
	var payload request.CompleteWorkRequest
	// the body is optional; io.EOF means none was sent, chunked or not
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		abortWith(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		abortWith(c, mapWorkError(err))
		return
	}

	proposal, err := h.usecase.CompleteWork(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		abortWith(c, mapWorkError(err))
		return
	}
	c.JSON(http.StatusOK, response.OKWithMessage("Work completed", proposal))
}

// GetHistory godoc
// @Summary      Progress ledger with the last editor resolved
// @Tags         work-progress
// @Produce      json
// @Security     Bearer
// @Param        id  path  string  true  "Work proposal id"
// @Success      200  {object}  response.Envelope{data=response.ProgressHistoryResponse}
// @Router       /work-proposals/{id}/progress/history [get]
func (h *WorkProgressHandler) GetHistory(c *gin.Context) {
	history, err := h.usecase.GetHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapWorkError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromProgressHistory(history)))
}

// ListDashboard godoc
// @Summary      Paginated progress dashboard
// @Tags         work-progress
// @Produce      json
// @Security     Bearer
// @Param        page         query  int     false  "Page (1-based)"
// @Param        limit        query  int     false  "Page size (max 100)"
// @Param        status       query  string  false  "Status filter, repeatable or comma-separated"
// @Param        department   query  string  false  "Department substring"
// @Param        minProgress  query  int     false  "Lower progress bound"
// @Param        maxProgress  query  int     false  "Upper progress bound"
// @Success      200  {object}  response.DashboardResponse
// @Router       /work-progress [get]
func (h *WorkProgressHandler) ListDashboard(c *gin.Context) {
	var q request.DashboardRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWith(c, errInvalidQuery)
		return
	}

	page, err := h.usecase.ListDashboard(c.Request.Context(), q.ToQuery())
	if err != nil {
		abortWith(c, mapWorkError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardPage(page))
}

// ExportDashboard streams the filtered dashboard as an xlsx workbook.
func (h *WorkProgressHandler) ExportDashboard(c *gin.Context) {
	var q request.DashboardRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWith(c, errInvalidQuery)
		return
	}

	data, err := h.usecase.ExportDashboard(c.Request.Context(), q.ToQuery())
	if err != nil {
		abortWith(c, mapWorkError(err))
		return
	}

	fileName := fmt.Sprintf("work_progress_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	logger.Info(c.Request.Context(), "[progress][handler] export", zap.Int("bytes", len(data)))
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, xlsxContentType, data)
}
