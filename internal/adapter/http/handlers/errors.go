package handlers

import (
	"errors"
	"net/http"

	"nirman/internal/adapter/http/dto/request"
	"nirman/internal/domain/workflow"
	"nirman/internal/usecase"
	"nirman/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errInvalidQuery   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid query parameters", http.StatusBadRequest)
)

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func validation(err error) *pkg.AppError {
	return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
}

func invalidState(code string, err error) *pkg.AppError {
	return pkg.NewDomainError(code, err.Error(), err, http.StatusBadRequest)
}

// mapWorkError covers both the lifecycle and the ledger usecases; they share
// the proposal lookup and the optimistic-lock errors.
func mapWorkError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID),
		errors.Is(err, usecase.ErrInvalidProgressPercentage),
		errors.Is(err, usecase.ErrInvalidInstallment),
		errors.Is(err, usecase.ErrInvalidExpenditure),
		errors.Is(err, usecase.ErrInvalidStatusFilter),
		errors.Is(err, usecase.ErrInvalidProgressRange),
		errors.Is(err, usecase.ErrInvalidWorkProposal),
		errors.Is(err, usecase.ErrInvalidApproval),
		errors.Is(err, usecase.ErrInvalidTender),
		errors.Is(err, usecase.ErrInvalidWorkOrder),
		errors.Is(err, usecase.ErrReasonRequired),
		errors.Is(err, usecase.ErrInvalidDocument),
		errors.Is(err, request.ErrInvalidDate):
		return validation(err)
	case errors.Is(err, usecase.ErrWorkProposalNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Work proposal not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrExceedsSanctionedAmount):
		return invalidState("EXCEEDS_SANCTIONED_AMOUNT", err)
	case errors.Is(err, usecase.ErrProgressNotInitialized):
		return invalidState("PROGRESS_NOT_INITIALIZED", err)
	case errors.Is(err, usecase.ErrProgressNotAllowed),
		errors.Is(err, usecase.ErrCompletionNotAllowed),
		errors.Is(err, usecase.ErrDocumentUploadForbidden),
		errors.Is(err, workflow.ErrInvalidTransition):
		return invalidState("INVALID_STATUS", err)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainError("CONCURRENT_UPDATE", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainError("UNAUTHENTICATED", "Authentication required", err, http.StatusUnauthorized)
	default:
		return pkg.Internal(err)
	}
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainError("UNAUTHENTICATED", "Authentication required", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainError("NOT_FOUND", "User not found", err, http.StatusNotFound)
	default:
		return pkg.Internal(err)
	}
}
