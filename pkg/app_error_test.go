package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb: throttled")
	e := NewDomainError("INTERNAL_ERROR", "boom", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: boom: dynamodb: throttled" {
		t.Fatalf("unexpected error string: %s", e.Error())
	}

	body := NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Work proposal not found", http.StatusNotFound).ToHTTPError()
	if body.Success || body.Error != "PROPOSAL_NOT_FOUND" || body.Message != "Work proposal not found" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestInternal(t *testing.T) {
	got := Internal(errors.New("conditional write failed"))
	if got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", got.HTTPStatus)
	}
	if got.Message != "conditional write failed" {
		t.Fatalf("expected cause message passed through, got %q", got.Message)
	}
	if Internal(nil).Message != "An internal error occurred" {
		t.Fatalf("expected generic message for nil cause")
	}
}
