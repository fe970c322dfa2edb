package interfaces

import (
	"context"
	"errors"

	"nirman/internal/domain/entities"
)

// ErrVersionConflict is returned by Update when the stored version no longer
// matches the version the caller read.
var ErrVersionConflict = errors.New("work proposal was modified concurrently")

// WorkProposalFilter narrows a listing. Zero values mean "no constraint";
// MinProgress/MaxProgress are either both set or both nil.
type WorkProposalFilter struct {
	Statuses    []entities.WorkStatus
	Department  string
	MinProgress *int
	MaxProgress *int
}

// IWorkProposalRepository abstracts DynamoDB persistence for WorkProposal.
//
// Lookups return an empty proposal (ID == "") when nothing matches.
// Update is a compare-and-swap: it persists p only when the stored version
// equals expectedVersion, and returns the stored proposal with its new version.
type IWorkProposalRepository interface {
	Create(ctx context.Context, p entities.WorkProposal) (entities.WorkProposal, error)
	GetByID(ctx context.Context, id string) (entities.WorkProposal, error)
	Update(ctx context.Context, p entities.WorkProposal, expectedVersion int64) (entities.WorkProposal, error)
	List(ctx context.Context, filter WorkProposalFilter) ([]entities.WorkProposal, error)
}
