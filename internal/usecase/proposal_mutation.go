package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"nirman/internal/domain/entities"
	"nirman/internal/usecase/interfaces"
	"nirman/pkg/logger"

	"go.uber.org/zap"
)

var (
	ErrInvalidProposalID    = errors.New("invalid work proposal id")
	ErrWorkProposalNotFound = errors.New("work proposal not found")
	ErrConcurrentUpdate     = errors.New("work proposal is being updated by someone else, please retry")
)

const defaultMaxUpdateAttempts = 3

// proposalMutator runs read-modify-write cycles against the proposal store.
// Each cycle re-reads the proposal, applies mutate to a copy and writes it
// back guarded by the version read. mutate runs again on every retry, so any
// validation inside it always sees the latest stored state.
type proposalMutator struct {
	repo        interfaces.IWorkProposalRepository
	maxAttempts int
	now         func() time.Time
}

func newProposalMutator(repo interfaces.IWorkProposalRepository, maxAttempts int) proposalMutator {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxUpdateAttempts
	}
	return proposalMutator{repo: repo, maxAttempts: maxAttempts, now: time.Now}
}

func (m proposalMutator) load(ctx context.Context, id string) (entities.WorkProposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkProposal{}, ErrInvalidProposalID
	}
	p, err := m.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkProposal{}, err
	}
	if p.ID == "" {
		return entities.WorkProposal{}, ErrWorkProposalNotFound
	}
	return p, nil
}

func (m proposalMutator) mutate(ctx context.Context, id string, mutate func(p *entities.WorkProposal, now time.Time) error) (entities.WorkProposal, error) {
	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		current, err := m.load(ctx, id)
		if err != nil {
			return entities.WorkProposal{}, err
		}

		now := m.now().UTC()
		next := current.Clone()
		if err := mutate(&next, now); err != nil {
			return entities.WorkProposal{}, err
		}
		next.UpdatedAt = now

		saved, err := m.repo.Update(ctx, next, current.Version)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			logger.Warn(ctx, "[proposal][usecase] version conflict, retrying",
				zap.String("proposal_id", current.ID),
				zap.Int64("version", current.Version),
				zap.Int("attempt", attempt),
			)
			continue
		}
		if err != nil {
			return entities.WorkProposal{}, err
		}
		return saved, nil
	}
	logger.Error(ctx, "[proposal][usecase] update attempts exhausted", zap.String("proposal_id", id), zap.Int("attempts", m.maxAttempts))
	return entities.WorkProposal{}, ErrConcurrentUpdate
}
