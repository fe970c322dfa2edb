// Package workflow owns the work-proposal lifecycle. Every operation that
// changes a proposal's status asks Transition for the next status instead of
// assigning one directly.
package workflow

import (
	"errors"
	"fmt"

	"nirman/internal/domain/entities"
)

type Action string

const (
	ActionApproveTechnical      Action = "approve_technical"
	ActionApproveAdministrative Action = "approve_administrative"
	ActionAwardTender           Action = "award_tender"
	ActionIssueWorkOrder        Action = "issue_work_order"
	ActionReportProgress        Action = "report_progress"
	ActionComplete              Action = "complete"
	ActionCancel                Action = "cancel"
	ActionClose                 Action = "close"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError names the refused move.
type InvalidTransitionError struct {
	From   entities.WorkStatus
	Action Action
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a work in status %q", e.Action, e.From)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

var transitions = map[entities.WorkStatus]map[Action]entities.WorkStatus{
	entities.StatusPendingTechnicalApproval: {
		ActionApproveTechnical: entities.StatusPendingAdministrativeApproval,
		ActionCancel:           entities.StatusWorkCancelled,
	},
	entities.StatusPendingAdministrativeApproval: {
		ActionApproveAdministrative: entities.StatusPendingTender,
		ActionCancel:                entities.StatusWorkCancelled,
	},
	entities.StatusPendingTender: {
		ActionAwardTender: entities.StatusPendingWorkOrder,
		ActionCancel:      entities.StatusWorkCancelled,
	},
	entities.StatusPendingWorkOrder: {
		ActionIssueWorkOrder: entities.StatusWorkOrderCreated,
		ActionCancel:         entities.StatusWorkCancelled,
	},
	entities.StatusWorkOrderCreated: {
		ActionReportProgress: entities.StatusWorkInProgress,
		ActionCancel:         entities.StatusWorkCancelled,
	},
	entities.StatusWorkInProgress: {
		ActionReportProgress: entities.StatusWorkInProgress,
		ActionComplete:       entities.StatusWorkCompleted,
		ActionCancel:         entities.StatusWorkCancelled,
	},
	entities.StatusWorkCompleted: {
		ActionClose: entities.StatusWorkClosed,
	},
	entities.StatusWorkCancelled: {},
	entities.StatusWorkClosed:    {},
}

// Transition returns the status reached by applying action to current.
func Transition(current entities.WorkStatus, action Action) (entities.WorkStatus, error) {
	if next, ok := transitions[current][action]; ok {
		return next, nil
	}
	return current, &InvalidTransitionError{From: current, Action: action}
}

// Can reports whether action is legal from current.
func Can(current entities.WorkStatus, action Action) bool {
	_, err := Transition(current, action)
	return err == nil
}

// IsTerminal reports whether no action leaves s.
func IsTerminal(s entities.WorkStatus) bool {
	return len(transitions[s]) == 0
}

// Apply runs Transition and, on success, moves both status fields of p.
func Apply(p *entities.WorkProposal, action Action) error {
	next, err := Transition(p.CurrentStatus, action)
	if err != nil {
		return err
	}
	p.SetStatus(next)
	return nil
}
