package models

import "github.com/existential-birds/amelia-sub003/ent/workflow"

// validTransitions is the authoritative workflow status transition table.
// Terminal statuses (completed, failed, cancelled) have no outgoing edges.
var validTransitions = map[workflow.Status][]workflow.Status{
	workflow.StatusPending: {
		workflow.StatusPlanning,
		workflow.StatusInProgress, // review-type workflows skip planning
		workflow.StatusFailed,
		workflow.StatusCancelled,
	},
	workflow.StatusPlanning: {
		workflow.StatusBlocked,
		workflow.StatusFailed,
		workflow.StatusCancelled,
	},
	workflow.StatusBlocked: {
		workflow.StatusInProgress,
		workflow.StatusFailed,
		workflow.StatusCancelled,
	},
	workflow.StatusInProgress: {
		workflow.StatusBlocked, // reviewer sent the work back for revision
		workflow.StatusCompleted,
		workflow.StatusFailed,
		workflow.StatusCancelled,
	},
}

// CanTransition reports whether moving a workflow from one status to another
// is legal. Self-transitions are not legal; callers handle idempotent
// terminal actions before consulting the table.
func CanTransition(from, to workflow.Status) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status has no outgoing transitions.
func IsTerminal(s workflow.Status) bool {
	switch s {
	case workflow.StatusCompleted, workflow.StatusFailed, workflow.StatusCancelled:
		return true
	}
	return false
}

// IsActive reports whether the status counts toward the concurrency cap and
// the per-worktree exclusivity constraint.
func IsActive(s workflow.Status) bool {
	switch s {
	case workflow.StatusPlanning, workflow.StatusInProgress, workflow.StatusBlocked:
		return true
	}
	return false
}

// ActiveStatuses lists statuses with a machine task attached (or suspended
// at the approval gate).
var ActiveStatuses = []workflow.Status{
	workflow.StatusPlanning,
	workflow.StatusInProgress,
	workflow.StatusBlocked,
}

// OpenStatuses lists every non-terminal status. A row occupies its worktree
// and a concurrency slot from the moment it is created, so admission checks
// must include pending rows that have not yet made their first transition.
var OpenStatuses = []workflow.Status{
	workflow.StatusPending,
	workflow.StatusPlanning,
	workflow.StatusInProgress,
	workflow.StatusBlocked,
}
