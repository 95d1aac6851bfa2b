package employee

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusActive      Status = "ACTIVE"
	StatusOnLeave     Status = "ON_LEAVE"
	StatusTransferred Status = "TRANSFERRED"
	StatusRetired     Status = "RETIRED"
	StatusSuspended   Status = "SUSPENDED"
	StatusDeceased    Status = "DECEASED"
	StatusRemoved     Status = "REMOVED"
	// StatusDismissed only shows up in read filters. Nothing transitions into or out of it.
	StatusDismissed Status = "DISMISSED"
)

// AllStatuses lists every status in display order.
var AllStatuses = []Status{
	StatusActive,
	StatusOnLeave,
	StatusTransferred,
	StatusRetired,
	StatusSuspended,
	StatusDeceased,
	StatusRemoved,
	StatusDismissed,
}

// transitions is the lifecycle graph. Statuses without an entry have no outgoing edges.
var transitions = map[Status][]Status{
	StatusActive:      {StatusOnLeave, StatusTransferred, StatusRetired, StatusSuspended, StatusDeceased},
	StatusOnLeave:     {StatusActive, StatusDeceased, StatusTransferred},
	StatusTransferred: {StatusActive},
	StatusRetired:     {},
	StatusSuspended:   {StatusActive},
	StatusDeceased:    {},
	StatusRemoved:     {StatusActive},
}

// IsValidTransition reports whether target is reachable from current in one step.
func IsValidTransition(current, target Status) bool {
	for _, next := range transitions[current] {
		if next == target {
			return true
		}
	}
	return false
}

// AllowedTransitions returns a copy of the outgoing edges of s.
func AllowedTransitions(s Status) []Status {
	next := transitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// IsTerminal reports whether s has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

func (s Status) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseStatus accepts the canonical value in any case, with '-' or '_' separators.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), "-", "_")))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// Named read views used by the listing endpoints.
var (
	CurrentStatuses = []Status{StatusActive, StatusDismissed, StatusOnLeave}
	PastStatuses    = []Status{StatusTransferred, StatusSuspended, StatusDeceased}
)

// InvalidTransitionError is returned when the lifecycle graph has no edge From -> To.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// Error lists the statuses reachable from From.
func (e *InvalidTransitionError) Error() string {
	if e.From.IsTerminal() {
		return fmt.Sprintf("invalid status transition: %s -> %s (%s is final)", e.From, e.To, e.From)
	}
	next := AllowedTransitions(e.From)
	names := make([]string, len(next))
	for i, s := range next {
		names[i] = string(s)
	}
	return fmt.Sprintf("invalid status transition: %s -> %s (allowed: %s)", e.From, e.To, strings.Join(names, ", "))
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
