package booking

import "glowbook/models"

// TransitionPolicy decides whether a booking may move from one status to
// another. It is a single swap point: call sites never encode the graph.
type TransitionPolicy func(from, to string) bool

// AllowAnyTransition permits every status change, including reopening a
// completed booking. This mirrors the behavior the mobile client relies on
// today and is the wired default.
func AllowAnyTransition(from, to string) bool {
	return true
}

// StrictTransitions enforces the documented lifecycle: pending may confirm
// or cancel, confirmed may complete or cancel, completed and cancelled are
// terminal. Not wired by default; swap it in via DefaultBookingService.
func StrictTransitions(from, to string) bool {
	switch from {
	case models.StatusPending:
		return to == models.StatusConfirmed || to == models.StatusCancelled
	case models.StatusConfirmed:
		return to == models.StatusCompleted || to == models.StatusCancelled
	}
	return false
}
