package domain

// CheckoutState represents the state of a checkout session.
//
// Collecting happens client-side: a session only exists once validated
// guest info arrives. The server-side lifecycle is
// HoldRequested -> HoldConfirmed -> PaymentRedirected -> Polling,
// ending in exactly one of the terminal states.
type CheckoutState string

const (
	StateCollecting        CheckoutState = "collecting"
	StateHoldRequested     CheckoutState = "hold_requested"
	StateHoldConfirmed     CheckoutState = "hold_confirmed"
	StatePaymentRedirected CheckoutState = "payment_redirected"
	StatePolling           CheckoutState = "polling"

	// Terminal states. The first transition into any of them wins;
	// late in-flight status responses are discarded.
	StateApproved CheckoutState = "approved"
	StateRejected CheckoutState = "rejected"
	StateTimedOut CheckoutState = "timed_out"
	StateFailed   CheckoutState = "failed"
)

// IsTerminal reports whether the state ends the session: no further
// automatic transition happens from it.
func (s CheckoutState) IsTerminal() bool {
	switch s {
	case StateApproved, StateRejected, StateTimedOut, StateFailed:
		return true
	default:
		return false
	}
}

// FailureReason qualifies StateFailed. Both reasons are expected
// integration outcomes, not bugs, and allow a retry from Collecting.
type FailureReason string

const (
	// ReasonHoldRejected: the backend refused the temporary hold, usually
	// because the range was taken between the client-side check and the
	// server-side confirmation.
	ReasonHoldRejected FailureReason = "hold_rejected"

	// ReasonNoRedirectURL: the payment provider answered without a
	// redirect URL, so the payment step cannot start.
	ReasonNoRedirectURL FailureReason = "no_redirect_url"
)
