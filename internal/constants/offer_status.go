package constants

type OfferStatus string

const (
	OfferStatusPending   OfferStatus = "PENDING"
	OfferStatusAccepted  OfferStatus = "ACCEPTED"
	OfferStatusRejected  OfferStatus = "REJECTED"
	OfferStatusWithdrawn OfferStatus = "WITHDRAWN"
)

// CanTransitionTo reports whether an offer may move from s to next.
// Only PENDING offers move, and every move is final.
func (s OfferStatus) CanTransitionTo(next OfferStatus) bool {
	if s != OfferStatusPending {
		return false
	}
	switch next {
	case OfferStatusAccepted, OfferStatusRejected, OfferStatusWithdrawn:
		return true
	}
	return false
}

func (s OfferStatus) IsTerminal() bool {
	return s != OfferStatusPending
}
