package checkout

// State tracks one checkout attempt through its machine:
//
//	Idle -> AddressLoading -> Ready -> Submitting -> OrderCreated ->
//	PaymentProcessing -> Completed | OrderFailed | PaymentFailed
//
// OrderFailed and PaymentFailed are re-submittable; PaymentFailed may also
// retry payment against the already-created order.
type State string

const (
	StateIdle              State = "IDLE"
	StateAddressLoading    State = "ADDRESS_LOADING"
	StateReady             State = "READY"
	StateSubmitting        State = "SUBMITTING"
	StateOrderCreated      State = "ORDER_CREATED"
	StatePaymentProcessing State = "PAYMENT_PROCESSING"
	StateCompleted         State = "COMPLETED"
	StateOrderFailed       State = "ORDER_FAILED"
	StatePaymentFailed     State = "PAYMENT_FAILED"
)

func (s State) String() string {
	return string(s)
}

// inFlight reports whether a submission is currently running; a second
// submission in these states must not start.
func (s State) inFlight() bool {
	switch s {
	case StateSubmitting, StateOrderCreated, StatePaymentProcessing:
		return true
	default:
		return false
	}
}

// submittable reports whether a (re-)submission may start from s.
func (s State) submittable() bool {
	switch s {
	case StateReady, StateOrderFailed, StatePaymentFailed:
		return true
	default:
		return false
	}
}
