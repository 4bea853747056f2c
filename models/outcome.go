package models

// Outcome is the result of a single verification attempt.
type Outcome int

const (
	// OutcomeMissing means the request carried no token and no outbound call was made.
	OutcomeMissing Outcome = iota
	// OutcomeAccepted means the external verifier answered 200.
	OutcomeAccepted
	// OutcomeRejected means the external verifier answered with any status other than 200.
	OutcomeRejected
	// OutcomeTransportFailure means the outbound call could not complete.
	OutcomeTransportFailure
)

var outcomeNames = map[Outcome]string{
	OutcomeMissing:          "missing",
	OutcomeAccepted:         "accepted",
	OutcomeRejected:         "rejected",
	OutcomeTransportFailure: "transport_failure",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}
