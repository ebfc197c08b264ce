package ports

import "errors"

// Credentials is the object a validator attaches to an authenticated request.
type Credentials map[string]any

type OutcomeKind int

const (
	OutcomeUnknown OutcomeKind = iota
	// OutcomeAuthenticated: the validator accepted the token.
	OutcomeAuthenticated
	// OutcomeChallenge: no usable credential was supplied (missing, malformed, wrong type).
	OutcomeChallenge
	// OutcomeRejected: a credential was supplied and the validator refused it.
	OutcomeRejected
	// OutcomeFault: the validator broke its contract.
	OutcomeFault
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeAuthenticated:
		return "authenticated"
	case OutcomeChallenge:
		return "challenge"
	case OutcomeRejected:
		return "rejected"
	case OutcomeFault:
		return "fault"
	default:
		return "unknown"
	}
}

// Outcome is the single result type of an authentication attempt.
// Err is an *UnauthorizedError for challenges and rejections and wraps
// ErrBadImplementation for faults.
type Outcome struct {
	Kind        OutcomeKind
	Credentials Credentials
	Artifacts   any
	Err         error
}

func Authenticated(credentials Credentials, artifacts any) Outcome {
	return Outcome{Kind: OutcomeAuthenticated, Credentials: credentials, Artifacts: artifacts}
}

func Challenged(err error) Outcome {
	return Outcome{Kind: OutcomeChallenge, Err: err}
}

func Rejected(err error, credentials Credentials, artifacts any) Outcome {
	if credentials == nil {
		credentials = Credentials{}
	}
	return Outcome{Kind: OutcomeRejected, Err: err, Credentials: credentials, Artifacts: artifacts}
}

func Faulted(err error) Outcome {
	return Outcome{Kind: OutcomeFault, Err: err, Credentials: Credentials{}}
}

func (o Outcome) IsAuthenticated() bool {
	return o.Kind == OutcomeAuthenticated
}

// Unauthorized returns the structured error of a challenge or rejection, if any.
func (o Outcome) Unauthorized() (*UnauthorizedError, bool) {
	var ue *UnauthorizedError
	if o.Err != nil && errors.As(o.Err, &ue) {
		return ue, true
	}
	return nil, false
}

// Message is the human-readable reason, nil when absent or suppressed.
func (o Outcome) Message() *string {
	if ue, ok := o.Unauthorized(); ok {
		return ue.Message
	}
	if o.Err != nil {
		msg := o.Err.Error()
		return &msg
	}
	return nil
}
