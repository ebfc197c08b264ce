package metrics

import (
	"bearer-auth-api/internal/app/ports"
	"time"
)

// AuthAction measures one strategy attempt on one route.
type AuthAction struct {
	start           time.Time
	Route           string
	Strategy        string
	Result          string
	DurationFloat64 float64
}

// Enforce compile-time conformance to the interface
var _ ports.MeasuredAction = (*AuthAction)(nil)

func (a *AuthAction) Duration() float64 {
	return a.DurationFloat64
}

func NewAuthAction(route, strategy string) *AuthAction {
	return &AuthAction{
		start:    time.Now(),
		Route:    route,
		Strategy: strategy,
		Result:   "unknown",
	}
}

func (a *AuthAction) Done(result ports.MeasuredActionResult) ports.MeasuredAction {
	a.Result = string(result)
	a.DurationFloat64 = time.Since(a.start).Seconds()
	return a
}

func (a *AuthAction) DoneFromOutcome(outcome ports.Outcome, err error) ports.MeasuredAction {
	return a.Done(measuredFromOutcome(outcome, err))
}

func (a *AuthAction) Labels() map[ports.MeasuredActionLabel]string {
	return map[ports.MeasuredActionLabel]string{
		ports.MALabelRoute:    a.Route,
		ports.MALabelStrategy: a.Strategy,
		ports.MALabelResult:   a.Result,
	}
}

func measuredFromOutcome(outcome ports.Outcome, err error) ports.MeasuredActionResult {
	if err != nil {
		return ports.MAResultError
	}
	switch outcome.Kind {
	case ports.OutcomeAuthenticated:
		return ports.MAResultAuthenticated
	case ports.OutcomeChallenge:
		return ports.MAResultChallenge
	case ports.OutcomeRejected:
		return ports.MAResultRejected
	case ports.OutcomeFault:
		return ports.MAResultFault
	default:
		return ports.MAResultError
	}
}
