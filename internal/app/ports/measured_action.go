package ports

type MeasuredActionLabel string
type MeasuredActionResult string

const (
	MALabelStrategy MeasuredActionLabel = "strategy"
	MALabelRoute    MeasuredActionLabel = "route"
	MALabelResult   MeasuredActionLabel = "result"

	MAResultAuthenticated MeasuredActionResult = "authenticated"
	MAResultChallenge     MeasuredActionResult = "challenge"
	MAResultRejected      MeasuredActionResult = "rejected"
	MAResultFault         MeasuredActionResult = "fault"
	MAResultError         MeasuredActionResult = "error"
)

type MeasuredAction interface {
	Done(result MeasuredActionResult) MeasuredAction
	Duration() float64
	Labels() map[MeasuredActionLabel]string
}

type ActionMetrics interface {
	OnActionDone(ma MeasuredAction)
}
