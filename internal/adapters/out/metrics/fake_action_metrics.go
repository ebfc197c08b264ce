package metrics

import (
	"bearer-auth-api/internal/app/ports"
	"sync"

	log "github.com/sirupsen/logrus"
)

// FakeActionMetrics records actions in memory; used by tests and when metrics are off.
type FakeActionMetrics struct {
	mu      sync.Mutex
	actions []map[ports.MeasuredActionLabel]string
}

// Enforce compile-time conformance to the interface
var _ ports.ActionMetrics = (*FakeActionMetrics)(nil)

func (m *FakeActionMetrics) OnActionDone(ma ports.MeasuredAction) {
	mal := ma.Labels()
	log.WithField("labels", mal).Debug("FakeActionMetrics.OnActionDone")
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actions = append(m.actions, mal)
}

// Results returns the recorded result labels in order.
func (m *FakeActionMetrics) Results() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.actions))
	for _, a := range m.actions {
		out = append(out, a[ports.MALabelResult])
	}
	return out
}
