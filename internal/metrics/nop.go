package metrics

import "time"

// NopMetrics discards every measurement.
//
// Useful for tests or when the service runs without a metrics endpoint.
type NopMetrics struct{}

func NewNop() *NopMetrics { return &NopMetrics{} }

func (n *NopMetrics) AssignmentCreated(_ /* oversize */ bool) {}

func (n *NopMetrics) AssignmentRejected(_ /* reason */ string) {}

func (n *NopMetrics) PackingDegraded(_ /* reason */ string) {}

func (n *NopMetrics) SyncCompleted(_, _, _ /* created, updated, failed */ int, _ time.Duration) {}
