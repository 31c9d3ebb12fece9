package facts

import (
	"fmt"

	"github.com/ayushchouksey/jeclens/internal/common"
)

// Metric identifies one of the three vote counters of a fact.
// Each metric is gated independently: voting one does not block the others.
type Metric string

const (
	MetricInteresting Metric = "votesInteresting"
	MetricMindblowing Metric = "votesMindblowing"
	MetricFalse       Metric = "votesFalse"
)

// Metrics lists all vote metrics in display order.
var Metrics = []Metric{MetricInteresting, MetricMindblowing, MetricFalse}

// ParseMetric validates a raw metric name. Unknown names are a validation
// failure so that a crafted request can never touch an arbitrary column.
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricInteresting, MetricMindblowing, MetricFalse:
		return Metric(s), nil
	}
	return "", fmt.Errorf("%w: unknown vote metric %q", common.ErrValidation, s)
}
