package transaction

import "github.com/shopspring/decimal"

// MetricsCollector receives transaction processing metrics.
type MetricsCollector interface {
	RecordApplied(amount decimal.Decimal)
	RecordError(operation, reason string)
}

// NoopMetricsCollector discards all metrics.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordApplied(decimal.Decimal) {}
func (NoopMetricsCollector) RecordError(string, string)    {}
