package pricing

import "time"

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordQuote(string, bool, time.Duration) {}
func (n *NoopMetricsCollector) RecordCacheHit(string)                   {}
func (n *NoopMetricsCollector) RecordCacheMiss(string)                  {}
func (n *NoopMetricsCollector) RecordError(string, string)              {}
