package job

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Collector refreshes gauges from the store
type Collector interface {
	Collect(ctx context.Context)
}

// MetricsJob periodically refreshes the business metrics
type MetricsJob struct {
	collector Collector
	timeout   time.Duration
	logger    *zap.Logger
}

// NewMetricsJob creates a new MetricsJob instance
func NewMetricsJob(collector Collector, logger *zap.Logger) *MetricsJob {
	return &MetricsJob{
		collector: collector,
		timeout:   30 * time.Second,
		logger:    logger,
	}
}

// Run executes one collection
func (j *MetricsJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	j.collector.Collect(ctx)
	j.logger.Debug("Business metrics collected", zap.Duration("duration", time.Since(start)))
}
