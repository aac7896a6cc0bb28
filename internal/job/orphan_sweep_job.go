package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"taskflow-api/internal/metrics"
)

// OrphanDeleter removes rows whose parent board no longer exists
type OrphanDeleter interface {
	DeleteOrphans(ctx context.Context) (int64, error)
}

// OrphanSweepJob removes groups, statuses and tasks left behind when a
// workspace is deleted. Workspace deletion only removes boards, so their
// children stay in the store until this job runs.
type OrphanSweepJob struct {
	targets []sweepTarget
	metrics *metrics.Metrics
	timeout time.Duration
	logger  *zap.Logger
}

type sweepTarget struct {
	entity  string
	deleter OrphanDeleter
}

// NewOrphanSweepJob creates a new OrphanSweepJob instance
func NewOrphanSweepJob(
	tasks OrphanDeleter,
	groups OrphanDeleter,
	statuses OrphanDeleter,
	m *metrics.Metrics,
	logger *zap.Logger,
) *OrphanSweepJob {
	return &OrphanSweepJob{
		// tasks go first so no task briefly points at a swept group or status
		targets: []sweepTarget{
			{entity: metrics.EntityTask, deleter: tasks},
			{entity: metrics.EntityGroup, deleter: groups},
			{entity: metrics.EntityStatus, deleter: statuses},
		},
		metrics: m,
		timeout: 5 * time.Minute,
		logger:  logger,
	}
}

// Run executes one sweep
func (j *OrphanSweepJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	j.Sweep(ctx)
}

// Sweep deletes orphans of every entity and returns the counts removed.
// A failing entity is logged and the remaining ones are still swept.
func (j *OrphanSweepJob) Sweep(ctx context.Context) map[string]int64 {
	j.logger.Info("Starting orphan sweep")

	swept := make(map[string]int64, len(j.targets))
	for _, t := range j.targets {
		n, err := t.deleter.DeleteOrphans(ctx)
		if err != nil {
			j.logger.Error("Failed to sweep orphans",
				zap.String("entity", t.entity),
				zap.Error(err),
			)
			continue
		}
		swept[t.entity] = n
		j.metrics.AddOrphansSwept(t.entity, n)
	}

	j.logger.Info("Orphan sweep completed",
		zap.Int64("tasks_deleted", swept[metrics.EntityTask]),
		zap.Int64("groups_deleted", swept[metrics.EntityGroup]),
		zap.Int64("statuses_deleted", swept[metrics.EntityStatus]),
	)
	return swept
}
