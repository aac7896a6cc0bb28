package metrics

// Entity labels used by the business counters
const (
	EntityUser      = "user"
	EntityWorkspace = "workspace"
	EntityBoard     = "board"
	EntityGroup     = "group"
	EntityStatus    = "status"
	EntityTask      = "task"
)

// IncrementCreated counts a successful create of entity
func (m *Metrics) IncrementCreated(entity string) {
	m.safeExecute("IncrementCreated", func() {
		m.EntityCreatedTotal.WithLabelValues(entity).Inc()
	})
}

// AddCascadeDeleted counts child rows removed while deleting a parent
func (m *Metrics) AddCascadeDeleted(entity string, n int64) {
	if n <= 0 {
		return
	}
	m.safeExecute("AddCascadeDeleted", func() {
		m.CascadeDeletedTotal.WithLabelValues(entity).Add(float64(n))
	})
}

// AddOrphansSwept counts rows removed by the orphan sweep
func (m *Metrics) AddOrphansSwept(entity string, n int64) {
	if n <= 0 {
		return
	}
	m.safeExecute("AddOrphansSwept", func() {
		m.OrphansSweptTotal.WithLabelValues(entity).Add(float64(n))
	})
}

// RecordAuthAttempt counts a register or login outcome
func (m *Metrics) RecordAuthAttempt(operation string, success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	m.safeExecute("RecordAuthAttempt", func() {
		m.AuthAttemptsTotal.WithLabelValues(operation, result).Inc()
	})
}

// SetUsersTotal sets total users gauge
func (m *Metrics) SetUsersTotal(count int64) {
	m.safeExecute("SetUsersTotal", func() {
		m.UsersTotal.Set(float64(count))
	})
}

// SetWorkspacesTotal sets total workspaces gauge
func (m *Metrics) SetWorkspacesTotal(count int64) {
	m.safeExecute("SetWorkspacesTotal", func() {
		m.WorkspacesTotal.Set(float64(count))
	})
}

// SetBoardsTotal sets total boards gauge
func (m *Metrics) SetBoardsTotal(count int64) {
	m.safeExecute("SetBoardsTotal", func() {
		m.BoardsTotal.Set(float64(count))
	})
}

// SetTasksTotal replaces the per-priority task gauges
func (m *Metrics) SetTasksTotal(byPriority map[string]int64) {
	m.safeExecute("SetTasksTotal", func() {
		m.TasksTotal.Reset()
		for priority, count := range byPriority {
			m.TasksTotal.WithLabelValues(priority).Set(float64(count))
		}
	})
}
