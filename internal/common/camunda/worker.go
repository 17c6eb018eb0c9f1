// internal/common/camunda/worker.go
package camunda

import (
	"sync"

	"legal-workers/internal/common/config"
	"legal-workers/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// Middleware decorates a job handler, e.g. with tracing.
type Middleware func(taskType string, handler worker.JobHandler) worker.JobHandler

// Manager opens job workers and closes them together on shutdown.
type Manager struct {
	client     zbc.Client
	logger     logger.Logger
	middleware []Middleware

	mu      sync.Mutex
	workers map[string]worker.JobWorker
	order   []string
}

func NewManager(client zbc.Client, log logger.Logger, middleware ...Middleware) *Manager {
	return &Manager{
		client:     client,
		logger:     log,
		middleware: middleware,
		workers:    map[string]worker.JobWorker{},
	}
}

// Start opens a worker for taskType unless it is disabled or already open.
func (m *Manager) Start(taskType string, wcfg config.WorkerConfig, handler worker.JobHandler) bool {
	if !wcfg.Enabled {
		m.logger.Info("worker disabled", map[string]interface{}{"taskType": taskType})
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.workers[taskType]; exists {
		return false
	}

	for i := len(m.middleware) - 1; i >= 0; i-- {
		handler = m.middleware[i](taskType, handler)
	}

	jw := m.client.NewJobWorker().
		JobType(taskType).
		Handler(handler).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(config.GetDuration(wcfg.Timeout)).
		Open()

	m.workers[taskType] = jw
	m.order = append(m.order, taskType)

	m.logger.Info("worker started", map[string]interface{}{
		"taskType":      taskType,
		"maxJobsActive": wcfg.MaxJobsActive,
		"timeout_ms":    wcfg.Timeout,
	})
	return true
}

// TaskTypes lists the open workers in start order.
func (m *Manager) TaskTypes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Stop closes every worker and waits for in-flight jobs.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, taskType := range m.order {
		jw := m.workers[taskType]
		jw.Close()
		jw.AwaitClose()
		m.logger.Info("worker stopped", map[string]interface{}{"taskType": taskType})
	}
	m.workers = map[string]worker.JobWorker{}
	m.order = nil
}
