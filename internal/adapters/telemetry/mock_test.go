package telemetry_test

import (
	"sync"
	"time"
)

// mockRenderer is a simple test double for ports.Renderer.
type mockRenderer struct {
	mu            sync.Mutex
	planCalls     int
	startCalls    int
	completeCalls int
	lastTarget    string
	lastOrigin    string
	lastErr       error
}

func (m *mockRenderer) Start() error { return nil }
func (m *mockRenderer) Stop() error  { return nil }
func (m *mockRenderer) Wait() error  { return nil }

func (m *mockRenderer) OnPlanEmit(_ []string, _ string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.planCalls++
}

func (m *mockRenderer) OnResolveStart(_, _ string, _ time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startCalls++
}

func (m *mockRenderer) OnResolveComplete(_ string, _ time.Time, target, origin string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completeCalls++
	m.lastTarget = target
	m.lastOrigin = origin
	m.lastErr = err
}
