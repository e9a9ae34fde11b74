package engine

import "sync"

// MockClock provides a controllable tick source for testing
// SleepUntil jumps straight to the target
type MockClock struct {
	mu     sync.RWMutex
	ticks  uint32
	sleeps int
}

// NewMockClock creates a mock clock at the given tick
func NewMockClock(start uint32) *MockClock {
	return &MockClock{ticks: start}
}

func (m *MockClock) Ticks() uint32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ticks
}

func (m *MockClock) SleepUntil(target uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !TicksPassed(m.ticks, target) {
		m.ticks = target
		m.sleeps++
	}
}

// Advance moves the clock forward by ms
func (m *MockClock) Advance(ms uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ticks += ms
}

// Set moves the clock to an absolute tick
func (m *MockClock) Set(ticks uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ticks = ticks
}

// Sleeps counts SleepUntil calls that actually waited
func (m *MockClock) Sleeps() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sleeps
}
