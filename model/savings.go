package model

import (
	"sync"
)

// Savings tracks token savings for a model.
type Savings struct {
	OriginalTokens  int
	OptimizedTokens int
	Calls           int
}

// Add adds the given savings to this record.
func (s *Savings) Add(other Savings) {
	s.OriginalTokens += other.OriginalTokens
	s.OptimizedTokens += other.OptimizedTokens
	s.Calls += other.Calls
}

// Saved returns the total tokens removed by optimization.
func (s *Savings) Saved() int {
	return s.OriginalTokens - s.OptimizedTokens
}

// SavingsTracker accumulates optimization results across models.
// Safe for concurrent use.
type SavingsTracker struct {
	mu     sync.RWMutex
	totals map[ModelName]Savings
}

// NewSavingsTracker creates a new savings tracker.
func NewSavingsTracker() *SavingsTracker {
	return &SavingsTracker{
		totals: make(map[ModelName]Savings),
	}
}

// Record adds one optimization result for the given model.
func (t *SavingsTracker) Record(model ModelName, original, optimized int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.totals[model]
	s.OriginalTokens += original
	s.OptimizedTokens += optimized
	s.Calls++
	t.totals[model] = s
}

// Savings returns the accumulated savings for a specific model.
func (t *SavingsTracker) Savings(model ModelName) Savings {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.totals[model]
}

// Total returns the accumulated savings across all models.
func (t *SavingsTracker) Total() Savings {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var total Savings
	for _, s := range t.totals {
		total.Add(s)
	}
	return total
}

// Reset clears all accumulated totals.
func (t *SavingsTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.totals = make(map[ModelName]Savings)
}
