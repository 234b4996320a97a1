package model

import (
	"sync"
)

// Usage tracks token usage for a model.
type Usage struct {
	InputTokens  int
	OutputTokens int
	Requests     int
}

// TotalTokens returns the total tokens used.
func (u Usage) TotalTokens() int {
	return u.InputTokens + u.OutputTokens
}

// Pricing holds per-million-token pricing for a model family.
type Pricing struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// Prices contains pricing for known model families.
var Prices = map[Name]Pricing{
	Opus:   {InputPerMillion: 15.0, OutputPerMillion: 75.0},
	Sonnet: {InputPerMillion: 3.0, OutputPerMillion: 15.0},
	Haiku:  {InputPerMillion: 0.25, OutputPerMillion: 1.25},
}

// CostTracker accumulates token usage and estimated costs per model
// family. Unlike the core prompt values it is shared mutable state,
// so it carries its own lock and is safe for concurrent use.
type CostTracker struct {
	mu     sync.RWMutex
	totals map[Name]Usage
}

// NewCostTracker creates a new cost tracker.
func NewCostTracker() *CostTracker {
	return &CostTracker{
		totals: make(map[Name]Usage),
	}
}

// Record adds a usage observation for the given model.
// The model name is normalized to its family first.
func (t *CostTracker) Record(model string, input, output int) {
	name := Normalize(model)

	t.mu.Lock()
	defer t.mu.Unlock()

	u := t.totals[name]
	u.InputTokens += input
	u.OutputTokens += output
	u.Requests++
	t.totals[name] = u
}

// UsageFor returns the accumulated usage for a model family.
func (t *CostTracker) UsageFor(model string) Usage {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.totals[Normalize(model)]
}

// EstimatedCostUSD returns the estimated total cost across all models,
// in US dollars. Models without a pricing entry contribute zero.
func (t *CostTracker) EstimatedCostUSD() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var total float64
	for name, usage := range t.totals {
		pricing, ok := Prices[name]
		if !ok {
			continue
		}
		total += float64(usage.InputTokens) / 1e6 * pricing.InputPerMillion
		total += float64(usage.OutputTokens) / 1e6 * pricing.OutputPerMillion
	}
	return total
}
