package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy       string
	Goroutines     int
	Branches       int // Simulations per root column
	Roots          int
	Duration       time.Duration
	Simulations    int
	NodesAllocated int
	NodesReleased  int
	Reason         string // Why the column was chosen
}

type MoveMetric struct {
	Step   int
	Player string // Symbol
	Column int
	SearchMetric
}

type GameMetric struct {
	ID             string
	StartingPlayer string // Symbol
	Winner         string // Symbol, "" on a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(strategy string, goroutines, branches, roots int)
	AddSimulation()
	AddNodes(n int)
	ReleaseNodes(n int)
	SetReason(reason string)
	Complete() SearchMetric
}

type collector struct {
	strategy       string
	goroutines     int
	branches       int
	roots          int
	reason         string
	startTime      time.Time
	simulations    atomic.Int64
	nodesAllocated atomic.Int64
	nodesReleased  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new decision.
func (m *collector) Start(strategy string, goroutines, branches, roots int) {
	m.strategy = strategy
	m.goroutines = goroutines
	m.branches = branches
	m.roots = roots
	m.reason = ""
	m.startTime = time.Now()
	m.simulations.Store(0)
	m.nodesAllocated.Store(0)
	m.nodesReleased.Store(0)
}

func (m *collector) AddSimulation() {
	m.simulations.Add(1)
}

func (m *collector) AddNodes(n int) {
	m.nodesAllocated.Add(int64(n))
}

func (m *collector) ReleaseNodes(n int) {
	m.nodesReleased.Add(int64(n))
}

func (m *collector) SetReason(reason string) {
	m.reason = reason
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:       m.strategy,
		Goroutines:     m.goroutines,
		Branches:       m.branches,
		Roots:          m.roots,
		Duration:       time.Since(m.startTime),
		Simulations:    int(m.simulations.Load()),
		NodesAllocated: int(m.nodesAllocated.Load()),
		NodesReleased:  int(m.nodesReleased.Load()),
		Reason:         m.reason,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, goroutines, branches, roots int) {}
func (m *dummyCollector) AddSimulation()                                         {}
func (m *dummyCollector) AddNodes(n int)                                         {}
func (m *dummyCollector) ReleaseNodes(n int)                                     {}
func (m *dummyCollector) SetReason(reason string)                                {}
func (m *dummyCollector) Complete() SearchMetric                                 { return SearchMetric{} }
