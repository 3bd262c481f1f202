package metrics

import (
	"time"
)

type DecisionMetric struct {
	Duration time.Duration
	Legal    int
}

type AgentConfig struct {
	Seed     uint64
	Fallback string
}

type Collector interface {
	Start()
	AddLegal(n int)
	Complete() DecisionMetric
}

type collector struct {
	startTime time.Time
	legal     int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.legal = 0
}

func (m *collector) AddLegal(n int) {
	m.legal += n
}

func (m *collector) Complete() DecisionMetric {
	return DecisionMetric{
		Duration: time.Since(m.startTime),
		Legal:    m.legal,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                   {}
func (m *dummyCollector) AddLegal(n int)           {}
func (m *dummyCollector) Complete() DecisionMetric { return DecisionMetric{} }
