package analytics

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Usage aggregates chat endpoint outcomes since process start.
type Usage struct {
	Total       int            `json:"total"`
	Completed   int            `json:"completed"`
	Failed      int            `json:"failed"`
	RateLimited int            `json:"rate_limited"`
	ByPersona   map[string]int `json:"by_persona"`
}

// Collector counts request outcomes. Safe for concurrent use.
type Collector struct {
	mu      sync.Mutex
	started time.Time
	usage   Usage
}

func NewCollector() *Collector {
	return &Collector{
		started: time.Now().UTC(),
		usage:   Usage{ByPersona: make(map[string]int)},
	}
}

// Completion records a successful proxy call for the resolved persona.
func (c *Collector) Completion(personaID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.usage.Total++
	c.usage.Completed++
	c.usage.ByPersona[personaID]++
}

// Failure records a request that ended in the fixed 500 response.
func (c *Collector) Failure() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.usage.Total++
	c.usage.Failed++
}

// Denied records a request rejected by the rate limiter.
func (c *Collector) Denied() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.usage.Total++
	c.usage.RateLimited++
}

// Snapshot returns a copy of the current counters.
func (c *Collector) Snapshot() Usage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.usage
	out.ByPersona = make(map[string]int, len(c.usage.ByPersona))
	for k, v := range c.usage.ByPersona {
		out.ByPersona[k] = v
	}
	return out
}

// Summary renders a human-readable usage report for the daily log entry.
func (c *Collector) Summary() string {
	u := c.Snapshot()

	c.mu.Lock()
	started := c.started
	c.mu.Unlock()

	s := fmt.Sprintf(`Persona AI usage since %s:
- Requests: %d
- Completions: %d
- Failures: %d
- Rate limited: %d
`, started.Format(time.RFC3339), u.Total, u.Completed, u.Failed, u.RateLimited)

	if len(u.ByPersona) > 0 {
		ids := make([]string, 0, len(u.ByPersona))
		for id := range u.ByPersona {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		s += "Messages by persona:\n"
		for _, id := range ids {
			s += fmt.Sprintf("- %s: %d\n", id, u.ByPersona[id])
		}
	}
	return s
}
