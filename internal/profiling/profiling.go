// Package profiling accumulates wall-clock time per named section over one
// tick, so slow ticks can report where the time went.
package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

var (
	mu        sync.Mutex
	tickTotal = make(map[string]time.Duration)
	tickCalls = make(map[string]int)
)

// Track starts timing name and returns the function that stops it.
// Usage: defer profiling.Track("meshing.BuildChunkMesh")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		tickTotal[name] += d
		tickCalls[name]++
		mu.Unlock()
	}
}

// ResetFrame clears the totals. Call it at the start of each tick.
func ResetFrame() {
	mu.Lock()
	clear(tickTotal)
	clear(tickCalls)
	mu.Unlock()
}

// Sample is one section's accumulated time within the current tick.
type Sample struct {
	Name  string
	Total time.Duration
	Calls int
}

// Snapshot returns the current tick's samples, slowest first.
func Snapshot() []Sample {
	mu.Lock()
	out := make([]Sample, 0, len(tickTotal))
	for name, d := range tickTotal {
		out = append(out, Sample{Name: name, Total: d, Calls: tickCalls[name]})
	}
	mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// TopN formats the n slowest sections, e.g.
// "world.Streamer.Update:4.2ms(1), meshing.BuildChunkMesh:2.1ms(8)".
func TopN(n int) string {
	samples := Snapshot()
	if n > len(samples) {
		n = len(samples)
	}
	parts := make([]string, 0, n)
	for _, s := range samples[:n] {
		ms := float64(s.Total.Microseconds()) / 1000
		parts = append(parts, fmt.Sprintf("%s:%.1fms(%d)", s.Name, ms, s.Calls))
	}
	return strings.Join(parts, ", ")
}
