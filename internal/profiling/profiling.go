package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU timings keyed by "package.Operation".

var (
	mu     sync.Mutex
	totals = make(map[string]time.Duration)
	counts = make(map[string]int)
)

// Track returns a stop function that adds the elapsed time to name.
// Usage: defer profiling.Track("city.AdvanceFrame")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		totals[name] += d
		counts[name]++
		mu.Unlock()
	}
}

// ResetFrame clears the accumulated totals. Call once at the top of a frame.
func ResetFrame() {
	mu.Lock()
	clear(totals)
	clear(counts)
	mu.Unlock()
}

// Snapshot returns a copy of the current totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(totals))
	for k, v := range totals {
		out[k] = v
	}
	return out
}

// Calls returns how many times name was tracked since the last reset.
func Calls(name string) int {
	mu.Lock()
	defer mu.Unlock()
	return counts[name]
}

// SumWithPrefix totals every entry whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var sum time.Duration
	for k, v := range totals {
		if strings.HasPrefix(k, prefix) {
			sum += v
		}
	}
	return sum
}

// TopN formats the n slowest entries, e.g. "city.InitLayout:4.2ms, meshing.TriangulateFace:2.1ms(x54)".
func TopN(n int) string {
	mu.Lock()
	type entry struct {
		name  string
		dur   time.Duration
		calls int
	}
	list := make([]entry, 0, len(totals))
	for k, v := range totals {
		list = append(list, entry{k, v, counts[k]})
	}
	mu.Unlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for _, e := range list[:n] {
		s := fmt.Sprintf("%s:%.1fms", e.name, float64(e.dur.Microseconds())/1000)
		if e.calls > 1 {
			s += fmt.Sprintf("(x%d)", e.calls)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}
