package observability

import (
	"sync"
	"sync/atomic"
)

type StatsSnapshot struct {
	RequestsServed    uint64            `json:"requests_served"`
	OffersListed      uint64            `json:"offers_listed"`
	FetchesTotal      uint64            `json:"fetches_total"`
	ErrorsTotal       uint64            `json:"errors_total"`
	FetchSecondsAvg   float64           `json:"fetch_seconds_avg"`
	RequestsByRoute   map[string]uint64 `json:"requests_by_route,omitempty"`
	ErrorsByType      map[string]uint64 `json:"errors_by_type,omitempty"`
	ErrorsByComponent map[string]uint64 `json:"errors_by_component,omitempty"`
}

var (
	requestsServed uint64
	offersListed   uint64
	fetchesTotal   uint64
	errorsTotal    uint64

	fetchCount uint64
	fetchNanos uint64

	statsMu           sync.Mutex
	requestsByRoute   = map[string]uint64{}
	errorsByType      = map[string]uint64{}
	errorsByComponent = map[string]uint64{}
)

func IncRequest(route string) {
	if route == "" {
		route = "unknown"
	}
	atomic.AddUint64(&requestsServed, 1)
	statsMu.Lock()
	requestsByRoute[route]++
	statsMu.Unlock()
}

func AddOffersListed(n int) {
	if n <= 0 {
		return
	}
	atomic.AddUint64(&offersListed, uint64(n))
}

func IncFetch() {
	atomic.AddUint64(&fetchesTotal, 1)
}

func ObserveFetchDuration(seconds float64) {
	if seconds <= 0 {
		return
	}
	atomic.AddUint64(&fetchCount, 1)
	atomic.AddUint64(&fetchNanos, uint64(seconds*1e9))
}

func IncError(errType, component string) {
	if errType == "" {
		errType = "unknown"
	}
	if component == "" {
		component = "unknown"
	}
	atomic.AddUint64(&errorsTotal, 1)
	statsMu.Lock()
	errorsByType[errType]++
	errorsByComponent[component]++
	statsMu.Unlock()
}

func Snapshot() StatsSnapshot {
	statsMu.Lock()
	routesCopy := copyMap(requestsByRoute)
	errorsTypeCopy := copyMap(errorsByType)
	errorsComponentCopy := copyMap(errorsByComponent)
	statsMu.Unlock()

	count := atomic.LoadUint64(&fetchCount)
	avg := 0.0
	if count > 0 {
		avg = float64(atomic.LoadUint64(&fetchNanos)) / float64(count) / 1e9
	}

	return StatsSnapshot{
		RequestsServed:    atomic.LoadUint64(&requestsServed),
		OffersListed:      atomic.LoadUint64(&offersListed),
		FetchesTotal:      atomic.LoadUint64(&fetchesTotal),
		ErrorsTotal:       atomic.LoadUint64(&errorsTotal),
		FetchSecondsAvg:   avg,
		RequestsByRoute:   routesCopy,
		ErrorsByType:      errorsTypeCopy,
		ErrorsByComponent: errorsComponentCopy,
	}
}

func copyMap(src map[string]uint64) map[string]uint64 {
	if len(src) == 0 {
		return map[string]uint64{}
	}
	out := make(map[string]uint64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
