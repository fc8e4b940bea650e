package cache

import "time"

// Namespace identifies one of the fixed cache stores. Each namespace is a
// separate store so entries from different operations can never collide.
type Namespace string

const (
	NamespaceTranslation Namespace = "translation"
	NamespaceResponse    Namespace = "response"
	NamespaceDocument    Namespace = "document"
)

// Namespaces lists every known namespace; used to build the per-namespace stores.
var Namespaces = []Namespace{NamespaceTranslation, NamespaceResponse, NamespaceDocument}

// Stats is a snapshot of the cache counters. Counters only grow until an
// explicit Clear.
type Stats struct {
	Hits       int64         `json:"hits"`
	Misses     int64         `json:"misses"`
	CallsSaved int64         `json:"calls_saved"`
	TimeSaved  time.Duration `json:"time_saved"`
}

// HitRate returns the hit percentage over all lookups, 0 when nothing was looked up.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}
