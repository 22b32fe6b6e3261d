package recorder

import "RetailRadar/internal/store"

// Recorder persists the latest normalized datasets so charts can be rebuilt
// without refetching the sources.
type Recorder interface {
	// RecordSnapshot replaces the stored snapshot with the datasets that
	// loaded successfully in res.
	RecordSnapshot(res *store.Result) error
	// LoadSnapshot reconstructs a load result from the stored snapshot.
	LoadSnapshot() (*store.Result, error)
	Close() error
}
