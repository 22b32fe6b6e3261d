package recorder

import (
	"errors"

	"RetailRadar/internal/store"
)

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordSnapshot(_ *store.Result) error { return nil }

func (n *NoopRecorder) LoadSnapshot() (*store.Result, error) {
	return nil, errors.New("no snapshot store configured")
}

func (n *NoopRecorder) Close() error { return nil }
