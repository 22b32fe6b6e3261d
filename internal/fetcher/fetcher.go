package fetcher

import "context"

// Fetcher retrieves the raw text of one source file by name.
type Fetcher interface {
	Fetch(ctx context.Context, file string) (string, error)
	Name() string
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Files map[string]string
	Err   error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) Fetch(_ context.Context, file string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Files[file], nil
}
