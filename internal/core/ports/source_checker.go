package ports

// SourceChecker verifies that declared member files exist.
//
//go:generate go run go.uber.org/mock/mockgen -source=source_checker.go -destination=mocks/mock_source_checker.go -package=mocks
type SourceChecker interface {
	// Missing returns the paths or glob patterns that match no file below root.
	Missing(root string, paths []string) ([]string, error)
}
