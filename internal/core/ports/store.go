package ports

// FingerprintStore remembers the fingerprint of the last document written per output file.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type FingerprintStore interface {
	// Get returns the stored fingerprint for key, or "" if there is none.
	Get(key string) (string, error)

	// Put stores the fingerprint for key.
	Put(key, fingerprint string) error
}
