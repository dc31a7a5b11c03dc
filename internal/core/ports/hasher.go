package ports

// Fingerprinter computes content fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Fingerprinter interface {
	// Fingerprint returns a stable hex digest of data.
	Fingerprint(data []byte) string
}
