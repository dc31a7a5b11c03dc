// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/stitch/internal/core/domain"

// Emitter turns a configuration into a task-runner document.
//
//go:generate go run go.uber.org/mock/mockgen -source=emitter.go -destination=mocks/mock_emitter.go -package=mocks
type Emitter interface {
	// Emit assembles the document for cfg. It does not modify cfg.
	Emit(cfg *domain.Configuration) (*domain.Document, error)

	// Encode serializes doc in the given format.
	Encode(doc *domain.Document, format domain.Format) ([]byte, error)
}
