package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingOutputFile is returned when a projection needs the output file of a group that has none.
	ErrMissingOutputFile = zerr.New("file group has no output file")

	// ErrConfigurationNotFound is returned when looking up a configuration name that was never registered.
	ErrConfigurationNotFound = zerr.New("configuration not found")

	// ErrGroupNotFound is returned when a requested file group is not declared in a configuration.
	ErrGroupNotFound = zerr.New("group not found")

	// ErrDeclarationNotFound is returned when no declaration file exists at the given path or above it.
	ErrDeclarationNotFound = zerr.New("declaration file not found")

	// ErrUnsupportedVersion is returned when a declaration file uses an unknown schema version.
	ErrUnsupportedVersion = zerr.New("unsupported declaration version")

	// ErrInvalidDeclaration is returned when a declaration file is structurally invalid.
	ErrInvalidDeclaration = zerr.New("invalid declaration")

	// ErrUnsupportedFormat is returned for unknown declaration or document formats.
	ErrUnsupportedFormat = zerr.New("unsupported format")

	// ErrMissingSources is returned when member files of a configuration do not exist on disk.
	ErrMissingSources = zerr.New("missing source files")
)
