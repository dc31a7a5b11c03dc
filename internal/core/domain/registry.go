package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// DefaultConfigurationName is used when neither the caller nor the declaration names one.
const DefaultConfigurationName = "default"

// Registry maps configuration names to configurations.
// It is populated once during loading and read afterwards.
type Registry struct {
	configs     map[string]*Configuration
	order       []string
	defaultName string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		configs: make(map[string]*Configuration),
	}
}

// Register creates an empty configuration under name, replacing any earlier one.
func (r *Registry) Register(name string) *Configuration {
	if _, ok := r.configs[name]; !ok {
		r.order = append(r.order, name)
	}
	c := NewConfiguration(name)
	r.configs[name] = c
	return c
}

// Use returns the configuration registered under name.
// It fails with ErrConfigurationNotFound for unknown names.
func (r *Registry) Use(name string) (*Configuration, error) {
	c, ok := r.configs[name]
	if !ok {
		return nil, zerr.With(zerr.Wrap(ErrConfigurationNotFound, "lookup failed"), "configuration", name)
	}
	return c, nil
}

// Names returns the registered names in first-registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// SetDefault sets the name Default returns.
func (r *Registry) SetDefault(name string) {
	r.defaultName = name
}

// Default returns the default configuration name.
func (r *Registry) Default() string {
	if r.defaultName == "" {
		return DefaultConfigurationName
	}
	return r.defaultName
}
