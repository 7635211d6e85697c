package service

import (
	"fmt"
	"sync"

	"github.com/olusolaa/stack-tail/internal/core/domain"
	"github.com/olusolaa/stack-tail/internal/core/ports"
	"github.com/olusolaa/stack-tail/internal/errors"
)

// SourceRegistry holds the available sources so the mode flag is resolved
// once at startup instead of inside the poll loop.
type SourceRegistry struct {
	mu      sync.RWMutex
	sources map[domain.SourceKind]ports.Source
}

func NewSourceRegistry() *SourceRegistry {
	return &SourceRegistry{
		sources: make(map[domain.SourceKind]ports.Source),
	}
}

func (r *SourceRegistry) RegisterSource(source ports.Source) error {
	if source == nil {
		return errors.New(errors.CodeInternal, "attempted to register nil source")
	}
	kind := source.Kind()
	if kind == "" {
		return errors.New(errors.CodeInternal, "source kind cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sources[kind]; exists {
		return errors.New(errors.CodeInternal, fmt.Sprintf("source kind '%s' already registered", kind))
	}
	r.sources[kind] = source
	return nil
}

func (r *SourceRegistry) GetSource(kind domain.SourceKind) (ports.Source, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	source, exists := r.sources[kind]
	if !exists {
		return nil, errors.New(errors.CodeConfigValidation, fmt.Sprintf("source kind '%s' not registered", kind))
	}
	return source, nil
}
