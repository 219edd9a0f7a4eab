package service

import (
	"fmt"
	"sort"
	"sync"

	"github.com/skylift/resourcekit/internal/core/domain"
	"github.com/skylift/resourcekit/internal/errors"
)

// DescriptorRegistry is the metadata template provider: it holds the
// immutable descriptor for every resource variant, keyed by variant name.
// Descriptors must be registered before any instance of the variant is
// constructed.
type DescriptorRegistry struct {
	mu          sync.RWMutex
	descriptors map[string]domain.Descriptor
}

func NewDescriptorRegistry() *DescriptorRegistry {
	return &DescriptorRegistry{
		descriptors: make(map[string]domain.Descriptor),
	}
}

func (r *DescriptorRegistry) Register(desc domain.Descriptor) error {
	if err := desc.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.descriptors[desc.Name]; exists {
		return errors.New(errors.CodeInternal, fmt.Sprintf("resource variant '%s' already registered", desc.Name))
	}
	r.descriptors[desc.Name] = desc
	return nil
}

func (r *DescriptorRegistry) Get(name string) (domain.Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	desc, exists := r.descriptors[name]
	if !exists {
		return domain.Descriptor{}, errors.New(errors.CodeVariantNotFound, fmt.Sprintf("resource variant '%s' not registered", name))
	}
	return desc, nil
}

// Names returns the registered variant names, sorted for stable output.
func (r *DescriptorRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.descriptors))
	for name := range r.descriptors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
