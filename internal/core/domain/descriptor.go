package domain

import (
	"strings"

	"github.com/skylift/resourcekit/internal/errors"
)

// Descriptor describes one resource variant: the variant's name, which
// remote service it belongs to, and the ordered identifier names that
// uniquely key an instance. Identifier order defines positional binding
// order during construction.
//
// Descriptors are immutable values shared by every instance of a variant;
// all mutable per-instance state (client reference, cached data) lives on
// the Resource itself, so two instances can never alias each other's
// metadata.
type Descriptor struct {
	Name        string   `validate:"required"`
	ServiceName string   `validate:"required"`
	Identifiers []string `validate:"required,min=1"`
}

func (d Descriptor) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.New(errors.CodeDescriptorInvalid, "descriptor name cannot be empty")
	}
	if strings.TrimSpace(d.ServiceName) == "" {
		return errors.Newf(errors.CodeDescriptorInvalid, "descriptor '%s': service name cannot be empty", d.Name)
	}
	if len(d.Identifiers) == 0 {
		return errors.Newf(errors.CodeDescriptorInvalid, "descriptor '%s': at least one identifier is required", d.Name)
	}

	seen := make(map[string]struct{}, len(d.Identifiers))
	for _, name := range d.Identifiers {
		if strings.TrimSpace(name) == "" {
			return errors.Newf(errors.CodeDescriptorInvalid, "descriptor '%s': identifier names cannot be empty", d.Name)
		}
		if name == ClientArg {
			return errors.Newf(errors.CodeDescriptorInvalid, "descriptor '%s': identifier name '%s' is reserved", d.Name, ClientArg)
		}
		if _, dup := seen[name]; dup {
			return errors.Newf(errors.CodeDescriptorInvalid, "descriptor '%s': duplicate identifier '%s'", d.Name, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

func (d Descriptor) HasIdentifier(name string) bool {
	for _, id := range d.Identifiers {
		if id == name {
			return true
		}
	}
	return false
}
