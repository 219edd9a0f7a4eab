package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/skylift/resourcekit/internal/errors"
)

// ClientArg is the reserved named-argument key for supplying a low-level
// client at construction time. It can never be declared as an identifier.
const ClientArg = "client"

// Args carries the construction arguments for a resource instance.
// Positional values bind to identifiers in declared order; Named values
// bind by identifier name, with the reserved ClientArg key routing a
// caller-supplied client. A name supplied both positionally and by name
// takes the named value.
type Args struct {
	Positional []any
	Named      map[string]any
}

// Resource is an identifier-keyed wrapper around a low-level service
// client. Instances are built by New and are valid for their whole
// lifetime: every declared identifier is bound and non-nil, and a client
// reference is resolved. Identifier values are treated as immutable after
// construction; the client reference and data cache are the only mutable
// slots and are strictly per-instance.
type Resource struct {
	desc   Descriptor
	values map[string]any
	client Client
	data   map[string]any
}

// New constructs a resource instance of the given variant.
//
// The client is resolved first: a non-nil Named[ClientArg] is stored
// directly, otherwise the factory is invoked with the variant's service
// name. Positional values then bind in identifier order, named values
// bind by name, and finally every declared identifier must have ended up
// non-nil. Any violation aborts construction; no partial instance is
// returned.
func New(ctx context.Context, desc Descriptor, factory ClientFactory, args Args) (*Resource, error) {
	r := &Resource{
		desc:   desc,
		values: make(map[string]any, len(desc.Identifiers)),
	}

	if supplied, ok := args.Named[ClientArg]; ok && supplied != nil {
		r.client = supplied
	} else {
		if factory == nil {
			return nil, errors.Newf(errors.CodeClientFactoryError,
				"resource '%s': no client supplied and no default-client factory available for service '%s'",
				desc.Name, desc.ServiceName)
		}
		client, err := factory.ClientFor(ctx, desc.ServiceName)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeClientFactoryError,
				fmt.Sprintf("resource '%s': default client for service '%s' could not be created", desc.Name, desc.ServiceName))
		}
		r.client = client
	}

	if len(args.Positional) > len(desc.Identifiers) {
		return nil, errors.Newf(errors.CodeTooManyPositionalArgs,
			"resource '%s' takes at most %d positional values, got %d",
			desc.Name, len(desc.Identifiers), len(args.Positional))
	}
	for i, value := range args.Positional {
		r.values[desc.Identifiers[i]] = value
	}

	for name, value := range args.Named {
		if name == ClientArg {
			continue
		}
		if !desc.HasIdentifier(name) {
			return nil, errors.Newf(errors.CodeUnknownArgument,
				"unknown argument '%s' for resource '%s'", name, desc.Name)
		}
		r.values[name] = value
	}

	for _, name := range desc.Identifiers {
		if r.values[name] == nil {
			return nil, errors.Newf(errors.CodeMissingIdentifier,
				"required identifier '%s' not set for resource '%s' (service '%s')",
				name, desc.Name, desc.ServiceName)
		}
	}

	return r, nil
}

func (r *Resource) Name() string        { return r.desc.Name }
func (r *Resource) ServiceName() string { return r.desc.ServiceName }

func (r *Resource) Descriptor() Descriptor { return r.desc }

// Identifiers returns the identifier names in declared order.
func (r *Resource) Identifiers() []string {
	out := make([]string, len(r.desc.Identifiers))
	copy(out, r.desc.Identifiers)
	return out
}

func (r *Resource) Identifier(name string) (any, bool) {
	value, ok := r.values[name]
	return value, ok
}

// Client returns the bound low-level client. The resource shares the
// reference; it does not own the client's lifecycle.
func (r *Resource) Client() Client { return r.client }

// SetClient swaps this instance's client reference. Sibling instances of
// the same variant are unaffected.
func (r *Resource) SetClient(client Client) { r.client = client }

// Data is the hydration cache slot. The construction core never reads it.
func (r *Resource) Data() map[string]any {
	if r.data == nil {
		r.data = make(map[string]any)
	}
	return r.data
}

func (r *Resource) SetData(key string, value any) {
	r.Data()[key] = value
}

// String renders "Name(id1=v1, id2=v2)" with identifiers in declared
// order. Informational only; no parsing guarantee.
func (r *Resource) String() string {
	parts := make([]string, 0, len(r.desc.Identifiers))
	for _, name := range r.desc.Identifiers {
		parts = append(parts, fmt.Sprintf("%s=%#v", name, r.values[name]))
	}
	return fmt.Sprintf("%s(%s)", r.desc.Name, strings.Join(parts, ", "))
}

// Equal reports value equality: the variant names must match exactly and
// every identifier value must compare equal pairwise. The client
// reference and data cache never participate. The comparison walks the
// receiver's declared identifiers and assumes other carries the same
// shape; it is deliberately not defensive — a nil other or identifier
// values that are not comparable fail the way the runtime fails.
func (r *Resource) Equal(other *Resource) bool {
	if r.desc.Name != other.desc.Name {
		return false
	}
	for _, name := range r.desc.Identifiers {
		if r.values[name] != other.values[name] {
			return false
		}
	}
	return true
}

// IdentityKey returns a deterministic key over the same variant name and
// identifier tuple Equal compares, so callers can key maps or sets by
// resource value. Two resources that are Equal always produce the same
// key.
func (r *Resource) IdentityKey() string {
	var b strings.Builder
	b.WriteString(r.desc.Name)
	for _, name := range r.desc.Identifiers {
		fmt.Fprintf(&b, "|%s=%#v", name, r.values[name])
	}
	return b.String()
}
