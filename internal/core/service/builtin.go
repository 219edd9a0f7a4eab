package service

import "github.com/skylift/resourcekit/internal/core/domain"

// BuiltinDescriptors returns the resource variants the layer ships with.
// Identifier order follows the service's own addressing: an Object is
// keyed by its bucket first, then its key.
func BuiltinDescriptors() []domain.Descriptor {
	return []domain.Descriptor{
		{Name: "Bucket", ServiceName: domain.ServiceS3, Identifiers: []string{"name"}},
		{Name: "Object", ServiceName: domain.ServiceS3, Identifiers: []string{"bucket_name", "key"}},
		{Name: "ObjectVersion", ServiceName: domain.ServiceS3, Identifiers: []string{"bucket_name", "object_key", "id"}},
		{Name: "Instance", ServiceName: domain.ServiceEC2, Identifiers: []string{"id"}},
		{Name: "Vpc", ServiceName: domain.ServiceEC2, Identifiers: []string{"id"}},
		{Name: "Subnet", ServiceName: domain.ServiceEC2, Identifiers: []string{"id"}},
		{Name: "SecurityGroup", ServiceName: domain.ServiceEC2, Identifiers: []string{"id"}},
		{Name: "KeyPair", ServiceName: domain.ServiceEC2, Identifiers: []string{"name"}},
	}
}

// RegisterBuiltins loads every built-in descriptor into the registry.
func RegisterBuiltins(registry *DescriptorRegistry) error {
	for _, desc := range BuiltinDescriptors() {
		if err := registry.Register(desc); err != nil {
			return err
		}
	}
	return nil
}
