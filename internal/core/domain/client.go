package domain

import "context"

// Client is an opaque low-level service client capability. The resource
// layer stores and hands it back to callers but never invokes operations
// on it; callers assert to the concrete client type they expect.
type Client = any

// ClientFactory produces a ready-to-use low-level client for a service
// when a resource is constructed without one. Implementations own client
// lifecycle and credential resolution; latency and thread-safety of
// ClientFor are their responsibility.
type ClientFactory interface {
	ClientFor(ctx context.Context, serviceName string) (Client, error)
}
