package ports

import (
	"context"

	"github.com/skylift/resourcekit/internal/core/domain"
)

type Reporter interface {
	Report(ctx context.Context, resources []*domain.Resource) error
}
