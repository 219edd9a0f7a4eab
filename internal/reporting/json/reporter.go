package json

import (
	"context"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/skylift/resourcekit/internal/core/domain"
	"github.com/skylift/resourcekit/internal/core/ports"
)

const ReporterTypeJSON = "json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Config struct{}

type Reporter struct {
	config Config
	writer io.Writer
	logger ports.Logger
}

func NewReporter(cfg Config, logger ports.Logger) (*Reporter, error) {
	return NewReporterTo(os.Stdout, cfg, logger)
}

func NewReporterTo(w io.Writer, cfg Config, logger ports.Logger) (*Reporter, error) {
	return &Reporter{
		config: cfg,
		writer: w,
		logger: logger,
	}, nil
}

type jsonReport struct {
	Resources []jsonResource `json:"resources"`
}

type jsonResource struct {
	Name        string           `json:"name"`
	Service     string           `json:"service"`
	Identifiers []jsonIdentifier `json:"identifiers"`
	IdentityKey string           `json:"identity_key"`
	Display     string           `json:"display"`
}

// jsonIdentifier preserves declared identifier order, which a plain map
// would lose.
type jsonIdentifier struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

func (r *Reporter) Report(ctx context.Context, resources []*domain.Resource) error {
	report := jsonReport{Resources: make([]jsonResource, 0, len(resources))}

	for _, res := range resources {
		if ctx.Err() != nil {
			r.logger.Warnf(ctx, "JSON report generation cancelled.")
			return ctx.Err()
		}

		item := jsonResource{
			Name:        res.Name(),
			Service:     res.ServiceName(),
			IdentityKey: res.IdentityKey(),
			Display:     res.String(),
		}
		for _, name := range res.Identifiers() {
			value, _ := res.Identifier(name)
			item.Identifiers = append(item.Identifiers, jsonIdentifier{Name: name, Value: value})
		}
		report.Resources = append(report.Resources, item)
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		r.logger.Errorf(ctx, err, "Failed to encode JSON report")
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}

	r.logger.Debugf(ctx, "JSON report generated for %d resource(s)", len(report.Resources))
	return nil
}
