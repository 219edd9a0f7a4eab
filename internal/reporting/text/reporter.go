package text

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/skylift/resourcekit/internal/core/domain"
	"github.com/skylift/resourcekit/internal/core/ports"
)

const ReporterTypeText = "text"

type Config struct {
	NoColor bool `mapstructure:"no_color" yaml:"no_color"`
}

type Reporter struct {
	config Config
	writer io.Writer
	logger ports.Logger
}

func NewReporter(cfg Config, logger ports.Logger) (*Reporter, error) {
	return NewReporterTo(os.Stdout, cfg, logger)
}

func NewReporterTo(w io.Writer, cfg Config, logger ports.Logger) (*Reporter, error) {
	if cfg.NoColor || !isTerminal(os.Stdout) {
		color.NoColor = true
	}

	return &Reporter{
		config: cfg,
		writer: w,
		logger: logger,
	}, nil
}

func isTerminal(f *os.File) bool {
	stat, _ := f.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func (r *Reporter) Report(ctx context.Context, resources []*domain.Resource) error {
	if len(resources) == 0 {
		fmt.Fprintln(r.writer, "No resources to display.")
		return nil
	}

	nameColor := color.New(color.FgCyan, color.Bold)
	headerColor := color.New(color.Bold)

	tw := tabwriter.NewWriter(r.writer, 0, 4, 2, ' ', 0)
	for _, res := range resources {
		if ctx.Err() != nil {
			r.logger.Warnf(ctx, "Text report generation cancelled.")
			return ctx.Err()
		}

		fmt.Fprintf(tw, "%s\t%s\n", headerColor.Sprint("Resource:"), nameColor.Sprint(res.String()))
		fmt.Fprintf(tw, "  Variant:\t%s\n", res.Name())
		fmt.Fprintf(tw, "  Service:\t%s\n", res.ServiceName())
		for _, name := range res.Identifiers() {
			value, _ := res.Identifier(name)
			fmt.Fprintf(tw, "  %s:\t%v\n", name, value)
		}
		fmt.Fprintf(tw, "  Client:\t%s\n", clientStatus(res))
		fmt.Fprintln(tw)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write text report: %w", err)
	}

	r.logger.Debugf(ctx, "Text report generated for %d resource(s)", len(resources))
	return nil
}

func clientStatus(res *domain.Resource) string {
	if res.Client() != nil {
		return "bound"
	}
	return "none"
}
