package app

import (
	"fmt"
	"strings"

	"github.com/skylift/resourcekit/internal/errors"
)

// ParseNamedArgs converts "name=value" pairs from the command line into
// the named-argument map the construction contract takes. Values stay
// strings; identifier types are opaque to the layer anyway.
func ParseNamedArgs(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	named := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
			return nil, errors.New(errors.CodeConfigValidation,
				fmt.Sprintf("invalid named value '%s', expected name=value", pair))
		}
		named[strings.TrimSpace(parts[0])] = parts[1]
	}
	return named, nil
}
