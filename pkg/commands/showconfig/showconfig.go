// Package showconfig renders the effective configuration after all
// layers (embedded defaults, config file, environment) are merged.
package showconfig

import (
	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/codepdf/pkg/config"
	"github.com/arthur-debert/codepdf/pkg/errors"
	"github.com/arthur-debert/codepdf/pkg/logging"
)

// Options configures the show-config command.
type Options struct {
	Config *config.Config
}

// Result holds the rendered configuration.
type Result struct {
	TOML string
}

// ShowConfig serializes the merged configuration back to TOML. Secrets
// are masked so the output is safe to paste into a bug report.
func ShowConfig(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.showconfig")

	cfg := *opts.Config
	if cfg.AI.AnthropicAPIKey != "" {
		cfg.AI.AnthropicAPIKey = "********"
	}

	data, err := toml.Marshal(&cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to serialize configuration")
	}

	logger.Debug().Msg("Rendered effective configuration")
	return &Result{TOML: string(data)}, nil
}
