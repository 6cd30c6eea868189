package config

import (
	_ "embed"
	goerrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/codepdf/pkg/errors"
	"github.com/arthur-debert/codepdf/pkg/logging"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, goerrors.New("not implemented")
}

// Load builds the effective configuration. An explicit path wins; an
// empty path searches ./config.toml then
// $XDG_CONFIG_HOME/codepdf/config.toml. A missing file is fine (the
// embedded defaults apply); a malformed one is a fatal config error.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	// An .env next to the working directory may carry ANTHROPIC_API_KEY.
	// Absence is the normal case.
	_ = godotenv.Load()

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	// 2. Config file
	configPath, explicit := path, path != ""
	if !explicit {
		configPath = findConfigFile()
	}
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			if explicit {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", configPath)
			}
		} else if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", configPath)
		} else {
			logger.Debug().Str("path", configPath).Msg("Loaded config file")
		}
	}

	// 3. Environment overrides. Double underscore separates nesting
	// levels so single underscores survive inside key names:
	// CODEPDF_DEFAULTS__PAGES=10, CODEPDF_CODE_FOLDER=/srv/code.
	err := k.Load(env.Provider("CODEPDF_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "CODEPDF_")), "__", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if cfg.AI.AnthropicAPIKey == "" {
		cfg.AI.AnthropicAPIKey = os.Getenv("ANTHROPIC_API_KEY")
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the embedded defaults without touching the
// filesystem or the environment.
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		// The embedded TOML is fixed at build time; a parse failure here
		// is a programming error.
		panic(err)
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		panic(err)
	}
	return &cfg
}

// Validate rejects configurations the pipeline cannot run with.
func Validate(cfg *Config) error {
	switch {
	case cfg.Layout.MaxChars <= 0:
		return errors.Newf(errors.ErrConfigInvalid, "layout.max_chars must be positive, got %d", cfg.Layout.MaxChars)
	case cfg.Layout.ContinuationIndent < 0:
		return errors.Newf(errors.ErrConfigInvalid, "layout.continuation_indent must not be negative, got %d", cfg.Layout.ContinuationIndent)
	case cfg.Defaults.Pages < 0:
		return errors.Newf(errors.ErrConfigInvalid, "defaults.pages must not be negative, got %d", cfg.Defaults.Pages)
	case cfg.Pagination.SkipThresholdPages < 0:
		return errors.Newf(errors.ErrConfigInvalid, "pagination.skip_threshold_pages must not be negative, got %d", cfg.Pagination.SkipThresholdPages)
	case cfg.Defaults.Filename == "":
		return errors.New(errors.ErrConfigInvalid, "defaults.filename must not be empty")
	case cfg.Fonts.Code.Size <= 0:
		return errors.Newf(errors.ErrConfigInvalid, "fonts.code.size must be positive, got %v", cfg.Fonts.Code.Size)
	}

	switch cfg.Layout.PageSize {
	case "A4", "letter", "Letter":
	default:
		return errors.Newf(errors.ErrConfigInvalid, "layout.page_size must be A4 or letter, got %q", cfg.Layout.PageSize)
	}

	return nil
}

// findConfigFile returns the first config.toml found in the search
// path, or empty when none exists.
func findConfigFile() string {
	candidates := []string{
		"config.toml",
		filepath.Join(xdg.ConfigHome, "codepdf", "config.toml"),
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}
