package config

import (
	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/codepdf/pkg/errors"
)

// Starter renders the built-in defaults as a TOML document a user can
// drop in as config.toml and edit.
func Starter() ([]byte, error) {
	data, err := toml.Marshal(Default())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal starter config")
	}
	header := "# codepdf configuration. Every value shown is the built-in default;\n" +
		"# delete anything you do not want to override.\n\n"
	return append([]byte(header), data...), nil
}
