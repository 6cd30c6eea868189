package cli

import (
	_ "embed"
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

//go:embed usage-template.txt
var usageTemplateRaw string

var usageTemplate = strings.TrimSpace(usageTemplateRaw) + "\n"

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// heading renders section headers in the usage output: uppercase, and
// bold when stdout is a terminal.
func heading(s string) string {
	upper := strings.ToUpper(s)
	if !stdoutIsTerminal() {
		return upper
	}
	return pterm.Bold.Sprint(upper)
}

func bold(s string) string {
	if !stdoutIsTerminal() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// initHelpTemplates registers the template funcs and installs the
// custom usage template on the root command.
func initHelpTemplates(rootCmd *cobra.Command) {
	cobra.AddTemplateFuncs(template.FuncMap{
		"heading": heading,
		"bold":    bold,
	})
	rootCmd.SetUsageTemplate(usageTemplate)
}
