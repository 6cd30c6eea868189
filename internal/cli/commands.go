// Package cli wires the cobra command tree. Commands stay thin: flags
// are folded into the configuration and handed to the command packages
// under pkg/commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/codepdf/internal/version"
	"github.com/arthur-debert/codepdf/pkg/cobrax/topics"
	"github.com/arthur-debert/codepdf/pkg/commands/addignore"
	"github.com/arthur-debert/codepdf/pkg/commands/generate"
	"github.com/arthur-debert/codepdf/pkg/commands/genconfig"
	"github.com/arthur-debert/codepdf/pkg/commands/showconfig"
	"github.com/arthur-debert/codepdf/pkg/config"
	"github.com/arthur-debert/codepdf/pkg/filesystem"
	"github.com/arthur-debert/codepdf/pkg/logging"
	"github.com/arthur-debert/codepdf/pkg/ui/styles"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:   "codepdf",
		Short: "Turn a source tree into a paginated PDF listing",
		Long: `codepdf walks a source tree, collects the text files worth reading,
and renders them into a single paginated PDF with one heading per file.
An ignore file keeps already-processed or uninteresting paths out of
subsequent runs, and each document ships with a short summary of its
contents.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ./config.toml, then XDG config dir)")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	initHelpTemplates(rootCmd)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd(&configPath))
	rootCmd.AddCommand(newShowConfigCmd(&configPath))
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newAddIgnoreCmd(&configPath))

	// Topic-based help, rendered from markdown files shipped next to
	// the binary or the working tree.
	exe, err := os.Executable()
	if err == nil {
		possiblePaths := []string{
			filepath.Join(filepath.Dir(exe), "..", "..", "docs", "help"),
			filepath.Join(filepath.Dir(exe), "docs", "help"),
			"docs/help",
		}
		for _, helpPath := range possiblePaths {
			if _, err := os.Stat(helpPath); err == nil {
				if err := topics.Initialize(rootCmd, helpPath); err == nil {
					break
				}
			}
		}
	}

	return rootCmd
}

// resolveExcludedDirs builds the absolute directory exclusions for a
// generate run: the output folder (a sidecar from an earlier run would
// read as a candidate), the directory holding our own binary, and any
// --exclude-dir flags. Discovery matches exclusions by absolute path,
// so relative flag values are resolved against the code folder.
func resolveExcludedDirs(cfg *config.Config, flagDirs []string) ([]string, error) {
	root, err := filepath.Abs(cfg.CodeFolder)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve code folder %s: %w", cfg.CodeFolder, err)
	}

	var excluded []string
	if out, err := filepath.Abs(cfg.OutputFolder); err == nil {
		excluded = append(excluded, out)
	}
	if exe, err := os.Executable(); err == nil {
		excluded = append(excluded, filepath.Dir(exe))
	}
	for _, dir := range flagDirs {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(root, dir)
		}
		excluded = append(excluded, dir)
	}
	return excluded, nil
}

// loadConfig builds the effective configuration for a command run.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("codepdf version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}

func newGenerateCmd(configPath *string) *cobra.Command {
	var (
		title        string
		filename     string
		outputFolder string
		pages        int
		maxFiles     int
		ignoreFile   string
		noIgnore     bool
		updateIgnore bool
		excludeDirs  []string
	)

	cmd := &cobra.Command{
		Use:   "generate [folder]",
		Short: "Generate a PDF listing from a source folder",
		Long: `Generate walks the given folder (or the configured code folder),
collects text files not matched by the ignore file, and renders them
into a single PDF. Files whose estimated length would blow well past
the page budget are skipped and reported.`,
		Args: cobra.MaximumNArgs(1),
		Example: `  # Generate from the configured code folder
  codepdf generate

  # Generate from a specific folder with a page budget
  codepdf generate ./src --pages 20 --title "Sprint Review"

  # Record processed files so the next run skips them
  codepdf generate --update-ignore`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			// Flags override the file/env layers.
			if len(args) == 1 {
				cfg.CodeFolder = args[0]
			}
			if cmd.Flags().Changed("title") {
				cfg.Defaults.Title = title
			}
			if cmd.Flags().Changed("filename") {
				cfg.Defaults.Filename = filename
			}
			if cmd.Flags().Changed("output-folder") {
				cfg.OutputFolder = outputFolder
			}
			if cmd.Flags().Changed("pages") {
				cfg.Defaults.Pages = pages
			}
			if cmd.Flags().Changed("ignore-file") {
				cfg.IgnoreFile = ignoreFile
			}

			log.Info().
				Str("code_folder", cfg.CodeFolder).
				Int("pages", cfg.Defaults.Pages).
				Msg("Generating document")

			excluded, err := resolveExcludedDirs(cfg, excludeDirs)
			if err != nil {
				return err
			}

			result, err := generate.Generate(generate.Options{
				Config:       cfg,
				FS:           filesystem.NewOS(),
				NoIgnore:     noIgnore,
				UpdateIgnore: updateIgnore,
				MaxFiles:     maxFiles,
				ExcludeDirs:  excluded,
			})
			if err != nil {
				return err
			}

			if result.OutputPath == "" {
				fmt.Println(styles.Get("Summary").Render(result.Summary))
				return nil
			}

			wrote := fmt.Sprintf("Wrote %s (%d files", result.OutputPath, len(result.Processed))
			if result.PageCount > 0 {
				wrote += fmt.Sprintf(", %d pages", result.PageCount)
			}
			fmt.Println(styles.Get("Success").Render(wrote + ")"))
			for _, s := range result.Skipped {
				fmt.Println(styles.Get("Skipped").Render(
					fmt.Sprintf("skipped %s (~%d pages)", s.RelativePath, s.EstimatedPages)))
			}
			fmt.Println(styles.Get("Summary").Render("Summary: " + result.Summary))
			if result.SavedToIgnore > 0 {
				fmt.Printf("Saved %d new files to ignore file\n", result.SavedToIgnore)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Document title")
	cmd.Flags().StringVarP(&filename, "filename", "f", "", "Output PDF filename")
	cmd.Flags().StringVarP(&outputFolder, "output-folder", "o", "", "Folder to write the PDF into")
	cmd.Flags().IntVarP(&pages, "pages", "p", 0, "Target page budget (0 = unlimited)")
	cmd.Flags().IntVar(&maxFiles, "max-files", 0, "Cap on the number of files included (0 = no cap)")
	cmd.Flags().StringVar(&ignoreFile, "ignore-file", "", "Path to the ignore file")
	cmd.Flags().BoolVar(&noIgnore, "no-ignore", false, "Process all files, ignoring the ignore file")
	cmd.Flags().BoolVar(&updateIgnore, "update-ignore", false, "Append processed files to the ignore file")
	cmd.Flags().StringSliceVar(&excludeDirs, "exclude-dir", nil, "Directory names to skip (repeatable)")

	return cmd
}

func newShowConfigCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show-config",
		Short: "Print the effective configuration",
		Long: `Show-config prints the configuration after merging the embedded
defaults, the config file, and environment variables. API keys are
masked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			result, err := showconfig.ShowConfig(showconfig.Options{Config: cfg})
			if err != nil {
				return err
			}

			fmt.Print(result.TOML)
			return nil
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "gen-config [path]",
		Short: "Write a starter config file",
		Long: `Gen-config writes the shipped defaults as a TOML file you can edit.
Without a path it writes ./config.toml.`,
		Args: cobra.MaximumNArgs(1),
		Example: `  # Write ./config.toml
  codepdf gen-config

  # Write to the XDG config location
  codepdf gen-config ~/.config/codepdf/config.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			result, err := genconfig.GenConfig(genconfig.Options{
				FS:    filesystem.NewOS(),
				Path:  path,
				Force: force,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Wrote %s\n", result.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}

func newAddIgnoreCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "add-ignore <pattern>...",
		Short: "Add patterns to the ignore file",
		Long: `Add-ignore appends the given patterns to the configured ignore file.
Patterns can be literal paths, directory prefixes (build/*), extension
globs (*.md), or general globs.`,
		Args: cobra.MinimumNArgs(1),
		Example: `  # Never include markdown files
  codepdf add-ignore '*.md'

  # Skip a whole directory
  codepdf add-ignore 'vendor/*'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			result, err := addignore.AddIgnore(addignore.Options{
				Config:   cfg,
				FS:       filesystem.NewOS(),
				Patterns: args,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Added %d patterns to %s\n", result.Added, result.IgnorePath)
			return nil
		},
	}
}
