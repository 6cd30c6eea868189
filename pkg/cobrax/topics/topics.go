// Package topics adds file-backed help topics to a cobra application.
// Markdown or plain-text files in a topics directory become `help
// <name>` targets alongside the regular command help.
package topics

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// Topic is one loaded help file.
type Topic struct {
	Name     string
	FilePath string
	Content  string
}

// Manager holds the loaded topics and the help function it wraps.
type Manager struct {
	topics       map[string]*Topic
	originalHelp func(*cobra.Command, []string)
	renderer     Renderer
}

// Load reads every .md and .txt file in dir into a Manager. A missing
// directory is not an error, it just yields no topics.
func Load(dir string, renderer Renderer) (*Manager, error) {
	if renderer == nil {
		renderer = &PlainRenderer{}
	}
	m := &Manager{topics: make(map[string]*Topic), renderer: renderer}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return m, nil
	}

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		ext := filepath.Ext(path)
		if ext != ".md" && ext != ".txt" {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(path), ext)
		m.topics[name] = &Topic{Name: name, FilePath: path, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan help topics: %w", err)
	}
	return m, nil
}

// Get looks a topic up by name, tolerating a --flag spelling.
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	t, ok := m.topics[name]
	return t, ok
}

// Names returns the sorted topic names.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *Manager) show(t *Topic) {
	fmt.Print(m.renderer.Render(t.Content, filepath.Ext(t.FilePath)))
}

// Initialize loads dir and installs a help command on rootCmd that
// resolves topics before falling back to normal command help.
func Initialize(rootCmd *cobra.Command, dir string) error {
	m, err := Load(dir, NewGlamourRenderer())
	if err != nil {
		return err
	}

	m.originalHelp = rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help shows the documentation for any command or topic.
Run '` + rootCmd.Name() + ` help topics' to list the available topics.`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.Names()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				m.originalHelp(rootCmd, nil)
				return
			}
			if args[0] == "topics" {
				names := m.Names()
				if len(names) == 0 {
					fmt.Println("No help topics available.")
					return
				}
				fmt.Println("Available help topics:")
				for _, name := range names {
					fmt.Printf("  %s\n", name)
				}
				fmt.Printf("\nUse '%s help <topic>' to read a topic.\n", rootCmd.Name())
				return
			}
			if t, ok := m.Get(args[0]); ok {
				m.show(t)
				return
			}
			m.originalHelp(rootCmd, args)
		},
	}

	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			rootCmd.RemoveCommand(cmd)
			break
		}
	}
	rootCmd.AddCommand(helpCmd)

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if t, ok := m.Get(args[0]); ok {
				m.show(t)
				return
			}
		}
		m.originalHelp(cmd, args)
	})

	return nil
}
