package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"rota/internal/browse"
	"rota/internal/config"
	"rota/internal/log"
	"rota/internal/tui"
)

var (
	cfgFile  string
	startDir string
	debug    bool
)

// NewRootCmd creates the root command. Running rota with no subcommand
// opens the browser in the working directory.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rota",
		Short: "A read-only terminal directory browser",
		Long: `Rota presents a directory as a navigable list with a details panel
for the selected entry. It never writes to the filesystem.`,
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse("")
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/rota/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&startDir, "path", "", "directory to start browsing in")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newBrowseCmd())

	return rootCmd
}

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [directory]",
		Short: "Browse a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir string
			if len(args) > 0 {
				dir = args[0]
			}
			return runBrowse(dir)
		},
	}
}

// runBrowse loads config, resolves the start directory and runs the
// program. Everything that can fail here fails before the terminal
// switches to raw mode; once the loop runs, failures surface inside
// the UI instead of ending the process.
func runBrowse(dir string) error {
	var cfg *config.Config
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadConfigFile(cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using defaults\n", err)
		cfg = config.New()
	}

	// A missing log file is no reason to refuse to browse.
	if err := log.Init(debug); err == nil {
		log.Infof("rota %s starting", version)
	}

	if dir == "" {
		dir = startDir
	}
	if dir == "" {
		dir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("cannot determine working directory: %w", err)
		}
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	st := browse.NewState(abs, cfg.Settings.ShowHidden)

	// WithAltScreen preserves the user's scrollback; the program
	// restores raw mode and the primary screen on every exit path,
	// including errors.
	p := tea.NewProgram(tui.New(st, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Errorf("terminal session failed: %v", err)
		return fmt.Errorf("terminal session failed: %w", err)
	}
	log.Infof("clean exit from %s", st.CurrentDir)
	return nil
}
