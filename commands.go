package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"termdeck/internal/config"
	"termdeck/internal/deck"
	"termdeck/internal/logging"
	"termdeck/internal/ui"
)

type rootOptions struct {
	configPath  string
	debug       bool
	logFile     string
	notesHeight int
	scrollStep  int
	showNotes   bool
	progressBar bool
	noWatch     bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:   "termdeck [slides-dir]",
		Short: "Present markdown slides in the terminal",
		Long: `termdeck - terminal slide presenter

Shows every *.md file in a directory as a slide, in filename order. Text
after a "## Speaker Notes" line is kept out of the slide and shown in the
notes panel. Files starting with an underscore are skipped; _title.md sets
the deck title.`,
		Example: `  # Present ./slides
  termdeck

  # Present another directory with the notes panel open
  termdeck talk/ --notes

  # Log key handling to termdeck.log
  termdeck --debug`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresenter(cmd.Context(), opts, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/"+config.RelPath+")")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging (to "+logging.DebugFile+" unless --log-file is set)")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	rootCmd.Flags().IntVar(&opts.notesHeight, "notes-height", 0, "Notes panel rows, 2 to 20 (default: from config or 6)")
	rootCmd.Flags().IntVar(&opts.scrollStep, "scroll-step", 0, "Lines moved per scroll key (default: from config or 3)")
	rootCmd.Flags().BoolVar(&opts.showNotes, "notes", false, "Open the speaker notes panel at start")
	rootCmd.Flags().BoolVar(&opts.progressBar, "progress", false, "Show a progress bar under the status bar")
	rootCmd.Flags().BoolVar(&opts.noWatch, "no-watch", false, "Do not reload slides when files change")

	rootCmd.AddCommand(newListCmd(&opts), newNotesCmd(&opts), newConfigCmd())
	return rootCmd
}

// loadConfig reads the config named by --config, or the user config.
func loadConfig(opts rootOptions) (*config.Config, string, error) {
	if opts.configPath != "" {
		cfg, err := config.Load(opts.configPath)
		return cfg, opts.configPath, err
	}
	return config.LoadUserConfig()
}

// setup resolves configuration and the deck shared by every command.
func setup(opts rootOptions, args []string) (*config.Config, deck.Deck, error) {
	cfg, _, err := loadConfig(opts)
	if err != nil {
		return nil, deck.Deck{}, err
	}

	o := config.Overrides{
		LogFile:     opts.logFile,
		NotesHeight: opts.notesHeight,
		ScrollStep:  opts.scrollStep,
		ShowNotes:   opts.showNotes,
		ProgressBar: opts.progressBar,
		NoWatch:     opts.noWatch,
	}
	if len(args) > 0 {
		o.SlidesDir = args[0]
	}
	if err := config.ApplyOverrides(cfg, o); err != nil {
		return nil, deck.Deck{}, err
	}

	d, err := deck.Load(cfg.SlidesDir)
	if err != nil {
		return nil, deck.Deck{}, fmt.Errorf("failed to load slides: %w", err)
	}
	return cfg, d, nil
}

func newLogger(cfg *config.Config, debug bool) (*log.Logger, func() error, error) {
	path := cfg.LogFile
	if path == "" && debug {
		path = logging.DebugFile
	}
	return logging.New(path, debug)
}

func runPresenter(ctx context.Context, opts rootOptions, args []string) error {
	cfg, d, err := setup(opts, args)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, opts.debug)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeLog(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", closeErr)
		}
	}()
	logger.Info("loaded deck", "dir", d.Dir, "slides", d.Len(), "title", d.Title)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := ui.Run(ctx, ui.Options{Deck: d, Config: cfg, Logger: logger}); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	fmt.Println("Slideshow ended.")
	return nil
}

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list [slides-dir]",
		Short: "Print the slide index",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, d, err := setup(*opts, args)
			if err != nil {
				return err
			}
			printIndex(cmd.OutOrStdout(), d)
			return nil
		},
	}
}

func printIndex(w io.Writer, d deck.Deck) {
	headStyle := lipgloss.NewStyle().Bold(true)
	numStyle := lipgloss.NewStyle().Faint(true)

	title := d.Title
	if title == "" {
		title = "SLIDE INDEX"
	}
	fmt.Fprintln(w, headStyle.Render(title))
	for i, s := range d.Slides {
		fmt.Fprintf(w, "%s %s\n", numStyle.Render(fmt.Sprintf("%2d.", i+1)), s.Title)
	}
}

func newNotesCmd(opts *rootOptions) *cobra.Command {
	var wrap int

	cmd := &cobra.Command{
		Use:   "notes [slides-dir]",
		Short: "Print all speaker notes as rendered markdown",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, d, err := setup(*opts, args)
			if err != nil {
				return err
			}
			if wrap <= 0 {
				width, _ := ui.TerminalSize()
				wrap = width - 4 // Leave some margin
			}
			out, err := renderNotes(d, wrap)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().IntVar(&wrap, "wrap", 0, "Word wrap column (default: terminal width)")
	return cmd
}

// notesMarkdown collects the speaker notes of d into one document.
func notesMarkdown(d deck.Deck) string {
	var b strings.Builder
	if d.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", d.Title)
	}
	for i, s := range d.Slides {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, s.Title)
		if s.Notes == "" {
			b.WriteString("_No speaker notes._\n\n")
			continue
		}
		b.WriteString(s.Notes)
		b.WriteString("\n\n")
	}
	return b.String()
}

func renderNotes(d deck.Deck, wrap int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(max(20, wrap)),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(notesMarkdown(d))
	if err != nil {
		return "", fmt.Errorf("failed to render notes: %w", err)
	}
	return out, nil
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage termdeck configuration",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.Path()
			if err != nil {
				return fmt.Errorf("failed to get config path: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.Path()
			if err != nil {
				return fmt.Errorf("failed to get config path: %w", err)
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}
			if err := config.Write(config.DefaultConfig(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(initCmd)

	return configCmd
}
