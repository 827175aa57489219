package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"panedeck/internal/config"
	"panedeck/internal/logging"
	"panedeck/internal/telemetry"
	"panedeck/internal/ui"
)

var log = logging.New("main")

type options struct {
	configPath string
	autoFocus  bool
	color      string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "panedeck",
		Short:        "Tabbed, resizable terminal panes with layout and focus modes",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start with the default config (~/.config/panedeck/config.toml)
  panedeck

  # Keys go straight to the selected pane
  panedeck --auto-focus
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config file (default $PANEDECK_CONFIG or ~/.config/panedeck/config.toml)")
	cmd.Flags().BoolVar(&opts.autoFocus, "auto-focus", false, "Send keys to the selected pane without entering focus mode")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "Color profile (auto|ascii|ansi|ansi256|truecolor)")
	return cmd
}

// colorProfile maps the --color flag to a termenv profile.
func colorProfile(name string) (termenv.Profile, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return termenv.EnvColorProfile(), nil
	case "ascii":
		return termenv.Ascii, nil
	case "ansi":
		return termenv.ANSI, nil
	case "ansi256":
		return termenv.ANSI256, nil
	case "truecolor":
		return termenv.TrueColor, nil
	}
	return termenv.Ascii, fmt.Errorf("unknown color profile %q", name)
}

func run(ctx context.Context, cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if cfg.Log.Level != "" {
		logging.SetLevel(cfg.Log.Level)
	}
	if cmd.Flags().Changed("auto-focus") {
		cfg.UI.AutoFocus = opts.autoFocus
	}

	profile, err := colorProfile(opts.color)
	if err != nil {
		return err
	}
	lipgloss.SetColorProfile(profile)

	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := telemetry.Setup(ctx, "panedeck")
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Warn("telemetry shutdown", "error", err)
		}
	}()

	kb := ui.DefaultKeyBindings()
	if err := kb.Override(cfg.Keys); err != nil {
		return fmt.Errorf("config keys: %w", err)
	}

	layout := ui.NewMasterLayout(
		ui.WithKeyBindings(kb),
		ui.WithAutoFocus(cfg.UI.AutoFocus),
		ui.WithDividerBounds(cfg.UI.MinPercent, cfg.UI.MaxPercent),
	)
	d, err := buildDemo(layout, cfg)
	if err != nil {
		return err
	}
	defer d.Close()

	log.Info("starting", "tabs", layout.TabCount(), "auto_focus", layout.AutoFocus())
	p := tea.NewProgram(ui.NewProgram(layout).AsTeaModel(), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
