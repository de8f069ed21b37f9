package cmd

import (
	"context"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/xmremote/xmouse/internal/config"
	"github.com/xmremote/xmouse/internal/logger"
	"github.com/xmremote/xmouse/internal/mouse"
)

var (
	// Version is set during build
	Version = "0.1.0-dev"

	flagDisplay string
	flagConfig  string

	rootCmd = &cobra.Command{
		Use:   "xmouse",
		Short: "xmouse - X11 pointer remote control",
		Long: `xmouse simulates mouse input on an X11 display through the XTEST
extension: movement, button press/release, clicks, drags and wheel
scrolling, plus live pointer location queries.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flagConfig != "" {
				config.SetConfigPath(flagConfig)
			}
			if err := config.Init(); err != nil {
				return err
			}
			if lvl := config.Get().Logging.LogLevel; lvl != "" {
				logger.SetLevel(lvl)
			}
			return nil
		},
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringVarP(&flagDisplay, "display", "d", "", "X display address (default: $DISPLAY)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path")
}

// openRemote opens a pointer session using the effective display
// address and button table.
func openRemote() (*mouse.Remote, error) {
	cfg := config.Get()

	display := flagDisplay
	if display == "" {
		display = cfg.Display
	}

	return mouse.Connect(display, buttonTable(cfg), mouse.ParseBoundsPolicy(cfg.Bounds.Policy))
}

// buttonTable overlays configured button overrides onto the defaults.
func buttonTable(cfg *config.Config) mouse.ButtonMap {
	if len(cfg.Buttons) == 0 {
		return nil
	}
	table := mouse.DefaultButtons()
	for name, id := range cfg.Buttons {
		table[name] = id
	}
	return table
}

// opContext returns the context bounding one pointer operation. A
// configured sync timeout turns indefinite server waits into errors.
func opContext() (context.Context, context.CancelFunc) {
	timeout := config.Get().Input.SyncTimeoutMs
	if timeout <= 0 {
		return context.Background(), func() {}
	}
	return context.WithTimeout(context.Background(), time.Duration(timeout)*time.Millisecond)
}

// parseButton turns a CLI button argument into a Button: a small
// integer is a raw detail ID, anything else a symbolic name.
func parseButton(arg string) mouse.Button {
	if arg == "" {
		return mouse.ButtonName(mouse.BtnLeft)
	}
	if id, err := strconv.Atoi(arg); err == nil && id > 0 && id < 256 {
		return mouse.ButtonID(uint8(id))
	}
	return mouse.ButtonName(arg)
}
