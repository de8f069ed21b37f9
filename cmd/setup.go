package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xmremote/xmouse/internal/config"
	"github.com/xmremote/xmouse/internal/ui"
	"github.com/xmremote/xmouse/internal/x11"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactively write the xmouse configuration",
	Long: `Walk through display address, bounds policy and delay settings and
write them to the config file.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	display := cfg.Display
	policy := cfg.Bounds.Policy
	clickDelay := strconv.Itoa(cfg.Input.ClickDelayMs)
	syncTimeout := strconv.Itoa(cfg.Input.SyncTimeoutMs)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("X display address").
				Description("Leave empty to use $DISPLAY").
				Placeholder(":0").
				Value(&display),
			huh.NewSelect[string]().
				Title("Coordinate bounds policy").
				Description("What absolute moves do with off-screen targets").
				Options(
					huh.NewOption("ignore - let the server clamp", "ignore"),
					huh.NewOption("clamp - pin to the screen edge", "clamp"),
					huh.NewOption("reject - fail the operation", "reject"),
				).
				Value(&policy),
			huh.NewInput().
				Title("Click delay (ms)").
				Description("Pause between press and release of a click").
				Validate(validatePositiveMs).
				Value(&clickDelay),
			huh.NewInput().
				Title("Sync timeout (ms)").
				Description("Bound on server waits, 0 waits indefinitely").
				Validate(validatePositiveMs).
				Value(&syncTimeout),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	// Probe the chosen display before persisting anything.
	conn, err := x11.Open(display)
	if err != nil {
		fmt.Println(ui.ErrorStyle.Render(fmt.Sprintf("✗ Could not connect to display %q: %v", display, err)))
		fmt.Println("  Settings were not saved.")
		return err
	}
	conn.Close()

	clickMs, _ := strconv.Atoi(clickDelay)
	timeoutMs, _ := strconv.Atoi(syncTimeout)

	viper.Set("display", display)
	viper.Set("bounds.policy", policy)
	viper.Set("input.click_delay_ms", clickMs)
	viper.Set("input.sync_timeout_ms", timeoutMs)

	if err := config.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Println(ui.SuccessStyle.Render("✓ Configuration saved"))
	fmt.Printf("  Config file: %s\n", config.GetConfigPath())
	return nil
}

func validatePositiveMs(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("enter a non-negative whole number of milliseconds")
	}
	return nil
}
