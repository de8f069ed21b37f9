package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/xmremote/xmouse/internal/config"
	"github.com/xmremote/xmouse/internal/mouse"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage xmouse configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		fmt.Printf("Config file: %s\n\n", config.GetConfigPath())

		fmt.Printf("display = %q\n\n", cfg.Display)

		fmt.Println("[buttons]")
		table := mouse.DefaultButtons()
		for name, id := range cfg.Buttons {
			table[name] = id
		}
		names := make([]string, 0, len(table))
		for name := range table {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("%s = %d\n", name, table[name])
		}

		fmt.Println("\n[input]")
		fmt.Printf("click_delay_ms = %d\n", cfg.Input.ClickDelayMs)
		fmt.Printf("drag_delay_before_ms = %d\n", cfg.Input.DragDelayBeforeMs)
		fmt.Printf("drag_delay_after_ms = %d\n", cfg.Input.DragDelayAfterMs)
		fmt.Printf("sync_timeout_ms = %d\n", cfg.Input.SyncTimeoutMs)

		fmt.Println("\n[bounds]")
		fmt.Printf("policy = %q\n", cfg.Bounds.Policy)

		fmt.Println("\n[logging]")
		fmt.Printf("log_level = %q\n", cfg.Logging.LogLevel)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.GetConfigPath())
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
