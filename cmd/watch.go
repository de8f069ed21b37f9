package cmd

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/xmremote/xmouse/internal/ui"
)

var watchIntervalMs int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the pointer location live",
	Long:  `Poll and display the pointer location until q is pressed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		remote, err := openRemote()
		if err != nil {
			return err
		}
		defer remote.Close()

		interval := time.Duration(watchIntervalMs) * time.Millisecond
		model := ui.NewWatchModel(remote, interval)

		program := tea.NewProgram(model)
		_, err = program.Run()
		return err
	},
}

func init() {
	watchCmd.Flags().IntVarP(&watchIntervalMs, "interval", "i", 100, "poll interval in milliseconds")
	rootCmd.AddCommand(watchCmd)
}
