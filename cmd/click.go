package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/xmremote/xmouse/internal/config"
	"github.com/xmremote/xmouse/internal/mouse"
)

var (
	clickTimes   int
	clickDelayMs int
	clickNoSync  bool
)

var clickCmd = &cobra.Command{
	Use:   "click [button]",
	Short: "Click a pointer button",
	Long: `Click a pointer button one or more times. The button is a symbolic
name (button_left, button_right, scroll_up, ...) or a raw detail ID.
Defaults to button_left.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		button := mouse.ButtonName(mouse.BtnLeft)
		if len(args) == 1 {
			button = parseButton(args[0])
		}

		remote, err := openRemote()
		if err != nil {
			return err
		}
		defer remote.Close()

		ctx, cancel := opContext()
		defer cancel()

		delay := clickDelayMs
		if !cmd.Flags().Changed("delay") {
			delay = config.Get().Input.ClickDelayMs
		}

		opts := []mouse.Option{
			mouse.WithTimes(clickTimes),
			mouse.WithHoldDelay(time.Duration(delay) * time.Millisecond),
		}
		if clickNoSync {
			opts = append(opts, mouse.WithNoSync())
		}

		return remote.Click(ctx, button, opts...)
	},
}

func init() {
	clickCmd.Flags().IntVarP(&clickTimes, "times", "t", 1, "number of clicks")
	clickCmd.Flags().IntVar(&clickDelayMs, "delay", 10, "milliseconds between press and release")
	clickCmd.Flags().BoolVar(&clickNoSync, "no-sync", false, "do not wait for server acknowledgment")
	rootCmd.AddCommand(clickCmd)
}
