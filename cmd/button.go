package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xmremote/xmouse/internal/mouse"
)

// press and release change real pointer-button state on the host; a
// press left unpaired keeps the button held until something releases it.

var pressCmd = &cobra.Command{
	Use:   "press [button]",
	Short: "Press and hold a pointer button",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return buttonEvent(args, true)
	},
}

var releaseCmd = &cobra.Command{
	Use:   "release [button]",
	Short: "Release a pointer button",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return buttonEvent(args, false)
	},
}

func buttonEvent(args []string, press bool) error {
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

	if press {
		return remote.Press(ctx, button)
	}
	return remote.Release(ctx, button)
}

func init() {
	rootCmd.AddCommand(pressCmd)
	rootCmd.AddCommand(releaseCmd)
}
