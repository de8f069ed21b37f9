package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/xmremote/xmouse/internal/config"
	"github.com/xmremote/xmouse/internal/mouse"
)

var (
	dragRelative      bool
	dragButton        string
	dragDelayBeforeMs int
	dragDelayAfterMs  int
	dragNoSync        bool
)

var dragCmd = &cobra.Command{
	Use:   "drag <x> <y>",
	Short: "Drag the pointer while holding a button",
	Long: `Press a button, move the pointer to the given coordinates (absolute,
or a relative offset with --rel), then release the same button.
Prints the final location.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid x coordinate %q", args[0])
		}
		y, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid y coordinate %q", args[1])
		}

		remote, err := openRemote()
		if err != nil {
			return err
		}
		defer remote.Close()

		ctx, cancel := opContext()
		defer cancel()

		cfg := config.Get()
		before := dragDelayBeforeMs
		if !cmd.Flags().Changed("delay-before") {
			before = cfg.Input.DragDelayBeforeMs
		}
		after := dragDelayAfterMs
		if !cmd.Flags().Changed("delay-after") {
			after = cfg.Input.DragDelayAfterMs
		}

		opts := []mouse.Option{
			mouse.WithDelayBefore(time.Duration(before) * time.Millisecond),
			mouse.WithDelayAfter(time.Duration(after) * time.Millisecond),
		}
		if dragNoSync {
			opts = append(opts, mouse.WithNoSync())
		}

		button := parseButton(dragButton)

		var loc mouse.Point
		if dragRelative {
			loc, err = remote.DragBy(ctx, x, y, button, opts...)
		} else {
			loc, err = remote.DragTo(ctx, x, y, button, opts...)
		}
		if err != nil {
			return err
		}
		fmt.Printf("%d %d\n", loc.X, loc.Y)
		return nil
	},
}

func init() {
	dragCmd.Flags().BoolVarP(&dragRelative, "rel", "r", false, "treat coordinates as a relative offset")
	dragCmd.Flags().StringVarP(&dragButton, "button", "b", mouse.BtnLeft, "button name or detail ID to hold")
	dragCmd.Flags().IntVar(&dragDelayBeforeMs, "delay-before", 10, "milliseconds between press and move")
	dragCmd.Flags().IntVar(&dragDelayAfterMs, "delay-after", 10, "milliseconds between move and release")
	dragCmd.Flags().BoolVar(&dragNoSync, "no-sync", false, "do not wait for server acknowledgment")
	rootCmd.AddCommand(dragCmd)
}
