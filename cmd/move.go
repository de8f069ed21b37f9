package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/xmremote/xmouse/internal/mouse"
)

var (
	moveRelative bool
	moveNoSync   bool
)

var moveCmd = &cobra.Command{
	Use:   "move <x> <y>",
	Short: "Move the pointer to absolute or relative coordinates",
	Long: `Move the pointer to absolute root coordinates, or by a relative
offset with --rel. Prints the post-move location, which may differ
from the target if the server clamps it.`,
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

		var opts []mouse.Option
		if moveNoSync {
			opts = append(opts, mouse.WithNoSync())
		}

		var loc mouse.Point
		if moveRelative {
			loc, err = remote.MoveBy(ctx, x, y, opts...)
		} else {
			loc, err = remote.MoveTo(ctx, x, y, opts...)
		}
		if err != nil {
			return err
		}
		fmt.Printf("%d %d\n", loc.X, loc.Y)
		return nil
	},
}

func init() {
	moveCmd.Flags().BoolVarP(&moveRelative, "rel", "r", false, "treat coordinates as a relative offset")
	moveCmd.Flags().BoolVar(&moveNoSync, "no-sync", false, "do not wait for server acknowledgment")
	rootCmd.AddCommand(moveCmd)
}
