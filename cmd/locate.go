package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Print the current pointer location",
	RunE: func(cmd *cobra.Command, args []string) error {
		remote, err := openRemote()
		if err != nil {
			return err
		}
		defer remote.Close()

		ctx, cancel := opContext()
		defer cancel()

		loc, err := remote.Location(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%d %d\n", loc.X, loc.Y)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(locateCmd)
}
