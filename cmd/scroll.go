package cmd

import (
	"github.com/spf13/cobra"
)

var (
	scrollDx int
	scrollDy int
)

var scrollCmd = &cobra.Command{
	Use:   "scroll",
	Short: "Scroll with discrete wheel clicks",
	Long: `Scroll using discrete wheel button clicks. Positive --dy scrolls
down, negative up; positive --dx scrolls left, negative right. The
magnitude is the number of clicks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		remote, err := openRemote()
		if err != nil {
			return err
		}
		defer remote.Close()

		ctx, cancel := opContext()
		defer cancel()

		return remote.Scroll(ctx, scrollDx, scrollDy)
	},
}

func init() {
	scrollCmd.Flags().IntVarP(&scrollDx, "dx", "x", 0, "horizontal scroll clicks")
	scrollCmd.Flags().IntVarP(&scrollDy, "dy", "y", 0, "vertical scroll clicks")
	rootCmd.AddCommand(scrollCmd)
}
