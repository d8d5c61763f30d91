package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aura-labs/aura/internal/daemon"
)

func init() {
	rootCmd.AddCommand(rmCmd)
}

var rmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Delete an activity",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func runRm(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	if err := d.Rewards.DeleteActivity(args[0]); err != nil {
		return err
	}

	fmt.Printf("Removed %s\n", args[0])
	return nil
}
