package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aura-labs/aura/internal/daemon"
)

func init() {
	rootCmd.AddCommand(doneCmd)
}

var doneCmd = &cobra.Command{
	Use:     "done ID",
	Aliases: []string{"toggle"},
	Short:   "Toggle an activity's completion",
	Args:    cobra.ExactArgs(1),
	RunE:    runDone,
}

func runDone(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	activity, events, err := d.Rewards.ToggleActivity(args[0])
	if err != nil {
		return err
	}

	if activity.Completed {
		fmt.Printf("Completed %q (+%d pts)\n", activity.Title, activity.Points)
	} else {
		fmt.Printf("Reopened %q\n", activity.Title)
	}
	printEvents(events)
	return nil
}
