package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aura-labs/aura/internal/daemon"
	"github.com/aura-labs/aura/internal/domain"
)

func init() {
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "health", "Activity category")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Optional description")
	addCmd.Flags().StringVar(&addEmoji, "emoji", "", "Optional emoji")
	rootCmd.AddCommand(addCmd)
}

var (
	addCategory    string
	addDescription string
	addEmoji       string
)

var addCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add an activity",
	Long:  `Add an activity to today's list. Points are priced at creation time from the current streak, combo and on-fire state.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	activity, err := d.Rewards.AddActivity(args[0], domain.Category(addCategory), addDescription, addEmoji)
	if err != nil {
		return err
	}

	fmt.Printf("Added %q (%s, %d pts)\n", activity.Title, activity.Category, activity.Points)
	return nil
}
