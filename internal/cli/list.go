package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aura-labs/aura/internal/daemon"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List activities",
	RunE:    runList,
}

func runList(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	activities, err := d.Rewards.Activities()
	if err != nil {
		return err
	}

	if len(activities) == 0 {
		fmt.Println("No activities yet. Run 'aura add <title>' to get started.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tPOINTS\tSTATUS\tCREATED")
	for _, a := range activities {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			a.ID,
			a.Title,
			a.Category,
			a.Points,
			activityStatus(a),
			a.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return w.Flush()
}
