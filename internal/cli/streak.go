package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aura-labs/aura/internal/daemon"
)

func init() {
	streakCmd.Flags().BoolVar(&streakReset, "reset", false, "Reset the current streak")
	rootCmd.AddCommand(streakCmd)
}

var streakReset bool

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the habit streak",
	RunE:  runStreak,
}

func runStreak(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	if streakReset {
		data, err := d.Habits.ResetStreak(true)
		if err != nil {
			return err
		}
		fmt.Printf("Streak reset. Best streak remains %d day(s).\n", data.BestStreak)
		return nil
	}

	data, err := d.Habits.Data()
	if err != nil {
		return err
	}

	fmt.Printf("Current streak: %d day(s)\n", data.CurrentStreak)
	if data.StreakStartDate != "" {
		fmt.Printf("Started:        %s\n", data.StreakStartDate)
	}
	fmt.Printf("Best streak:    %d day(s)\n", data.BestStreak)

	if len(data.StreakHistory) > 0 {
		fmt.Println()
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "START\tEND\tDAYS\tENDED BY")
		for _, h := range data.StreakHistory {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", h.StartDate, h.EndDate, h.Duration, h.EndReason)
		}
		return w.Flush()
	}
	return nil
}
