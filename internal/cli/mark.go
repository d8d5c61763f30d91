package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aura-labs/aura/internal/daemon"
	"github.com/aura-labs/aura/internal/domain"
)

func init() {
	markCmd.Flags().StringVar(&markDate, "date", "", "Date to mark (YYYY-MM-DD, defaults to today)")
	markCmd.Flags().BoolVar(&markFailed, "failed", false, "Mark the day unsuccessful")
	rootCmd.AddCommand(markCmd)
}

var (
	markDate   string
	markFailed bool
)

var markCmd = &cobra.Command{
	Use:   "mark",
	Short: "Mark a habit day successful or unsuccessful",
	Long:  `Mark today (or a recent day, within the grace period) for the tracked habit. An unsuccessful mark ends the current streak.`,
	RunE:  runMark,
}

func runMark(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	date := time.Now()
	if markDate != "" {
		parsed, err := time.ParseInLocation(domain.ISODate, markDate, time.Local)
		if err != nil {
			return fmt.Errorf("date must be YYYY-MM-DD")
		}
		date = parsed
	}

	var data domain.HabitData
	if markFailed {
		data, err = d.Habits.MarkDayUnsuccessful(date)
	} else {
		data, err = d.Habits.MarkDaySuccessful(date)
	}
	if err != nil {
		return err
	}

	if markFailed {
		fmt.Printf("Marked %s unsuccessful. Streak reset.\n", domain.ToISODate(date))
	} else {
		fmt.Printf("Marked %s successful. Streak: %d day(s)\n", domain.ToISODate(date), data.CurrentStreak)
	}
	return nil
}
