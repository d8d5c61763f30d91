package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aura-labs/aura/internal/daemon"
	"github.com/aura-labs/aura/internal/domain"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show points, level, aura tier and streaks",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	now := time.Now()
	stats, err := d.Rewards.StatsAt(now)
	if err != nil {
		return err
	}
	todayPoints, err := d.Rewards.TodayPoints(now)
	if err != nil {
		return err
	}
	tier := domain.TierForPoints(stats.TotalPoints)

	fmt.Printf("Aura:        %d points (%s)\n", stats.TotalPoints, tier.Name)
	fmt.Printf("Level:       %d\n", stats.Level)
	fmt.Printf("Today:       %d points\n", todayPoints)
	fmt.Printf("Streak:      %d day(s) (longest %d)\n", stats.CurrentStreak, stats.LongestStreak)
	fmt.Printf("Freezes:     %d\n", stats.StreakFreezes)
	fmt.Printf("Completed:   %d activities\n", stats.CompletedActivities)
	if stats.ComboCount > 0 {
		fmt.Printf("Combo:       x%.1f (%d in chain)\n", stats.ComboMultiplier, stats.ComboCount)
	}
	if stats.OnFireMode {
		fmt.Println("On fire! 2x points active")
	}
	return nil
}
