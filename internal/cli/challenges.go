package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/aura-labs/aura/internal/daemon"
)

func init() {
	rootCmd.AddCommand(challengesCmd)
	challengesCmd.AddCommand(claimCmd)
}

var challengesCmd = &cobra.Command{
	Use:   "challenges",
	Short: "Show today's challenges",
	RunE:  runChallenges,
}

var claimCmd = &cobra.Command{
	Use:   "claim ID",
	Short: "Claim a completed challenge's reward",
	Args:  cobra.ExactArgs(1),
	RunE:  runClaim,
}

func runChallenges(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	challenges, err := d.Rewards.EnsureDailyChallenges()
	if err != nil {
		return err
	}

	now := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tDIFFICULTY\tPROGRESS\tREWARD\tSTATUS")
	for _, c := range challenges {
		status := "active"
		switch {
		case c.Claimed:
			status = "claimed"
		case c.Completed:
			status = "completed"
		case c.IsExpiredAt(now):
			status = "expired"
		}
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%d/%d\t%d XP\t%s\n",
			c.ID, c.Icon, c.Title, c.Difficulty, c.Current, c.Target, c.Reward.XP, status)
	}
	return w.Flush()
}

func runClaim(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	rw, events, err := d.Rewards.ClaimChallenge(args[0])
	if err != nil {
		return err
	}

	if rw.XP > 0 {
		fmt.Printf("Claimed %d XP", rw.XP)
		if rw.StreakFreezes > 0 {
			fmt.Printf(" and %d streak freeze(s)", rw.StreakFreezes)
		}
		fmt.Println()
	} else {
		fmt.Println("Nothing to claim.")
	}
	printEvents(events)
	return nil
}
