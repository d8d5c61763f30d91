package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aura-labs/aura/internal/app/reward"
	"github.com/aura-labs/aura/internal/daemon"
)

func init() {
	rootCmd.AddCommand(achievementsCmd)
}

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show the achievement catalog and unlocks",
	RunE:  runAchievements,
}

func runAchievements(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	stats, err := d.Rewards.Stats()
	if err != nil {
		return err
	}

	unlocked := make(map[string]string, len(stats.Achievements))
	for _, a := range stats.Achievements {
		unlocked[a.ID] = a.UnlockedAt.Format("2006-01-02")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ACHIEVEMENT\tDESCRIPTION\tUNLOCKED")
	for _, def := range reward.Catalog {
		when := "-"
		if at, ok := unlocked[def.ID]; ok {
			when = at
		}
		fmt.Fprintf(w, "%s %s\t%s\t%s\n", def.Icon, def.Title, def.Description, when)
	}
	return w.Flush()
}
