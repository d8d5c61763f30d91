package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aura-labs/aura/internal/daemon"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run health checks against local state",
	RunE:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	d.Health.RunOnce(context.Background())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CHECK\tSTATUS\tDETAIL")
	for _, s := range d.Health.Statuses() {
		status := "ok"
		detail := "-"
		if s.Error != "" {
			status = "fail"
			detail = s.Error
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, status, detail)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if !d.Health.IsHealthy() {
		return fmt.Errorf("some checks failed")
	}
	fmt.Println("All checks passed.")
	return nil
}
