package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aura-labs/aura/internal/daemon"
)

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Export habit data as JSON",
	Long:  `Export habit data as JSON to a file, or to stdout when no file is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import habit data from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func runExport(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	raw, err := d.Habits.Export()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Println(raw)
		return nil
	}
	if err := os.WriteFile(args[0], []byte(raw), 0600); err != nil {
		return err
	}
	fmt.Printf("Exported habit data to %s\n", args[0])
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	data, err := d.Habits.Import(string(raw))
	if err != nil {
		return err
	}

	fmt.Printf("Imported habit data. Current streak: %d day(s)\n", data.CurrentStreak)
	return nil
}
