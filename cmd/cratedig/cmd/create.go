package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fraserlangton/cratedigger"
	"github.com/fraserlangton/cratedigger/internal/library"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Build a new crate file",
	Long: `Build a new crate under the Subcrates directory.

Example:
  cratedig create --name "warmup" --track /music/a.mp3 --track /music/b.mp3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		tracks, _ := cmd.Flags().GetStringArray("track")
		columns, _ := cmd.Flags().GetStringArray("column")

		dir := seratoDir(cmd)
		if err := os.MkdirAll(library.SubcratesDir(dir), 0o755); err != nil {
			return err
		}
		crate := cratedigger.NewCrate(tracks, columns)
		path := library.CratePath(dir, name)
		if err := crate.Save(path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s (%d tracks)\n", path, len(tracks))
		return nil
	},
}

func init() {
	createCmd.Flags().String("name", "", "Crate name, without extension")
	createCmd.Flags().StringArray("track", nil, "Track path to include (repeatable)")
	createCmd.Flags().StringArray("column", nil, "Column to display (repeatable; defaults to the standard set)")
	createCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(createCmd)
}
