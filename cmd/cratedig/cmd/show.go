package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fraserlangton/cratedigger"
	"github.com/fraserlangton/cratedigger/internal/library"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <crate>",
	Short: "Show a crate's metadata and track list",
	Long: `Show a crate's version, columns and tracks. The crate name is
matched loosely: exact name, soundcloud-prefixed name, or any crate
whose filename contains the given text.

Example:
  cratedig show "tech support"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")

		path, err := library.FindCrate(seratoDir(cmd), args[0])
		if err != nil {
			return err
		}
		crate, err := cratedigger.OpenCrate(path)
		if err != nil {
			return err
		}

		fmt.Printf("Crate: %s\n", library.DisplayName(path))
		if v := crate.Version(); v != "" {
			fmt.Printf("Version: %s\n", v)
		}
		if cols := crate.Columns(); len(cols) > 0 {
			fmt.Printf("Columns: %s\n", strings.Join(cols, ", "))
		}
		for _, w := range crate.Warnings {
			fmt.Printf("Warning: %s\n", w)
		}

		tracks := crate.TrackPaths()
		fmt.Printf("\nTracks (%d):\n", len(tracks))
		for i, track := range tracks {
			if verbose {
				fmt.Printf("%3d. %s\n", i+1, track)
			} else {
				fmt.Printf("%3d. %s\n", i+1, filepath.Base(track))
			}
		}
		return nil
	},
}

func init() {
	showCmd.Flags().BoolP("verbose", "v", false, "Print full track paths")
	rootCmd.AddCommand(showCmd)
}
