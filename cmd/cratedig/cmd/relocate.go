package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fraserlangton/cratedigger"
	"github.com/fraserlangton/cratedigger/internal/library"
)

// relocateCmd represents the relocate command
var relocateCmd = &cobra.Command{
	Use:   "relocate",
	Short: "Point crate track paths at a new directory",
	Long: `Rewrite the track paths of matching crates so they point into a
new directory, keeping each track's filename. Only crates whose name
contains the match text are touched, and only crates with at least one
changed path are rewritten on disk.

Example:
  cratedig relocate --to-dir /music/soundcloud/CACHE`,
	RunE: func(cmd *cobra.Command, args []string) error {
		toDir, _ := cmd.Flags().GetString("to-dir")
		match, _ := cmd.Flags().GetString("match")
		match = strings.ToLower(match)

		var rewritten, unchanged, failed int
		for _, path := range library.ListCrates(seratoDir(cmd)) {
			if !strings.Contains(strings.ToLower(filepath.Base(path)), match) {
				continue
			}
			crate, err := cratedigger.OpenCrate(path)
			if err != nil {
				fmt.Printf("skipping %s: %v\n", library.DisplayName(path), err)
				failed++
				continue
			}
			changed := crate.RewriteTrackPaths(func(track string) string {
				if !strings.Contains(strings.ToLower(track), match) {
					return track
				}
				return filepath.Join(toDir, filepath.Base(track))
			})
			if !changed {
				unchanged++
				continue
			}
			if err := crate.Save(path); err != nil {
				fmt.Printf("failed to write %s: %v\n", library.DisplayName(path), err)
				failed++
				continue
			}
			fmt.Printf("rewrote %s\n", library.DisplayName(path))
			rewritten++
		}

		fmt.Printf("%d crates rewritten, %d unchanged, %d failed\n", rewritten, unchanged, failed)
		if failed > 0 {
			return fmt.Errorf("%d crates failed", failed)
		}
		return nil
	},
}

func init() {
	relocateCmd.Flags().String("to-dir", "", "Directory the matched tracks now live in")
	relocateCmd.Flags().String("match", "soundcloud", "Only touch crates and paths containing this text")
	relocateCmd.MarkFlagRequired("to-dir")
	rootCmd.AddCommand(relocateCmd)
}
