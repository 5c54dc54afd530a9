package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fraserlangton/cratedigger"
	"github.com/fraserlangton/cratedigger/internal/library"
	"github.com/fraserlangton/cratedigger/internal/session"
)

// exportCSVCmd represents the export-csv command
var exportCSVCmd = &cobra.Command{
	Use:   "export-csv [session-file]",
	Short: "Export a session's play history as CSV",
	Long: `Export a session file's play events as CSV rows of start time,
end time, duration and track path. Without an argument the newest
session file in the library is used. Output goes to stdout unless -o
names a file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			var err error
			path, err = library.LatestSession(seratoDir(cmd))
			if err != nil {
				return err
			}
		}

		sess, err := cratedigger.OpenSession(path)
		if err != nil {
			return err
		}
		for _, w := range sess.Warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}

		out := os.Stdout
		if outPath, _ := cmd.Flags().GetString("output"); outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		return session.WriteCSV(out, sess.SortedEvents())
	},
}

func init() {
	exportCSVCmd.Flags().StringP("output", "o", "", "Write CSV to this file instead of stdout")
	rootCmd.AddCommand(exportCSVCmd)
}
