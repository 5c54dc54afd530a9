package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fraserlangton/cratedigger/internal/library"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the crates in the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		crates := library.ListCrates(seratoDir(cmd))
		if len(crates) == 0 {
			fmt.Println("No crates found.")
			return nil
		}
		for _, path := range crates {
			fmt.Println(library.DisplayName(path))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
