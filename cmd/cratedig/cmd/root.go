package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fraserlangton/cratedigger/internal/library"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cratedig",
	Short: "Inspect and edit Serato crate and session files",
	Long: `cratedig reads and writes the binary crate files Serato DJ keeps
under its library directory, and reads the play-history session files
it records while you mix.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("serato-dir", library.DefaultDir(), "Serato library directory")
}

// seratoDir resolves the library directory for a command invocation.
func seratoDir(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("serato-dir")
	return dir
}
