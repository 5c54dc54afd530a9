package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fraserlangton/cratedigger/internal/monitor"
)

// pairCmd represents the pair command
var pairCmd = &cobra.Command{
	Use:   "pair",
	Short: "Save the current deck tracks as a good pair",
	Long: `Record that the tracks loaded on deck 1 and deck 2 right now mix
well together. Both decks must have a track playing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pairsPath, _ := cmd.Flags().GetString("pairs")

		poller := &monitor.Poller{Dir: seratoDir(cmd)}
		snap, err := poller.Poll()
		if err != nil {
			return err
		}
		if snap.Deck1 == nil || snap.Deck2 == nil {
			return fmt.Errorf("need two tracks playing to pair")
		}

		pairs := monitor.OpenPairStore(pairsPath)
		if err := pairs.Save(snap.Deck1, snap.Deck2); err != nil {
			return err
		}
		fmt.Printf("Saved pair:\n  1: %s - %s\n  2: %s - %s\n",
			snap.Deck1.Artist, snap.Deck1.Title,
			snap.Deck2.Artist, snap.Deck2.Title)
		return nil
	},
}

func init() {
	pairCmd.Flags().String("pairs", "good_pairs.json", "Good-pairs file")
	rootCmd.AddCommand(pairCmd)
}
