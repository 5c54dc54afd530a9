package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fraserlangton/cratedigger/internal/monitor"
)

// monitorCmd represents the monitor command
var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Watch the decks live",
	Long: `Watch the newest session file and print what is playing on each
deck whenever it changes. Saved good pairs for the playing track are
listed under it. Interrupt to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		interval, _ := cmd.Flags().GetDuration("interval")
		pairsPath, _ := cmd.Flags().GetString("pairs")

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		pairs := monitor.OpenPairStore(pairsPath)
		poller := &monitor.Poller{Dir: seratoDir(cmd), Interval: interval}
		for snap := range poller.Run(ctx) {
			fmt.Print("\033[H\033[J")
			fmt.Println("----------------------------------------")
			fmt.Printf("Session: %s\n", filepath.Base(snap.SessionPath))
			fmt.Println("----------------------------------------")
			printDeck("Deck 1", snap.Deck1, pairs)
			fmt.Println("--------------------")
			printDeck("Deck 2", snap.Deck2, pairs)
			fmt.Println("----------------------------------------")
		}
		return nil
	},
}

func printDeck(label string, track *monitor.Track, pairs *monitor.PairStore) {
	if track == nil {
		fmt.Printf("%s: (none)\n", label)
		return
	}
	fmt.Printf("%s (%s):\n", label, agoString(time.Since(time.Unix(track.Start, 0))))
	if track.Key != "" {
		fmt.Printf("  [%s] %s\n", track.Key, track.Title)
	} else {
		fmt.Printf("  %s\n", track.Title)
	}
	for _, p := range pairs.For(track) {
		if p.Key != "" {
			fmt.Printf("    -> [%s] %s\n", p.Key, p.Title)
		} else {
			fmt.Printf("    -> %s\n", p.Title)
		}
	}
}

func agoString(ago time.Duration) string {
	switch {
	case ago < time.Minute:
		return fmt.Sprintf("%ds ago", int(ago.Seconds()))
	case ago < time.Hour:
		return fmt.Sprintf("%dm ago", int(ago.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(ago.Hours()))
	}
}

func init() {
	monitorCmd.Flags().Duration("interval", monitor.DefaultInterval, "Poll interval")
	monitorCmd.Flags().String("pairs", "good_pairs.json", "Good-pairs file")
	rootCmd.AddCommand(monitorCmd)
}
