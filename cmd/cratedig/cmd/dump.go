package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fraserlangton/cratedigger"
	"github.com/fraserlangton/cratedigger/internal/library"
	"github.com/fraserlangton/cratedigger/internal/tlv"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump <crate>",
	Short: "Dump a crate's raw decoded tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := library.FindCrate(seratoDir(cmd), args[0])
		if err != nil {
			return err
		}
		crate, err := cratedigger.OpenCrate(path)
		if err != nil {
			return err
		}
		dumpChildren(crate.Children, 0)
		for _, w := range crate.Warnings {
			fmt.Printf("Warning: %s\n", w)
		}
		return nil
	},
}

func dumpChildren(children []cratedigger.Child, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, c := range children {
		switch c.Value.Kind {
		case tlv.KindContainer:
			fmt.Printf("%s%s:\n", indent, c.Tag)
			dumpChildren(c.Value.Children, depth+1)
		case tlv.KindText:
			fmt.Printf("%s%s: %q\n", indent, c.Tag, c.Value.Text)
		case tlv.KindUInt:
			fmt.Printf("%s%s: %d\n", indent, c.Tag, c.Value.UInt)
		default:
			fmt.Printf("%s%s: %d raw bytes (%x)\n", indent, c.Tag, len(c.Value.Raw), c.Value.Raw)
		}
	}
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
