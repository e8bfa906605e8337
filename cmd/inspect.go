package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwhitman/tonality/midi"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Inspects a midi file",
	Long:  `Inspects a midi file, printing its notes`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	notes, err := midi.ReadNotes(path)
	if err != nil {
		panic(err)
	}

	for _, n := range notes {
		m, _ := n.MIDI()
		fmt.Printf("note: %v midi: %v freq: %.2f\n", n, m, n.Frequency())
	}
}
