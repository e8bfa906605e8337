package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwhitman/tonality/interval"
	"github.com/mwhitman/tonality/note"
)

func init() {
	rootCmd.AddCommand(transposeCmd)
}

var transposeCmd = &cobra.Command{
	Use:   "transpose <note> <interval>",
	Short: "Transposes a note by an interval",
	Long:  `Transposes a note by an interval, e.g. "transpose Bb3 M3" prints D4`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need 2 args...")
		}

		n, err := note.Parse(args[0])
		if err != nil {
			panic(err)
		}
		ivl, err := interval.Parse(args[1])
		if err != nil {
			panic(err)
		}

		out := n.Transpose(ivl)
		fmt.Printf("%v\n", out)
	},
}
