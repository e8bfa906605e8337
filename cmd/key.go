package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwhitman/tonality/key"
)

func init() {
	rootCmd.AddCommand(keyCmd)
}

var keyCmd = &cobra.Command{
	Use:   "key <tonic> [mode]",
	Short: "Shows a key's signature and scale",
	Long:  `Shows a key's signature and scale, e.g. "key C# minor"`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			panic("Need at least 1 arg...")
		}

		k, err := key.Parse(strings.Join(args, " "))
		if err != nil {
			panic(err)
		}

		fmt.Printf("key: %v\n", k)
		fmt.Printf("sharps: %v\n", k.Sharps())
		fmt.Printf("alterations: %v\n", k.Alterations())
		for i, p := range k.Scale().Degrees() {
			fmt.Printf("%v: %v\n", key.Degree(i+1), p)
		}
		if rel, ok := k.Relative(); ok {
			fmt.Printf("relative: %v\n", rel)
		}
	},
}
