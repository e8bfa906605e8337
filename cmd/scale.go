package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwhitman/tonality/pitch"
	"github.com/mwhitman/tonality/scale"
)

func init() {
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <root> <pattern>",
	Short: "Spells a scale from a root",
	Long:  `Spells a scale from a root, e.g. "scale D harmonic-minor"`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need 2 args...")
		}

		root, err := pitch.Parse(args[0])
		if err != nil {
			panic(err)
		}
		pattern, ok := scale.ByName(args[1])
		if !ok {
			panic("Unknown pattern, try one of: " + strings.Join(scale.Names(), ", "))
		}

		s := scale.Rooted[pitch.Pitch]{Root: root, Pattern: pattern}
		for _, p := range s.Degrees() {
			fmt.Printf("%v ", p)
		}
		fmt.Println()
	},
}
