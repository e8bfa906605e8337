package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tonality",
	Short: "Music theory toolbox",
	Long:  `Music theory toolbox: transpose notes, look up keys and scales, read and write midi.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
