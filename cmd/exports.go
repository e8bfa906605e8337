package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwhitman/tonality/db"
)

func init() {
	rootCmd.AddCommand(exportsCmd)
}

var exportsCmd = &cobra.Command{
	Use:   "exports <filename>...",
	Short: "Looks up recorded exports",
	Long:  `Looks up export records in the db by filename, e.g. "exports a1b2.mid"`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			panic("Need at least 1 filename...")
		}
		if len(args) > 10 {
			panic("Can only look up 10 filenames at a time...")
		}

		records := db.GetExportRecords(args)
		for _, filename := range args {
			rec, ok := records[filename]
			if !ok {
				fmt.Printf("%v: not recorded\n", filename)
				continue
			}
			fmt.Printf("%v: %v notes at %v bpm\n", rec.Filename, rec.NumNotes, rec.Tempo)
		}
	},
}
