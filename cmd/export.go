package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mwhitman/tonality/constants"
	"github.com/mwhitman/tonality/db"
	"github.com/mwhitman/tonality/midi"
	"github.com/mwhitman/tonality/model"
	"github.com/mwhitman/tonality/note"
)

var exportTempo float64
var exportOut string
var exportRecord bool

func init() {
	exportCmd.Flags().Float64Var(&exportTempo, "tempo", constants.DefaultTempo, "tempo in bpm")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output path, defaults to a generated name in the export dir")
	exportCmd.Flags().BoolVar(&exportRecord, "record", false, "record the export in the db")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <note>...",
	Short: "Writes notes to a midi file",
	Long:  `Writes notes to a midi file as quarter notes, e.g. "export C4 E4 G4"`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			panic("Need at least 1 note...")
		}

		notes := make([]note.Note, 0, len(args))
		for _, arg := range args {
			n, err := note.Parse(arg)
			if err != nil {
				panic(err)
			}
			notes = append(notes, n)
		}

		path := exportOut
		if path == "" {
			if err := os.MkdirAll(constants.GetExportDir(), 0755); err != nil {
				panic("Could not create export dir: " + err.Error())
			}
			path = filepath.Join(constants.GetExportDir(), uuid.New().String()+".mid")
		}

		if err := midi.WriteSequence(path, notes, exportTempo); err != nil {
			panic("Could not write midi file: " + err.Error())
		}

		if exportRecord {
			db.PutExportRecord(model.ExportRecord{
				Filename: filepath.Base(path),
				Tempo:    uint(exportTempo),
				NumNotes: uint(len(notes)),
			})
		}

		fmt.Printf("wrote %v\n", path)
	},
}
