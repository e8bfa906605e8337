package model

type ExportRecord struct {
	Filename string
	Tempo    uint
	NumNotes uint
}
