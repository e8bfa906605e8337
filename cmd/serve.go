package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/mwhitman/tonality/constants"
	"github.com/mwhitman/tonality/interval"
	"github.com/mwhitman/tonality/key"
	"github.com/mwhitman/tonality/model"
	"github.com/mwhitman/tonality/note"
	"github.com/mwhitman/tonality/pitch"
	"github.com/mwhitman/tonality/scale"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the theory api over http",
	Long:  `Serves the theory api over http`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandleTranspose(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "Could not read request body")
		return
	}

	var input model.TransposeRequest
	err = json.Unmarshal(reqBody, &input)
	if err != nil {
		writeError(w, 400, "Could not unmarshal request body: "+err.Error())
		return
	}

	n, err := note.Parse(input.Note)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}
	ivl, err := interval.Parse(input.Interval)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	out := n.Transpose(ivl)
	res := model.TransposeResponse{
		Note:      out.String(),
		Frequency: out.Frequency(),
	}
	if m, err := out.MIDI(); err == nil {
		res.Midi = &m
	}
	json.NewEncoder(w).Encode(res)
}

func HandleKey(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	k, err := key.Parse(name)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	res := model.KeyResponse{
		Key:    k.String(),
		Sharps: k.Sharps(),
	}
	for _, p := range k.Alterations() {
		res.Alterations = append(res.Alterations, p.String())
	}
	for _, p := range k.Scale().Degrees() {
		res.Degrees = append(res.Degrees, p.String())
	}
	if rel, ok := k.Relative(); ok {
		res.Relative = rel.String()
	}
	json.NewEncoder(w).Encode(res)
}

func HandleScale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	root, err := pitch.Parse(vars["root"])
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}
	pattern, ok := scale.ByName(vars["name"])
	if !ok {
		writeError(w, 400, fmt.Sprintf("unknown pattern %q", vars["name"]))
		return
	}

	s := scale.Rooted[pitch.Pitch]{Root: root, Pattern: pattern}
	res := model.ScaleResponse{
		Root:    root.String(),
		Pattern: vars["name"],
	}
	for _, p := range s.Degrees() {
		res.Degrees = append(res.Degrees, p.String())
	}
	json.NewEncoder(w).Encode(res)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/transpose", HandleTranspose).Methods("POST")
	router.HandleFunc("/key/{name}", HandleKey).Methods("GET")
	router.HandleFunc("/scale/{root}/{name}", HandleScale).Methods("GET")

	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":"+constants.GetPort(), handler))
}
