package main

import "github.com/mwhitman/tonality/cmd"

func main() {
	cmd.Execute()
}
