package main

import "github.com/evelant/rune/cmd"

func main() {
	cmd.Execute()
}
