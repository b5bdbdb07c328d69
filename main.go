package main

import "github.com/itsmostafa/spidershell/cmd"

func main() {
	cmd.Execute()
}
