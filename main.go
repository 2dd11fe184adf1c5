package main

import "github.com/7248-om/gshock12/cmd"

func main() {
	cmd.Execute()
}
