package main

import "github.com/fowenati/xcreview/cmd"

func main() {
	cmd.Execute()
}
