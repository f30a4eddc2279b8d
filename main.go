package main

import "github.com/systematikdata/ordermix-cli/cmd"

func main() {
	cmd.Execute()
}
