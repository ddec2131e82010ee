package main

import "grove/cmd/grove-cli/cmd"

func main() {
	cmd.Execute()
}
