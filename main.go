package main

import "github.com/brogergvhs/cometdom/cmd"

func main() {
	cmd.Execute()
}
