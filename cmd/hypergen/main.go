package main

import "github.com/katalvlaran/hypergen/cmd/hypergen/cmd"

func main() {
	cmd.Execute()
}
