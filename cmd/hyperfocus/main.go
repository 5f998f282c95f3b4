package main

import "github.com/emiliopalmerini/hyperfocus/internal/cli"

func main() {
	cli.Execute()
}
