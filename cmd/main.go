package main

import (
	"scriptherder.io/cli/internal/interfaces/cli"
	"scriptherder.io/cli/internal/interfaces/di"
)

func main() {
	container := di.NewContainer()
	cli.Execute(container.CLI)
}
