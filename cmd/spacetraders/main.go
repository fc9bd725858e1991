package main

import (
	"github.com/spacetraders/client-go/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
