// cmd/paraboladraw/main.go
package main

import (
	"github.com/Maxime2/parabola-draw/internal/appshell"
	"github.com/Maxime2/parabola-draw/internal/cli"
)

func main() { appshell.Main(cli.RunContext) }
