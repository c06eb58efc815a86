package main

import (
	"os"

	"github.com/ezerfernandes/mdrender/internal/cmd"
)

func main() {
	cmd.Execute(os.Args[1:], os.Stdout, os.Stderr)
}
