package main

import (
	"os"

	"github.com/hashicorp-forge/docnav/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
