package main

import (
	"os"

	"github.com/hashicorp-forge/discourse-client/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
