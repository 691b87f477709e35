package main

import (
	"os"

	"github.com/Anirach/ncd-health-plus/interfaces/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
