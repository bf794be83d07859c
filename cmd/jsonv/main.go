// Command jsonv formats, queries and converts JSON documents and derives
// default documents and type names from JSON Schemas.
package main

import (
	"log"
	"os"

	"github.com/d1ced/jsonvalue/internal/cli"
	"github.com/d1ced/jsonvalue/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, exitResult := config.Parse(os.Args)
	if exitResult != nil {
		exitResult.Print()
		return exitResult.ExitCode
	}

	logger := log.New(os.Stderr, "jsonv: ", 0)
	exitResult = cli.New(cfg, os.Stdin, logger).Run()
	exitResult.Print()
	return exitResult.ExitCode
}
