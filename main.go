// main is the entrypoint for the pepalyzer CLI.
package main

import (
	"github.com/huangsam/pepalyzer/cmd"
	"github.com/huangsam/pepalyzer/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Cannot run pepalyzer", err)
	}
}
