// main is the entrypoint for the votetab CLI.
package main

import (
	"os"

	"github.com/huangsam/votetab/cmd"
	"github.com/huangsam/votetab/internal/contract"
	"github.com/huangsam/votetab/internal/surveystore"
)

func main() {
	// Wire the global store manager into the command layer
	cmd.SetStoreManager(surveystore.Manager)

	err := cmd.Execute()

	// Close the run store before deciding the exit code
	if closeErr := surveystore.CloseStore(); closeErr != nil {
		contract.LogWarn("Failed to close run store", closeErr)
	}

	if err != nil {
		contract.LogFatal("Command failed", err)
	}

	os.Exit(0)
}
