package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/appletreecy/job-match-task/internal/cli"
)

// Version information (set by build script)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	// Optional .env for JOBMATCH_* overrides
	_ = godotenv.Load()

	cli.SetVersionInfo(Version, Commit, BuildTime)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
