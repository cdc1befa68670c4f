package main

import (
	"log"
	"os"

	"jira-dashboard/internal/application"
)

// version is injected via ldflags at build time.
var version = "dev"

func main() {
	log.SetFlags(0)

	cmd := application.NewRootCommand(version)
	if err := cmd.Execute(); err != nil {
		// Typed failures already carry full context (status, URL, body
		// excerpt, offending argument); surface them as-is.
		log.Print(application.RenderError(err))
		os.Exit(1)
	}
}
