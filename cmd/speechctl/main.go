// Package main provides speechctl, a small client for the Mapbox Voice API.
//
// Usage:
//
//	speechctl [flags] <command>
//
// Commands:
//
//	url     - print the request URL for a text
//	synth   - synthesize a text into an audio file
//	voices  - list the voice catalog
//
// The access token is read from MAPBOX_ACCESS_TOKEN, which may be set in a
// .env file.
package main

import (
	"fmt"
	"os"

	"github.com/lemon-mint/coord/cmd/speechctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
