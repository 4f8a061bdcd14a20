// Command toolcall serves the built-in demo tools over a CLI, HTTP or MCP.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
