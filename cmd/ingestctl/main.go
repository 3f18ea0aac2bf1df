// Command ingestctl runs the upload and processing handlers from a shell
// against the configured bucket and table, outside of Lambda.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
