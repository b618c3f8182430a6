// Command careerctl runs schema, catalog and roadmap maintenance against the configured database.
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
