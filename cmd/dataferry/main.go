// Command dataferry runs the producer-consumer transfer pipeline and
// the shopping-statistics batch job.
package main

import (
	"os"

	"github.com/lancemnguyen/dataferry/errors"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(errors.ExitCode(err))
	}
}
