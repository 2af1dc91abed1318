// Command whatday prints the weekday of a date and the Doomsday calculation
// behind it.
//
// Usage:
//
//	whatday 2023 12 25
//	whatday -y 1900 -m 3 -d 1 --format json
//	whatday verify --oracle sqlite --samples 5000
package main

import (
	"fmt"
	"os"

	"github.com/zapponejosh/whatday/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
