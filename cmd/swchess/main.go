// Command swchess is the interactive board viewer. It reads menu commands
// from stdin and writes boards and reports to stdout.
package main

import (
	"fmt"
	"os"

	swchess "swchess/pkg/swchess"
)

func main() {
	if err := swchess.MainMenu(os.Stdin, os.Stdout, swchess.OpenFile); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
