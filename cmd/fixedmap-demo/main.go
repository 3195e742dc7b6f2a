// Command fixedmap-demo walks through the FixedMap API and prints the map
// after every step.
package main

import (
	"log"
	"os"

	"github.com/jessevdk/go-flags"
)

func main() {
	opts := &Options{}

	parser := flags.NewParser(opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return
		}
		// flags already printed the message
		os.Exit(1)
	}

	if err := run(os.Stdout, opts); err != nil {
		log.Fatalf("%v", err)
	}
}
