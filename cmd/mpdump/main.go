// Command mpdump parses a multipart body and prints its parts as JSON.
//
//	mpdump -content-type 'multipart/form-data; boundary=xyz' body.bin
//	mpdump -demo | mpdump -boundary <boundary printed to stderr>
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	default:
		fmt.Fprintf(os.Stderr, "mpdump: %v\n", err)
		os.Exit(1)
	}
}
