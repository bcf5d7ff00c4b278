// Package main prints the recipient picker panels after applying the actions
// given as arguments, e.g.
//
//	recipients select-domain=qwerty.com deselect=mike@hello.com search=ja
package main

import (
	"context"
	"flag"
	"log"
	"os"

	recipientscmd "github.com/louisbranch/recipients/internal/cmd/recipients"
	entrypoint "github.com/louisbranch/recipients/internal/platform/cmd"
)

func main() {
	if err := entrypoint.LoadDotEnv(); err != nil {
		log.Fatalf("load env: %v", err)
	}
	cfg, err := recipientscmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse args: %v", err)
	}
	if err := recipientscmd.Run(context.Background(), cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("render recipients: %v", err)
	}
}
