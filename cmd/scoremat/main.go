// Command scoremat lists, prints and converts substitution-score matrices.
//
//	scoremat list
//	scoremat show -matrix BLOSUM62 -shuffle ACGT
//	scoremat info -in my.mat
//	SCOREMAT_FORMAT=json scoremat show -matrix pam250
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/scoremat/internal/cli"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("scoremat: ")

	fs := flag.NewFlagSet("scoremat", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: scoremat list|show|info [flags]")
		fs.PrintDefaults()
	}
	cfg, err := cli.ParseConfig(fs, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		if errors.Is(err, cli.ErrUsage) {
			fs.Usage()
		}
		log.Fatal(err)
	}

	if err := cli.Run(context.Background(), cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
