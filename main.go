package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/odpf/digits/cmd"
)

var errRequestFail = errors.New("unable to complete request successfully")

func main() {
	command := cmd.New()

	if err := command.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errRequestFail)
		os.Exit(1)
	}
}
