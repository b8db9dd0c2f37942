package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var errorPrefix = color.New(color.FgRed, color.Bold).Sprint("error:")

func main() {
	root := &cobra.Command{
		Use:           "trebuchet",
		Short:         "Compute the calibration checksum of a document of digit-bearing lines",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(newSumCmd())

	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, errorPrefix, ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, errorPrefix, err)
		os.Exit(1)
	}
}
