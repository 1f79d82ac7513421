package main

import (
	"fmt"
	"io"

	"github.com/example/go-bib-tts/internal/bib"
	"github.com/example/go-bib-tts/internal/describe"
	"github.com/spf13/cobra"
)

func newDescribeCmd() *cobra.Command {
	var keys []string

	cmd := &cobra.Command{
		Use:   "describe <bibfile>",
		Short: "Print the spoken-form description of each record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribeCommand(args[0], keys, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringArrayVar(&keys, "key", nil, "Limit output to the given record keys (repeatable)")

	return cmd
}

func runDescribeCommand(bibFile string, keys []string, stdout io.Writer) error {
	lib, err := bib.Load(bibFile)
	if err != nil {
		return err
	}
	logGaps(lib)

	descriptions := describe.All(lib)

	if len(keys) == 0 {
		keys = lib.Keys()
	}
	for _, key := range keys {
		desc, ok := descriptions[key]
		if !ok {
			return fmt.Errorf("unknown record key %q", key)
		}
		_, _ = fmt.Fprintf(stdout, "%s: %s\n", key, desc)
	}

	return nil
}
