package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var formatName string
	var inPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse a file against a named format descriptor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(formatName, inPath, asJSON)
		},
	}
	cmd.Flags().StringVar(&formatName, "format", "", "format name (elfheader, dartsnapshot, tlvrecord)")
	cmd.Flags().StringVar(&inPath, "in", "", "input file to parse")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the parsed value as JSON instead of Go syntax")
	cmd.MarkFlagRequired("format")
	cmd.MarkFlagRequired("in")

	return cmd
}

func runParse(formatName, inPath string, asJSON bool) error {
	desc, err := lookupFormat(formatName)
	if err != nil {
		return err
	}
	log.WithField("format", formatName).Debug("resolved format descriptor")

	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inPath, err)
	}
	log.WithFields(map[string]any{"file": inPath, "bytes": len(data)}).Debug("read input")

	value, err := desc.Parse(data)
	if err != nil {
		return fmt.Errorf("parse %s as %s: %w", inPath, formatName, err)
	}
	log.Debug("parse succeeded")

	if asJSON {
		out, err := json.MarshalIndent(containerToAny(value), "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("%#v\n", value)
	return nil
}
