package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	var formatName string
	var inPath string
	var outPath string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build bytes from a JSON value against a named format descriptor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(formatName, inPath, outPath)
		},
	}
	cmd.Flags().StringVar(&formatName, "format", "", "format name (elfheader, dartsnapshot, tlvrecord)")
	cmd.Flags().StringVar(&inPath, "in", "", "input JSON file describing the value to build")
	cmd.Flags().StringVar(&outPath, "out", "", "output file for the built bytes (default: stdout)")
	cmd.MarkFlagRequired("format")
	cmd.MarkFlagRequired("in")

	return cmd
}

func runBuild(formatName, inPath, outPath string) error {
	desc, err := lookupFormat(formatName)
	if err != nil {
		return err
	}
	log.WithField("format", formatName).Debug("resolved format descriptor")

	raw, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inPath, err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	value := anyToContainerValue(parsed)
	log.Debug("decoded json input")

	data, err := desc.Build(value)
	if err != nil {
		return fmt.Errorf("build %s: %w", formatName, err)
	}
	log.WithField("bytes", len(data)).Debug("build succeeded")

	if outPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}
