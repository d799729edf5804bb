package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSizeofCmd() *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:   "sizeof",
		Short: "Print the fixed byte size of a named format descriptor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSizeof(formatName)
		},
	}
	cmd.Flags().StringVar(&formatName, "format", "", "format name (elfheader, dartsnapshot, tlvrecord)")
	cmd.MarkFlagRequired("format")

	return cmd
}

func runSizeof(formatName string) error {
	desc, err := lookupFormat(formatName)
	if err != nil {
		return err
	}
	n, err := desc.SizeOf()
	if err != nil {
		return fmt.Errorf("sizeof %s: %w", formatName, err)
	}
	fmt.Println(n)
	return nil
}
