package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veloxcloud/mgmtxml/pkg/xmlcodec"
)

// ErrRoundTripMismatch reports a document that decodes cleanly but does not
// survive re-encoding, which means the schema is losing information.
var ErrRoundTripMismatch = errors.New("document did not survive a round trip")

// NewRoundtripCommand creates the roundtrip command
func NewRoundtripCommand() *cobra.Command {
	var emit bool

	cmd := &cobra.Command{
		Use:   "roundtrip SCHEMA [FILE]",
		Short: "Verify a document survives decode and re-encode",
		Long: `Decode a management API XML document, re-encode it, decode the result,
and verify both decoded objects are equal. Useful for validating a schema
against real API samples.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := lookupSchema(args[0])
			if err != nil {
				return err
			}

			path := ""
			if len(args) == 2 {
				path = args[1]
			}

			data, err := readInput(path)
			if err != nil {
				return err
			}

			first, err := xmlcodec.Deserialize(data, schema)
			if err != nil {
				return fmt.Errorf("decoding %s: %w", schema.Name, err)
			}

			body, err := xmlcodec.Marshal(first)
			if err != nil {
				return fmt.Errorf("re-encoding %s: %w", schema.Name, err)
			}

			second, err := xmlcodec.Deserialize(body, schema)
			if err != nil {
				return fmt.Errorf("decoding re-encoded %s: %w", schema.Name, err)
			}

			if !first.Equal(second) {
				return fmt.Errorf("%w: schema %s", ErrRoundTripMismatch, schema.Name)
			}

			if emit {
				fmt.Fprintln(cmd.OutOrStdout(), string(body))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "OK: %s round-trips\n", schema.Name)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&emit, "emit", false, "print the re-encoded document instead of a summary")

	return cmd
}
