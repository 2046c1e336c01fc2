package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/veloxcloud/mgmtxml/pkg/xmlcodec"
)

// NewEncodeCommand creates the encode command
func NewEncodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encode SCHEMA [FILE]",
		Short: "Encode a yaml object as schema XML",
		Long: `Build an instance of a registered schema from a yaml document and print
its XML encoding. Reads from FILE, or stdin when FILE is omitted or "-".`,
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

			var fields map[string]any
			if err := yaml.Unmarshal(data, &fields); err != nil {
				return fmt.Errorf("parsing yaml input: %w", err)
			}

			inst, err := xmlcodec.FromMap(schema, fields)
			if err != nil {
				return fmt.Errorf("building %s: %w", schema.Name, err)
			}

			body, err := xmlcodec.Marshal(inst)
			if err != nil {
				return fmt.Errorf("encoding %s: %w", schema.Name, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(body))

			return nil
		},
	}
}
