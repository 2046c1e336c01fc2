package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veloxcloud/mgmtxml/pkg/xmlcodec"
)

// NewDecodeCommand creates the decode command
func NewDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode SCHEMA [FILE]",
		Short: "Decode an XML document against a schema",
		Long: `Decode a management API XML document against a registered schema and
print the populated object. Reads from FILE, or stdin when FILE is omitted
or "-".`,
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

			inst, err := xmlcodec.Deserialize(data, schema)
			if err != nil {
				return fmt.Errorf("decoding %s: %w", schema.Name, err)
			}

			return writeObject(cmd, inst.Map())
		},
	}
}
