package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/veloxcloud/mgmtxml/pkg/xmlcodec"
)

// NewWireNameCommand creates the wirename command
func NewWireNameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "wirename FIELD...",
		Short: "Show the wire element name for field identifiers",
		Long:  "Show how snake_case field identifiers map to wire element names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if viper.GetString("output") == "table" {
				table := tablewriter.NewWriter(cmd.OutOrStdout())
				table.Header("Field", "Wire Name")

				for _, field := range args {
					_ = table.Append(field, xmlcodec.WireName(field))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}

			names := make(map[string]string, len(args))
			for _, field := range args {
				names[field] = xmlcodec.WireName(field)
			}

			return writeObject(cmd, names)
		},
	}
}
