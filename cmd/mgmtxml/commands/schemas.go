package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/veloxcloud/mgmtxml/pkg/mgmt"
)

// NewSchemasCommand creates the schemas command
func NewSchemasCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schemas",
		Short: "List registered resource schemas",
		Long:  "List the resource schemas available for decode, encode, and roundtrip",
		RunE: func(cmd *cobra.Command, args []string) error {
			type SchemaInfo struct {
				Name   string   `json:"name"   yaml:"name"`
				Fields []string `json:"fields" yaml:"fields"`
			}

			infos := make([]SchemaInfo, 0, len(mgmt.Names()))

			for _, name := range mgmt.Names() {
				schema, _ := mgmt.Lookup(name)
				fields := make([]string, len(schema.Fields))

				for i := range schema.Fields {
					fields[i] = schema.Fields[i].Name
				}

				infos = append(infos, SchemaInfo{Name: name, Fields: fields})
			}

			if viper.GetString("output") == "table" {
				table := tablewriter.NewWriter(cmd.OutOrStdout())
				table.Header("Schema", "Fields", "Field Names")

				for _, info := range infos {
					_ = table.Append(info.Name, strconv.Itoa(len(info.Fields)), strings.Join(info.Fields, ", "))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}

			return writeObject(cmd, infos)
		},
	}
}
