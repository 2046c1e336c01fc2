package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/veloxcloud/mgmtxml/pkg/mgmt"
	"github.com/veloxcloud/mgmtxml/pkg/xmlcodec"
)

// readInput reads a file argument, treating "-" (or no argument) as stdin.
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return data, nil
}

// lookupSchema resolves a schema name against the registry.
func lookupSchema(name string) (*xmlcodec.Schema, error) {
	schema, ok := mgmt.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown schema %q (try 'mgmtxml schemas')", name)
	}

	return schema, nil
}

// writeObject renders v to the command's output in the configured format.
// Table rendering is caller-specific, so "table" falls back to yaml here.
func writeObject(cmd *cobra.Command, v any) error {
	switch viper.GetString("output") {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")

		return encoder.Encode(v)
	default:
		encoder := yaml.NewEncoder(cmd.OutOrStdout())

		return encoder.Encode(v)
	}
}
