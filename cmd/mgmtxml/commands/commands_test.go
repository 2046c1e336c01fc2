package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestNewDecodeCommand(t *testing.T) {
	cmd := NewDecodeCommand()
	assert.Equal(t, "decode SCHEMA [FILE]", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)
}

func TestDecodeCommand(t *testing.T) {
	viper.Set("output", "yaml")
	defer viper.Reset()

	path := writeTempFile(t, "deployment.xml",
		`<Deployment><Name>dep1</Name><Locked>true</Locked></Deployment>`)

	out, err := runCommand(t, NewDecodeCommand(), "Deployment", path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "dep1", decoded["name"])
	assert.Equal(t, true, decoded["locked"])
}

func TestDecodeCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		schema  string
		content string
		errText string
	}{
		{
			name:    "unknown schema",
			schema:  "NoSuchSchema",
			content: `<Deployment/>`,
			errText: "unknown schema",
		},
		{
			name:    "malformed xml",
			schema:  "Deployment",
			content: `<Deployment><Name>`,
			errText: "malformed xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "input.xml", tt.content)

			_, err := runCommand(t, NewDecodeCommand(), tt.schema, path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestEncodeCommand(t *testing.T) {
	path := writeTempFile(t, "deployment.yml", "name: dep1\nlocked: true\n")

	out, err := runCommand(t, NewEncodeCommand(), "Deployment", path)
	require.NoError(t, err)
	assert.Contains(t, out, "<Deployment>")
	assert.Contains(t, out, "<Name>dep1</Name>")
	assert.Contains(t, out, "<Locked>true</Locked>")
}

func TestEncodeCommandRejectsUnknownField(t *testing.T) {
	path := writeTempFile(t, "deployment.yml", "bogus_field: x\n")

	_, err := runCommand(t, NewEncodeCommand(), "Deployment", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field")
}

func TestRoundtripCommand(t *testing.T) {
	path := writeTempFile(t, "deployment.xml",
		`<Deployment><Name>dep1</Name><RoleList><Role><RoleName>r1</RoleName></Role></RoleList></Deployment>`)

	out, err := runCommand(t, NewRoundtripCommand(), "Deployment", path)
	require.NoError(t, err)
	assert.Contains(t, out, "OK: Deployment round-trips")
}

func TestRoundtripCommandEmit(t *testing.T) {
	path := writeTempFile(t, "deployment.xml", `<Deployment><Name>dep1</Name></Deployment>`)

	out, err := runCommand(t, NewRoundtripCommand(), "Deployment", path, "--emit")
	require.NoError(t, err)
	assert.Contains(t, out, "<Name>dep1</Name>")
}

func TestWireNameCommand(t *testing.T) {
	viper.Set("output", "yaml")
	defer viper.Reset()

	out, err := runCommand(t, NewWireNameCommand(), "content_md5", "role_name")
	require.NoError(t, err)

	var names map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &names))
	assert.Equal(t, "Content-MD5", names["content_md5"])
	assert.Equal(t, "RoleName", names["role_name"])
}

func TestSchemasCommand(t *testing.T) {
	viper.Set("output", "yaml")
	defer viper.Reset()

	out, err := runCommand(t, NewSchemasCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "Deployment")
	assert.Contains(t, out, "HostedService")
}

func TestVersionCommand(t *testing.T) {
	viper.Set("output", "yaml")
	defer viper.Reset()

	out, err := runCommand(t, NewVersionCommand("1.2.3", "abc123", "today"))
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abc123")
}
