package xmlcodec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDocument(t *testing.T) {
	doc, err := BuildDocument("CreateHostedService", []DocField{
		{Name: "ServiceName", Value: "svc-1"},
		{Name: "Label", Value: "my service", Convert: Base64Text},
		{Name: "Description", Value: nil},
		{Name: "Location", Value: "West Europe"},
	}, map[string]string{
		"tier":  "gold",
		"owner": "ops",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, `<?xml version="1.0" encoding="utf-8"?>`))
	assert.Contains(t, doc, `<CreateHostedService xmlns:i="http://www.w3.org/2001/XMLSchema-instance" xmlns="http://schemas.microsoft.com/windowsazure">`)
	assert.Contains(t, doc, "<ServiceName>svc-1</ServiceName>")
	assert.Contains(t, doc, "<Label>bXkgc2VydmljZQ==</Label>")
	assert.Contains(t, doc, "<Location>West Europe</Location>")
	assert.NotContains(t, doc, "<Description>")

	// Extended properties are emitted in sorted key order.
	owner := strings.Index(doc, "<ExtendedProperty><Name>owner</Name><Value>ops</Value></ExtendedProperty>")
	tier := strings.Index(doc, "<ExtendedProperty><Name>tier</Name><Value>gold</Value></ExtendedProperty>")
	require.GreaterOrEqual(t, owner, 0)
	require.GreaterOrEqual(t, tier, 0)
	assert.Less(t, owner, tier)
}

func TestBuildDocumentWithoutExtendedProperties(t *testing.T) {
	doc, err := BuildDocument("StartRoleOperation", []DocField{
		{Name: "OperationType", Value: "StartRoleOperation"},
	}, nil)
	require.NoError(t, err)

	assert.Contains(t, doc, "<OperationType>StartRoleOperation</OperationType>")
	assert.NotContains(t, doc, "ExtendedProperties")
}

func TestBuildDocumentValueFormatting(t *testing.T) {
	doc, err := BuildDocument("Probe", []DocField{
		{Name: "Enabled", Value: true},
		{Name: "Port", Value: 443},
		{Name: "Note", Value: ""},
	}, nil)
	require.NoError(t, err)

	assert.Contains(t, doc, "<Enabled>true</Enabled>")
	assert.Contains(t, doc, "<Port>443</Port>")
	// Empty strings are present values, unlike nil.
	assert.Contains(t, doc, "<Note/>")
}

func TestBuildDocumentEscapesText(t *testing.T) {
	doc, err := BuildDocument("CreateHostedService", []DocField{
		{Name: "Description", Value: `a <b> & "c"`},
	}, nil)
	require.NoError(t, err)

	assert.Contains(t, doc, "<Description>a &lt;b&gt; &amp; ")
	assert.NotContains(t, doc, "<Description>a <b>")
}

func TestDataToXML(t *testing.T) {
	fragment, err := DataToXML([]DocField{
		{Name: "RoleName", Value: "web-0"},
		{Name: "RoleSize", Value: nil},
		{Name: "Lun", Value: 3},
	})
	require.NoError(t, err)

	assert.Equal(t, "<RoleName>web-0</RoleName><Lun>3</Lun>", fragment)
}
