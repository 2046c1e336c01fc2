package xmlcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWireName(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		expected string
	}{
		{
			name:     "plain snake case",
			field:    "role_name",
			expected: "RoleName",
		},
		{
			name:     "single segment",
			field:    "status",
			expected: "Status",
		},
		{
			name:     "exception table md5",
			field:    "content_md5",
			expected: "Content-MD5",
		},
		{
			name:     "exception table subscription id",
			field:    "subscription_id",
			expected: "SubscriptionID",
		},
		{
			name:     "exception table os",
			field:    "os",
			expected: "OS",
		},
		{
			name:     "exception table fqdn",
			field:    "fqdn",
			expected: "FQDN",
		},
		{
			name:     "exception table disk size",
			field:    "logical_disk_size_in_gb",
			expected: "LogicalDiskSizeInGB",
		},
		{
			name:     "header style prefix",
			field:    "x_ms_version",
			expected: "x-ms-version",
		},
		{
			name:     "trailing id",
			field:    "affinity_group_id",
			expected: "AffinityGroupID",
		},
		{
			name:     "deployment slot",
			field:    "deployment_slot",
			expected: "DeploymentSlot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WireName(tt.field))
		})
	}
}

func TestWireNameDeterministic(t *testing.T) {
	fields := []string{"content_md5", "fqdn", "x_ms_version", "role_name", "subscription_id"}

	for _, field := range fields {
		first := WireName(field)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, WireName(field))
		}
	}
}

func TestWireNameExceptionsBypassGenericRule(t *testing.T) {
	// Entries in the exception table must win over the PascalCase rule even
	// when both could apply.
	assert.NotEqual(t, "ContentMd5", WireName("content_md5"))
	assert.NotEqual(t, "Fqdn", WireName("fqdn"))
	assert.Equal(t, "PrivateID", WireName("private_id"))
}
