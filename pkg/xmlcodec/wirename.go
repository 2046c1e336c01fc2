package xmlcodec

import "strings"

// wireNameExceptions overrides the generic transform where PascalCasing a
// snake_case identifier produces the wrong acronym or header casing.
var wireNameExceptions = map[string]string{
	"cache_control":               "Cache-Control",
	"content_md5":                 "Content-MD5",
	"fqdn":                        "FQDN",
	"include_apis":                "IncludeAPIs",
	"is_dns_programmed":           "IsDnsProgrammed",
	"last_modified":               "Last-Modified",
	"logical_disk_size_in_gb":     "LogicalDiskSizeInGB",
	"logical_size_in_gb":          "LogicalSizeInGB",
	"message_id":                  "MessageId",
	"os":                          "OS",
	"os_disk_configuration":       "OSDiskConfiguration",
	"os_virtual_hard_disk":        "OSVirtualHardDisk",
	"persistent_vm_downtime_info": "PersistentVMDowntimeInfo",
	"private_id":                  "PrivateID",
	"subscription_id":             "SubscriptionID",
}

// WireName maps a snake_case field identifier to its wire element name.
//
// Rules, first match wins: the exception table above; x_ms_* identifiers
// become hyphenated header names; a trailing _id becomes ID; everything else
// is PascalCased segment by segment. The mapping is not invertible, so
// decoding never derives field names from wire tags; it walks the known
// schema instead.
func WireName(field string) string {
	if known, ok := wireNameExceptions[field]; ok {
		return known
	}

	if strings.HasPrefix(field, "x_ms_") {
		return strings.ReplaceAll(field, "_", "-")
	}

	if strings.HasSuffix(field, "_id") {
		field = strings.TrimSuffix(field, "_id") + "ID"
	}

	parts := strings.Split(field, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}

		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}

	return strings.Join(parts, "")
}
