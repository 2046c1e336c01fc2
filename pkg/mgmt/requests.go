package mgmt

import (
	"fmt"

	"github.com/veloxcloud/mgmtxml/pkg/xmlcodec"
)

// Request-document helpers for the action operations whose bodies are flat
// enough that a full schema round-trip would be overkill. Labels travel
// base64-encoded; nil-equivalent optional values are passed as nil so the
// builder drops them.

// CreateHostedServiceDocument builds the body for creating a hosted
// service. Exactly one of location or affinityGroup should be set; the
// other is dropped from the document.
func CreateHostedServiceDocument(serviceName, label, description, location, affinityGroup string,
	extendedProperties map[string]string,
) (string, error) {
	doc, err := xmlcodec.BuildDocument("CreateHostedService", []xmlcodec.DocField{
		{Name: "ServiceName", Value: serviceName},
		{Name: "Label", Value: label, Convert: xmlcodec.Base64Text},
		{Name: "Description", Value: optional(description)},
		{Name: "Location", Value: optional(location)},
		{Name: "AffinityGroup", Value: optional(affinityGroup)},
	}, extendedProperties)
	if err != nil {
		return "", fmt.Errorf("building create hosted service document: %w", err)
	}

	return doc, nil
}

// CreateStorageServiceDocument builds the body for creating a storage
// account.
func CreateStorageServiceDocument(serviceName, label, location string,
	geoReplicationEnabled bool, extendedProperties map[string]string,
) (string, error) {
	doc, err := xmlcodec.BuildDocument("CreateStorageServiceInput", []xmlcodec.DocField{
		{Name: "ServiceName", Value: serviceName},
		{Name: "Label", Value: label, Convert: xmlcodec.Base64Text},
		{Name: "Location", Value: location},
		{Name: "GeoReplicationEnabled", Value: geoReplicationEnabled},
	}, extendedProperties)
	if err != nil {
		return "", fmt.Errorf("building create storage service document: %w", err)
	}

	return doc, nil
}

// RoleOperationDocument builds the body for the start/restart/shutdown role
// actions, which share one shape keyed by OperationType.
func RoleOperationDocument(operationType string) (string, error) {
	doc, err := xmlcodec.BuildDocument(operationType, []xmlcodec.DocField{
		{Name: "OperationType", Value: operationType},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("building %s document: %w", operationType, err)
	}

	return doc, nil
}

// optional maps an empty string to nil so the document builder omits the
// element.
func optional(s string) any {
	if s == "" {
		return nil
	}

	return s
}
