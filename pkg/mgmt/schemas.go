// Package mgmt declares the wire schemas for the control-plane resources
// the driver round-trips, plus helpers that assemble action request bodies.
// Schemas are instances of the xmlcodec schema model, built once at init and
// immutable afterwards.
package mgmt

import (
	"sort"

	"github.com/veloxcloud/mgmtxml/pkg/xmlcodec"
)

// Configuration sets are polymorphic: a role carries either a Windows or a
// Linux set, resolved by the concrete element name on the wire.
var (
	WindowsConfigurationSet = xmlcodec.NewSchema("WindowsConfigurationSet",
		xmlcodec.ScalarField("configuration_set_type", xmlcodec.String),
		xmlcodec.ScalarField("computer_name", xmlcodec.String),
		xmlcodec.ScalarField("admin_password", xmlcodec.String),
		xmlcodec.ScalarField("admin_username", xmlcodec.String),
		xmlcodec.ScalarField("enable_automatic_updates", xmlcodec.Bool),
		xmlcodec.ScalarField("time_zone", xmlcodec.String),
	)

	LinuxConfigurationSet = xmlcodec.NewSchema("LinuxConfigurationSet",
		xmlcodec.ScalarField("configuration_set_type", xmlcodec.String),
		xmlcodec.ScalarField("host_name", xmlcodec.String),
		xmlcodec.ScalarField("user_name", xmlcodec.String),
		xmlcodec.ScalarField("user_password", xmlcodec.String),
		xmlcodec.ScalarField("disable_ssh_password_authentication", xmlcodec.Bool),
		xmlcodec.ScalarField("custom_data", xmlcodec.Base64),
	)
)

// Disk schemas.
var (
	OSVirtualHardDisk = xmlcodec.NewSchema("OSVirtualHardDisk",
		xmlcodec.ScalarField("host_caching", xmlcodec.String),
		xmlcodec.ScalarField("disk_label", xmlcodec.String),
		xmlcodec.ScalarField("disk_name", xmlcodec.String),
		xmlcodec.ScalarField("media_link", xmlcodec.String),
		xmlcodec.ScalarField("source_image_name", xmlcodec.String),
		xmlcodec.ScalarField("os", xmlcodec.String),
	)

	DataVirtualHardDisk = xmlcodec.NewSchema("DataVirtualHardDisk",
		xmlcodec.ScalarField("host_caching", xmlcodec.String),
		xmlcodec.ScalarField("disk_label", xmlcodec.String),
		xmlcodec.ScalarField("disk_name", xmlcodec.String),
		xmlcodec.ScalarField("lun", xmlcodec.Int),
		xmlcodec.ScalarField("logical_disk_size_in_gb", xmlcodec.Int),
		xmlcodec.ScalarField("media_link", xmlcodec.String),
	)

	DataVirtualHardDisks = xmlcodec.NewSchema("DataVirtualHardDisks",
		xmlcodec.ObjectListField("data_virtual_hard_disks", DataVirtualHardDisk, "DataVirtualHardDisk"),
	)
)

// Role and deployment schemas.
var (
	InputEndpoint = xmlcodec.NewSchema("InputEndpoint",
		xmlcodec.ScalarField("name", xmlcodec.String),
		xmlcodec.ScalarField("protocol", xmlcodec.String),
		xmlcodec.ScalarField("port", xmlcodec.Int),
		xmlcodec.ScalarField("local_port", xmlcodec.Int),
		xmlcodec.ScalarField("vip", xmlcodec.String),
	)

	InputEndpoints = xmlcodec.NewSchema("InputEndpoints",
		xmlcodec.ObjectListField("input_endpoints", InputEndpoint, "InputEndpoint"),
	)

	Role = xmlcodec.NewSchema("Role",
		xmlcodec.ScalarField("role_name", xmlcodec.String),
		xmlcodec.ScalarField("os_version", xmlcodec.String),
		xmlcodec.ScalarField("role_type", xmlcodec.String),
		xmlcodec.VariantField("configuration_set", WindowsConfigurationSet, LinuxConfigurationSet),
		xmlcodec.ScalarField("availability_set_name", xmlcodec.String),
		xmlcodec.NestedField("data_virtual_hard_disks", DataVirtualHardDisks),
		xmlcodec.NestedField("os_virtual_hard_disk", OSVirtualHardDisk),
		xmlcodec.ScalarField("role_size", xmlcodec.String),
	)

	RoleList = xmlcodec.NewSchema("RoleList",
		xmlcodec.ObjectListField("roles", Role, "Role"),
	)

	RoleInstance = xmlcodec.NewSchema("RoleInstance",
		xmlcodec.ScalarField("role_name", xmlcodec.String),
		xmlcodec.ScalarField("instance_name", xmlcodec.String),
		xmlcodec.ScalarField("instance_status", xmlcodec.String),
		xmlcodec.ScalarField("instance_size", xmlcodec.String),
		xmlcodec.ScalarField("ip_address", xmlcodec.String),
		xmlcodec.ScalarField("power_state", xmlcodec.String),
		xmlcodec.ScalarField("fqdn", xmlcodec.String),
	)

	RoleInstanceList = xmlcodec.NewSchema("RoleInstanceList",
		xmlcodec.ObjectListField("role_instances", RoleInstance, "RoleInstance"),
	)

	Deployment = xmlcodec.NewSchema("Deployment",
		xmlcodec.ScalarField("name", xmlcodec.String),
		xmlcodec.ScalarField("deployment_slot", xmlcodec.String),
		xmlcodec.ScalarField("private_id", xmlcodec.String),
		xmlcodec.ScalarField("status", xmlcodec.String),
		xmlcodec.ScalarField("label", xmlcodec.Base64),
		xmlcodec.ScalarField("url", xmlcodec.String),
		xmlcodec.NestedField("role_instance_list", RoleInstanceList),
		xmlcodec.NestedField("role_list", RoleList),
		xmlcodec.ScalarField("virtual_network_name", xmlcodec.String),
		xmlcodec.ScalarField("created_time", xmlcodec.DateTime),
		xmlcodec.ScalarField("last_modified_time", xmlcodec.DateTime),
		xmlcodec.ScalarField("locked", xmlcodec.Bool),
		xmlcodec.MappingField("extended_properties", "ExtendedProperties", "ExtendedProperty", "Name", "Value"),
	)
)

// Hosted service and subscription-level schemas.
var (
	HostedServiceProperties = xmlcodec.NewSchema("HostedServiceProperties",
		xmlcodec.ScalarField("description", xmlcodec.String),
		xmlcodec.ScalarField("affinity_group", xmlcodec.String),
		xmlcodec.ScalarField("location", xmlcodec.String),
		xmlcodec.ScalarField("label", xmlcodec.Base64),
		xmlcodec.ScalarField("status", xmlcodec.String),
		xmlcodec.ScalarField("date_created", xmlcodec.DateTime),
		xmlcodec.ScalarField("date_last_modified", xmlcodec.DateTime),
		xmlcodec.MappingField("extended_properties", "ExtendedProperties", "ExtendedProperty", "Name", "Value"),
	)

	Deployments = xmlcodec.NewSchema("Deployments",
		xmlcodec.ObjectListField("deployments", Deployment, "Deployment"),
	)

	HostedService = xmlcodec.NewSchema("HostedService",
		xmlcodec.ScalarField("url", xmlcodec.String),
		xmlcodec.ScalarField("service_name", xmlcodec.String),
		xmlcodec.NestedField("hosted_service_properties", HostedServiceProperties),
		xmlcodec.NestedField("deployments", Deployments),
	)

	Location = xmlcodec.NewSchema("Location",
		xmlcodec.ScalarField("name", xmlcodec.String),
		xmlcodec.ScalarField("display_name", xmlcodec.String),
		xmlcodec.ScalarListField("available_services", xmlcodec.String,
			"AvailableServices", "AvailableService"),
	)

	Locations = xmlcodec.NewSchema("Locations",
		xmlcodec.ObjectListField("locations", Location, "Location"),
	)

	Subscription = xmlcodec.NewSchema("Subscription",
		xmlcodec.ScalarField("subscription_id", xmlcodec.String),
		xmlcodec.ScalarField("subscription_name", xmlcodec.String),
		xmlcodec.ScalarField("subscription_status", xmlcodec.String),
		xmlcodec.ScalarField("current_core_count", xmlcodec.Int),
		xmlcodec.ScalarField("max_core_count", xmlcodec.Int),
	)
)

// registry indexes the decodable top-level schemas by name. Built once at
// init, read-only afterwards.
var registry = map[string]*xmlcodec.Schema{
	Deployment.Name:       Deployment,
	Deployments.Name:      Deployments,
	HostedService.Name:    HostedService,
	Location.Name:         Location,
	Locations.Name:        Locations,
	Role.Name:             Role,
	RoleInstance.Name:     RoleInstance,
	RoleInstanceList.Name: RoleInstanceList,
	RoleList.Name:         RoleList,
	Subscription.Name:     Subscription,
}

// Lookup returns the registered schema with the given name.
func Lookup(name string) (*xmlcodec.Schema, bool) {
	s, ok := registry[name]

	return s, ok
}

// Names returns the registered schema names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
