// Package provider implements the data source, resource, and provider
// contracts (spec component C6), plus the factory/erasure split that lets
// the handler (package handler) publish schemas before provider
// configuration has produced the provider-specific configured data.
//
// The Rust original type-parameterises MkDataSource/MkResource over the
// provider's associated ProviderData type, because a dyn Resource trait
// object cannot itself carry a generic. Go interface methods cannot be
// generic either, but Go needs no associated-type workaround: providerData
// is carried as an any, and each factory's constructor closes over the
// concrete type it expects — the same erasure the Rust code achieves with
// Arc<dyn Resource<ProviderData = D>>, reached by a simpler route.
package provider

import (
	"context"

	"github.com/terustform-go/terustform/diag"
	"github.com/terustform-go/terustform/schema"
	"github.com/terustform-go/terustform/values"
)

// DataSource is implemented by a configured data source instance.
type DataSource interface {
	Read(ctx context.Context, config values.Value) (values.Value, diag.Diagnostics)
}

// Resource is implemented by a configured resource instance.
type Resource interface {
	Read(ctx context.Context, state values.Value) (values.Value, diag.Diagnostics)
	Create(ctx context.Context, config, plan values.Value) (values.Value, diag.Diagnostics)
	Update(ctx context.Context, config, plan, state values.Value) (values.Value, diag.Diagnostics)
	Delete(ctx context.Context, state values.Value) (values.Value, diag.Diagnostics)
}

// DataSourceFactory is the statically-known half of a data source: its
// name and schema are available immediately, while New is deferred until
// the provider has been configured (spec §4.6).
type DataSourceFactory struct {
	// Name derives the data source's wire name from the provider's name,
	// e.g. func(p string) string { return p + "_class" }.
	Name func(providerName string) string
	// Schema is this data source's attribute schema.
	Schema schema.Schema
	// New constructs a configured instance from the provider's
	// configuration data.
	New func(providerData any) (DataSource, diag.Diagnostics)
}

// ResourceFactory is the resource analogue of DataSourceFactory.
type ResourceFactory struct {
	Name   func(providerName string) string
	Schema schema.Schema
	New    func(providerData any) (Resource, diag.Diagnostics)
}

// Provider is implemented by the top-level provider value the plugin's
// main package constructs.
type Provider interface {
	// Name is the provider's wire name, e.g. "corsschool".
	Name() string
	// Schema is the provider's own configuration schema.
	Schema() schema.Schema
	// Configure validates and applies the practitioner-supplied provider
	// configuration, producing the data every factory's New will receive.
	Configure(ctx context.Context, config values.Value) (any, diag.Diagnostics)
	// DataSources enumerates this provider's data source factories.
	DataSources() []DataSourceFactory
	// Resources enumerates this provider's resource factories.
	Resources() []ResourceFactory
}
