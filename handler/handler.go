// Package handler implements the provider handler / dispatcher (spec
// component C7): the state machine that turns a provider.Provider into the
// live map of configured data sources and resources, and mediates every
// plugin-protocol RPC against it.
//
// It is grounded on terustform/src/server/handler.rs, generalised from
// that file's partial ReadDataSource-only snapshot to the full lifecycle
// described by the rest of the original crate (server/grpc.rs) and the
// specification.
package handler

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/terustform-go/terustform/diag"
	"github.com/terustform-go/terustform/provider"
	"github.com/terustform-go/terustform/tftype"
	"github.com/terustform-go/terustform/values"
)

// state discriminates the handler's lifecycle position.
type state int

const (
	stateSetup state = iota
	stateFailed
	stateConfigured
)

// configured holds the live, name-keyed instances built by ConfigureProvider.
type configured struct {
	dataSources map[string]provider.DataSource
	resources   map[string]provider.Resource
}

// Handler is the provider handler described at spec §4.7. All mutating
// access to its state is guarded by a single exclusive lock; construction
// is infallible — catalog errors (duplicate names) taint the state instead
// of failing construction, so they can be reported nicely from
// GetProviderSchema rather than crashing the process during bring-up.
type Handler struct {
	mu    sync.Mutex
	state state
	diags diag.Diagnostics // populated only when state == stateFailed

	provider provider.Provider

	dataSourceFactories map[string]provider.DataSourceFactory
	resourceFactories   map[string]provider.ResourceFactory

	configured *configured

	// Shutdown is closed by StopProvider and by the GRPCController's
	// Shutdown RPC; the transport's serve loop selects on it.
	Shutdown chan struct{}
	closeOne sync.Once
}

// New builds a Handler from p, computing the data-source and resource name
// catalogs up front (spec §4.7 Construction). Duplicate names push a
// diagnostic and leave the handler in the Failed state.
func New(p provider.Provider) *Handler {
	h := &Handler{
		provider: p,
		Shutdown: make(chan struct{}),
	}

	name := p.Name()

	h.dataSourceFactories = make(map[string]provider.DataSourceFactory)
	for _, f := range p.DataSources() {
		dsName := f.Name(name)
		if _, exists := h.dataSourceFactories[dsName]; exists {
			h.diags = h.diags.Append(diag.Errorf("data source %s exists more than once", dsName))
			continue
		}
		h.dataSourceFactories[dsName] = f
	}

	h.resourceFactories = make(map[string]provider.ResourceFactory)
	for _, f := range p.Resources() {
		rName := f.Name(name)
		if _, exists := h.resourceFactories[rName]; exists {
			h.diags = h.diags.Append(diag.Errorf("resource %s exists more than once", rName))
			continue
		}
		h.resourceFactories[rName] = f
	}

	if h.diags.HasErrors() {
		h.state = stateFailed
	} else {
		h.state = stateSetup
	}

	return h
}

// GetProviderSchema returns the wire schemas for every resource and data
// source. It is valid from Setup or Failed; calling it once Configured is
// an internal protocol invariant violation (spec §4.7, §7 item 5).
func (h *Handler) GetProviderSchema() (map[string]provider.DataSourceFactory, map[string]provider.ResourceFactory, diag.Diagnostics) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch h.state {
	case stateFailed:
		return nil, nil, h.diags
	case stateConfigured:
		panic("handler: GetProviderSchema called after ConfigureProvider")
	default:
		return h.dataSourceFactories, h.resourceFactories, nil
	}
}

// ConfigureProvider invokes the provider's Configure with the already
// decoded config (Dispatch decodes it against the provider schema), and
// constructs every data source and resource factory against the resulting
// provider data (spec §4.7). Construction failures for individual factories
// are collected but do not prevent the handler from transitioning to
// Configured, nor from constructing the remaining entries.
func (h *Handler) ConfigureProvider(ctx context.Context, config values.Value) diag.Diagnostics {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state != stateSetup {
		panic("handler: ConfigureProvider called outside Setup")
	}

	correlationID := uuid.New()
	log := logrus.WithField("correlation_id", correlationID)
	log.Debug("configuring provider")

	providerData, diags := h.provider.Configure(ctx, config)
	if diags.HasErrors() {
		log.Warn("provider configuration failed")
		return diags
	}

	cfg := &configured{
		dataSources: make(map[string]provider.DataSource, len(h.dataSourceFactories)),
		resources:   make(map[string]provider.Resource, len(h.resourceFactories)),
	}

	for name, f := range h.dataSourceFactories {
		ds, fdiags := f.New(providerData)
		if fdiags.HasErrors() {
			diags = diags.Append(fdiags)
			continue
		}
		cfg.dataSources[name] = ds
	}

	for name, f := range h.resourceFactories {
		r, fdiags := f.New(providerData)
		if fdiags.HasErrors() {
			diags = diags.Append(fdiags)
			continue
		}
		cfg.resources[name] = r
	}

	h.configured = cfg
	h.state = stateConfigured
	log.WithFields(logrus.Fields{
		"data_sources": len(cfg.dataSources),
		"resources":    len(cfg.resources),
	}).Info("provider configured")
	return diags
}

// ReadDataSource dispatches to the named data source, requiring Configured.
func (h *Handler) ReadDataSource(ctx context.Context, name string, config values.Value) (values.Value, diag.Diagnostics) {
	ds, diags := h.lookupDataSource(name)
	if diags.HasErrors() {
		return values.Value{}, diags
	}
	return ds.Read(ctx, config)
}

// ReadResource dispatches to the named resource. If currentState is Null,
// the handler is not invoked and Null is returned unchanged (spec §4.7:
// the host is checking a deleted/unmanaged resource).
func (h *Handler) ReadResource(ctx context.Context, name string, currentState values.Value) (values.Value, diag.Diagnostics) {
	if currentState.IsNull() {
		return values.Null(), nil
	}

	r, diags := h.lookupResource(name)
	if diags.HasErrors() {
		return values.Value{}, diags
	}
	return r.Read(ctx, currentState)
}

// PlanResourceChange implements the default pass-through plan (spec §4.7):
// the proposed state becomes the plan unchanged.
func PlanResourceChange(proposed values.Value) values.Value {
	return proposed
}

// ApplyResourceChange classifies the change by the prior/planned pair and
// dispatches to create, update or delete (spec §4.7).
func (h *Handler) ApplyResourceChange(ctx context.Context, name string, prior, planned, config values.Value) (values.Value, diag.Diagnostics) {
	r, diags := h.lookupResource(name)
	if diags.HasErrors() {
		return values.Value{}, diags
	}

	switch {
	case prior.IsNull():
		return r.Create(ctx, config, planned)
	case planned.IsNull():
		if _, diags := r.Delete(ctx, prior); diags.HasErrors() {
			return values.Value{}, diags
		}
		return values.Null(), nil
	default:
		return r.Update(ctx, config, planned, prior)
	}
}

// UpgradeResourceState is a pass-through: no diagnostics, an empty upgraded
// state (spec §4.7).
func UpgradeResourceState() (values.Value, diag.Diagnostics) {
	return values.Value{}, nil
}

// ValidateProviderConfig, ValidateResourceConfig and
// ValidateDataResourceConfig all return empty diagnostics: this core ships
// no user-supplied validators (spec §4.7).
func ValidateProviderConfig() diag.Diagnostics     { return nil }
func ValidateResourceConfig() diag.Diagnostics     { return nil }
func ValidateDataResourceConfig() diag.Diagnostics { return nil }

// StopProvider triggers cooperative shutdown: it closes Shutdown exactly
// once and then blocks until ctx is done; it does not block past that. The
// transport's serve loop is what observes the closed channel and exits.
func (h *Handler) StopProvider(ctx context.Context) {
	h.closeOne.Do(func() { close(h.Shutdown) })
	<-ctx.Done()
}

// resourceDerivedType looks up the wire type a named resource's states are
// decoded against, valid once Configured (the catalog is fixed at
// construction, so this is safe even mid-dispatch).
func (h *Handler) resourceDerivedType(name string) (tftype.Type, diag.Diagnostics) {
	h.mu.Lock()
	defer h.mu.Unlock()

	f, ok := h.resourceFactories[name]
	if !ok {
		return tftype.Type{}, diag.Errorf("unknown resource %q", name)
	}
	return f.Schema.DerivedType(), nil
}

// dataSourceDerivedType is the data-source analogue of resourceDerivedType.
func (h *Handler) dataSourceDerivedType(name string) (tftype.Type, diag.Diagnostics) {
	h.mu.Lock()
	defer h.mu.Unlock()

	f, ok := h.dataSourceFactories[name]
	if !ok {
		return tftype.Type{}, diag.Errorf("unknown data source %q", name)
	}
	return f.Schema.DerivedType(), nil
}

func (h *Handler) lookupDataSource(name string) (provider.DataSource, diag.Diagnostics) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state == stateFailed {
		return nil, h.diags
	}
	if h.state != stateConfigured {
		panic("handler: RPC dispatched before ConfigureProvider")
	}
	ds, ok := h.configured.dataSources[name]
	if !ok {
		return nil, diag.Errorf("unknown data source %q", name)
	}
	return ds, nil
}

func (h *Handler) lookupResource(name string) (provider.Resource, diag.Diagnostics) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state == stateFailed {
		return nil, h.diags
	}
	if h.state != stateConfigured {
		panic("handler: RPC dispatched before ConfigureProvider")
	}
	r, ok := h.configured.resources[name]
	if !ok {
		return nil, diag.Errorf("unknown resource %q", name)
	}
	return r, nil
}

// errUnimplemented is the shared error for the RPCs this core does not
// implement (spec §4.7: ImportResourceState, MoveResourceState,
// GetFunctions, CallFunction, GetMetadata). Dispatch sends its text as a
// gRPC Unimplemented status rather than as a Diagnostics value.
var errUnimplemented = fmt.Errorf("rpc not implemented by this provider core")

// ErrUnimplemented returns the error for RPCs this core does not serve;
// Dispatch wraps its text in a gRPC Unimplemented status.
func ErrUnimplemented() error { return errUnimplemented }
