package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terustform-go/terustform/diag"
	"github.com/terustform-go/terustform/provider"
	"github.com/terustform-go/terustform/schema"
	"github.com/terustform-go/terustform/values"
)

type stubDataSource struct{}

func (stubDataSource) Read(_ context.Context, config values.Value) (values.Value, diag.Diagnostics) {
	return config, nil
}

type stubResource struct{}

func (stubResource) Read(_ context.Context, state values.Value) (values.Value, diag.Diagnostics) {
	return state, nil
}
func (stubResource) Create(_ context.Context, _, plan values.Value) (values.Value, diag.Diagnostics) {
	return plan, nil
}
func (stubResource) Update(_ context.Context, _, plan, _ values.Value) (values.Value, diag.Diagnostics) {
	return plan, nil
}
func (stubResource) Delete(_ context.Context, _ values.Value) (values.Value, diag.Diagnostics) {
	return values.Null(), nil
}

type stubProvider struct {
	name        string
	dataSources []provider.DataSourceFactory
	resources   []provider.ResourceFactory
}

func (p stubProvider) Name() string          { return p.name }
func (p stubProvider) Schema() schema.Schema { return schema.Schema{} }
func (p stubProvider) Configure(_ context.Context, _ values.Value) (any, diag.Diagnostics) {
	return "configured-data", nil
}
func (p stubProvider) DataSources() []provider.DataSourceFactory { return p.dataSources }
func (p stubProvider) Resources() []provider.ResourceFactory     { return p.resources }

func basicProvider() stubProvider {
	return stubProvider{
		name: "acme",
		dataSources: []provider.DataSourceFactory{
			{
				Name:   func(p string) string { return p + "_widget" },
				Schema: schema.Schema{},
				New:    func(any) (provider.DataSource, diag.Diagnostics) { return stubDataSource{}, nil },
			},
		},
		resources: []provider.ResourceFactory{
			{
				Name:   func(p string) string { return p + "_gadget" },
				Schema: schema.Schema{},
				New:    func(any) (provider.Resource, diag.Diagnostics) { return stubResource{}, nil },
			},
		},
	}
}

func TestNewDetectsDuplicateDataSourceNames(t *testing.T) {
	t.Parallel()

	p := stubProvider{
		name: "acme",
		dataSources: []provider.DataSourceFactory{
			{Name: func(string) string { return "acme_widget" }, New: func(any) (provider.DataSource, diag.Diagnostics) { return stubDataSource{}, nil }},
			{Name: func(string) string { return "acme_widget" }, New: func(any) (provider.DataSource, diag.Diagnostics) { return stubDataSource{}, nil }},
		},
	}

	h := New(p)
	_, _, diags := h.GetProviderSchema()
	require.Len(t, diags, 1)
	assert.Equal(t, "data source acme_widget exists more than once", diags[0].Summary)
}

func TestFailedHandlerReturnsSameDiagnosticsFromSubsequentRPCs(t *testing.T) {
	t.Parallel()

	p := stubProvider{
		name: "acme",
		dataSources: []provider.DataSourceFactory{
			{Name: func(string) string { return "acme_widget" }, New: func(any) (provider.DataSource, diag.Diagnostics) { return stubDataSource{}, nil }},
			{Name: func(string) string { return "acme_widget" }, New: func(any) (provider.DataSource, diag.Diagnostics) { return stubDataSource{}, nil }},
		},
	}

	h := New(p)
	_, _, schemaDiags := h.GetProviderSchema()
	require.Len(t, schemaDiags, 1)

	// A duplicate-name catalog leaves the first factory registered, so a
	// naive derived-type lookup would succeed and reach the dispatch
	// lookup itself; that lookup must surface the same diagnostics rather
	// than panic.
	got, diags := h.ReadDataSource(context.Background(), "acme_widget", values.Null())
	assert.Equal(t, values.Value{}, got)
	require.Len(t, diags, 1)
	assert.Equal(t, schemaDiags[0].Summary, diags[0].Summary)
}

func TestFullLifecycle(t *testing.T) {
	t.Parallel()

	h := New(basicProvider())

	dsFactories, rFactories, diags := h.GetProviderSchema()
	require.Empty(t, diags)
	assert.Len(t, dsFactories, 1)
	assert.Len(t, rFactories, 1)

	diags = h.ConfigureProvider(context.Background(), values.Null())
	require.Empty(t, diags)

	got, diags := h.ReadDataSource(context.Background(), "acme_widget", values.KnownString("x"))
	require.Empty(t, diags)
	assert.Equal(t, values.KnownString("x"), got)

	got, diags = h.ReadResource(context.Background(), "acme_gadget", values.Null())
	require.Empty(t, diags)
	assert.Equal(t, values.Null(), got)

	got, diags = h.ApplyResourceChange(context.Background(), "acme_gadget", values.Null(), values.KnownString("planned"), values.KnownString("cfg"))
	require.Empty(t, diags)
	assert.Equal(t, values.KnownString("planned"), got)

	got, diags = h.ApplyResourceChange(context.Background(), "acme_gadget", values.KnownString("prior"), values.Null(), values.KnownString("cfg"))
	require.Empty(t, diags)
	assert.Equal(t, values.Null(), got)

	got, diags = h.ApplyResourceChange(context.Background(), "acme_gadget", values.KnownString("prior"), values.KnownString("planned"), values.KnownString("cfg"))
	require.Empty(t, diags)
	assert.Equal(t, values.KnownString("planned"), got)
}

func TestReadResourceSkipsHandlerWhenCurrentStateIsNull(t *testing.T) {
	t.Parallel()

	h := New(basicProvider())
	require.Empty(t, h.ConfigureProvider(context.Background(), values.Null()))

	got, diags := h.ReadResource(context.Background(), "acme_gadget", values.Null())
	require.Empty(t, diags)
	assert.Equal(t, values.Null(), got)
}

func TestConfigureProviderCollectsPerFactoryErrorsButStillTransitions(t *testing.T) {
	t.Parallel()

	p := basicProvider()
	p.resources = append(p.resources, provider.ResourceFactory{
		Name: func(string) string { return "acme_broken" },
		New:  func(any) (provider.Resource, diag.Diagnostics) { return nil, diag.NewError("boom") },
	})

	h := New(p)
	diags := h.ConfigureProvider(context.Background(), values.Null())
	require.Len(t, diags, 1)
	assert.Equal(t, "boom", diags[0].Summary)

	// the provider is still usable for the data source that did construct.
	_, diags = h.ReadDataSource(context.Background(), "acme_widget", values.Null())
	require.Empty(t, diags)
}

func TestPlanResourceChangeIsPassThrough(t *testing.T) {
	t.Parallel()

	v := values.KnownString("proposed")
	assert.Equal(t, v, PlanResourceChange(v))
}

func TestStopProviderClosesShutdownOnce(t *testing.T) {
	t.Parallel()

	h := New(basicProvider())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		h.StopProvider(ctx)
		close(done)
	}()

	<-h.Shutdown
	cancel()
	<-done
}
