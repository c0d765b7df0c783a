package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/terustform-go/terustform/diag"
	"github.com/terustform-go/terustform/internal/tfplugin6"
	"github.com/terustform-go/terustform/provider"
	"github.com/terustform-go/terustform/schema"
	"github.com/terustform-go/terustform/values"
)

func TestDispatchGetProviderSchema(t *testing.T) {
	t.Parallel()

	h := New(basicProvider())
	d := NewDispatch(h)

	resp, err := d.GetProviderSchema(context.Background(), &tfplugin6.GetProviderSchemaRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Diagnostics)
	assert.Contains(t, resp.DataSourceSchemas, "acme_widget")
	assert.Contains(t, resp.ResourceSchemas, "acme_gadget")
}

func TestDispatchConfigureProviderAndReadDataSource(t *testing.T) {
	t.Parallel()

	p := stubProvider{
		name: "acme",
		dataSources: []provider.DataSourceFactory{
			{
				Name: func(p string) string { return p + "_widget" },
				Schema: schema.Schema{
					Attributes: map[string]schema.Attribute{
						"id": schema.String("", schema.Required, false),
					},
				},
				New: func(any) (provider.DataSource, diag.Diagnostics) { return stubDataSource{}, nil },
			},
		},
	}

	h := New(p)
	d := NewDispatch(h)

	configResp, err := d.ConfigureProvider(context.Background(), &tfplugin6.ConfigureProviderRequest{})
	require.NoError(t, err)
	assert.Empty(t, configResp.Diagnostics)

	readReq := &tfplugin6.ReadDataSourceRequest{
		TypeName: "acme_widget",
		Config: &tfplugin6.DynamicValue{
			Msgpack: values.Encode(values.KnownObject(map[string]values.Value{
				"id": values.KnownString("x"),
			})),
		},
	}
	readResp, err := d.ReadDataSource(context.Background(), readReq)
	require.NoError(t, err)
	require.Empty(t, readResp.Diagnostics)
	require.NotNil(t, readResp.State)

	decoded, diags := values.Decode(readResp.State.Msgpack, p.dataSources[0].Schema.DerivedType())
	require.Empty(t, diags)
	obj, _ := decoded.Known()
	assert.Equal(t, "x", mustString(t, obj.Attrs()["id"]))
}

func TestDispatchUnimplementedRPCs(t *testing.T) {
	t.Parallel()

	d := NewDispatch(New(basicProvider()))

	_, err := d.GetFunctions(context.Background(), &tfplugin6.GetFunctionsRequest{})
	assertUnimplemented(t, err)

	_, err = d.CallFunction(context.Background(), &tfplugin6.CallFunctionRequest{})
	assertUnimplemented(t, err)

	_, err = d.GetMetadata(context.Background(), &tfplugin6.GetMetadataRequest{})
	assertUnimplemented(t, err)

	_, err = d.ImportResourceState(context.Background(), &tfplugin6.ImportResourceStateRequest{})
	assertUnimplemented(t, err)

	_, err = d.MoveResourceState(context.Background(), &tfplugin6.MoveResourceStateRequest{})
	assertUnimplemented(t, err)
}

func assertUnimplemented(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Unimplemented, st.Code())
}

func mustString(t *testing.T, v values.Value) string {
	t.Helper()
	k, ok := v.Known()
	require.True(t, ok)
	return k.StringValue()
}
