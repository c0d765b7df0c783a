package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terustform-go/terustform/diag"
	"github.com/terustform-go/terustform/schema"
	"github.com/terustform-go/terustform/values"
)

type fakeData struct{ token string }

type fakeDataSource struct{ data fakeData }

func (f fakeDataSource) Read(_ context.Context, _ values.Value) (values.Value, diag.Diagnostics) {
	return values.KnownString(f.data.token), nil
}

func TestDataSourceFactoryDeferredConstruction(t *testing.T) {
	t.Parallel()

	factory := DataSourceFactory{
		Name:   func(p string) string { return p + "_widget" },
		Schema: schema.Schema{Description: "a widget"},
		New: func(providerData any) (DataSource, diag.Diagnostics) {
			data, ok := providerData.(fakeData)
			if !ok {
				return nil, diag.NewError("unexpected provider data")
			}
			return fakeDataSource{data: data}, nil
		},
	}

	assert.Equal(t, "acme_widget", factory.Name("acme"))

	ds, diags := factory.New(fakeData{token: "tok"})
	require.Empty(t, diags)

	v, diags := ds.Read(context.Background(), values.Null())
	require.Empty(t, diags)
	k, ok := v.Known()
	require.True(t, ok)
	assert.Equal(t, "tok", k.StringValue())
}

func TestResourceFactoryConstructionFailureIsReported(t *testing.T) {
	t.Parallel()

	factory := ResourceFactory{
		Name:   func(p string) string { return p + "_widget" },
		Schema: schema.Schema{},
		New: func(any) (Resource, diag.Diagnostics) {
			return nil, diag.NewError("boom")
		},
	}

	_, diags := factory.New(nil)
	require.Len(t, diags, 1)
	assert.Equal(t, "boom", diags[0].Summary)
}
