package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/terustform-go/terustform/diag"
	"github.com/terustform-go/terustform/internal/tfplugin6"
	"github.com/terustform-go/terustform/tftype"
	"github.com/terustform-go/terustform/values"
)

// Dispatch adapts a *Handler to tfplugin6.ProviderServer, translating
// between the protocol's wire messages and the package's Value/Diagnostics
// types. It is the Go analogue of terustform/src/server/grpc.rs.
type Dispatch struct {
	h *Handler
}

// NewDispatch wraps h as a tfplugin6.ProviderServer.
func NewDispatch(h *Handler) *Dispatch { return &Dispatch{h: h} }

var _ tfplugin6.ProviderServer = (*Dispatch)(nil)

// decodeConfig decodes an optional wire DynamicValue against typ. An
// absent DynamicValue (the host omitted it) decodes as Null, matching
// server/handler.rs's `None => Value::Null`.
func decodeConfig(dv *tfplugin6.DynamicValue, typ tftype.Type) (values.Value, diag.Diagnostics) {
	if dv == nil {
		return values.Null(), nil
	}
	return values.Decode(dv.Msgpack, typ)
}

func (d *Dispatch) GetProviderSchema(_ context.Context, _ *tfplugin6.GetProviderSchemaRequest) (*tfplugin6.GetProviderSchemaResponse, error) {
	dataSources, resources, diags := d.h.GetProviderSchema()

	resp := &tfplugin6.GetProviderSchemaResponse{
		DataSourceSchemas:  make(map[string]*tfplugin6.Schema, len(dataSources)),
		ResourceSchemas:    make(map[string]*tfplugin6.Schema, len(resources)),
		Diagnostics:        diagnosticsToWire(diags),
		ServerCapabilities: &tfplugin6.ServerCapabilities{},
	}
	for name, f := range dataSources {
		resp.DataSourceSchemas[name] = schemaToWire(f.Schema)
	}
	for name, f := range resources {
		resp.ResourceSchemas[name] = schemaToWire(f.Schema)
	}
	if !diags.HasErrors() {
		resp.Provider = schemaToWire(d.h.provider.Schema())
	}
	return resp, nil
}

func (d *Dispatch) ValidateProviderConfig(_ context.Context, _ *tfplugin6.ValidateProviderConfigRequest) (*tfplugin6.ValidateProviderConfigResponse, error) {
	return &tfplugin6.ValidateProviderConfigResponse{Diagnostics: diagnosticsToWire(ValidateProviderConfig())}, nil
}

func (d *Dispatch) ValidateResourceConfig(_ context.Context, _ *tfplugin6.ValidateResourceConfigRequest) (*tfplugin6.ValidateResourceConfigResponse, error) {
	return &tfplugin6.ValidateResourceConfigResponse{Diagnostics: diagnosticsToWire(ValidateResourceConfig())}, nil
}

func (d *Dispatch) ValidateDataResourceConfig(_ context.Context, _ *tfplugin6.ValidateDataResourceConfigRequest) (*tfplugin6.ValidateDataResourceConfigResponse, error) {
	return &tfplugin6.ValidateDataResourceConfigResponse{Diagnostics: diagnosticsToWire(ValidateDataResourceConfig())}, nil
}

func (d *Dispatch) UpgradeResourceState(_ context.Context, _ *tfplugin6.UpgradeResourceStateRequest) (*tfplugin6.UpgradeResourceStateResponse, error) {
	upgraded, diags := UpgradeResourceState()
	resp := &tfplugin6.UpgradeResourceStateResponse{Diagnostics: diagnosticsToWire(diags)}
	if !diags.HasErrors() {
		resp.UpgradedState = &tfplugin6.DynamicValue{Msgpack: values.Encode(upgraded)}
	}
	return resp, nil
}

func (d *Dispatch) ConfigureProvider(ctx context.Context, req *tfplugin6.ConfigureProviderRequest) (*tfplugin6.ConfigureProviderResponse, error) {
	config, diags := decodeConfig(req.GetConfig(), d.h.provider.Schema().DerivedType())
	if !diags.HasErrors() {
		diags = d.h.ConfigureProvider(ctx, config)
	}
	return &tfplugin6.ConfigureProviderResponse{Diagnostics: diagnosticsToWire(diags)}, nil
}

func (d *Dispatch) ReadResource(ctx context.Context, req *tfplugin6.ReadResourceRequest) (*tfplugin6.ReadResourceResponse, error) {
	typ, diags := d.h.resourceDerivedType(req.TypeName)
	if diags.HasErrors() {
		return &tfplugin6.ReadResourceResponse{Diagnostics: diagnosticsToWire(diags)}, nil
	}

	state, diags := decodeConfig(req.GetCurrentState(), typ)
	if !diags.HasErrors() {
		state, diags = d.h.ReadResource(ctx, req.TypeName, state)
	}
	if diags.HasErrors() {
		return &tfplugin6.ReadResourceResponse{Diagnostics: diagnosticsToWire(diags)}, nil
	}
	return &tfplugin6.ReadResourceResponse{NewState: &tfplugin6.DynamicValue{Msgpack: values.Encode(state)}}, nil
}

func (d *Dispatch) PlanResourceChange(_ context.Context, req *tfplugin6.PlanResourceChangeRequest) (*tfplugin6.PlanResourceChangeResponse, error) {
	typ, diags := d.h.resourceDerivedType(req.TypeName)
	if diags.HasErrors() {
		return &tfplugin6.PlanResourceChangeResponse{Diagnostics: diagnosticsToWire(diags)}, nil
	}

	proposed, diags := decodeConfig(req.GetProposedNewState(), typ)
	if diags.HasErrors() {
		return &tfplugin6.PlanResourceChangeResponse{Diagnostics: diagnosticsToWire(diags)}, nil
	}

	planned := PlanResourceChange(proposed)
	return &tfplugin6.PlanResourceChangeResponse{PlannedState: &tfplugin6.DynamicValue{Msgpack: values.Encode(planned)}}, nil
}

func (d *Dispatch) ApplyResourceChange(ctx context.Context, req *tfplugin6.ApplyResourceChangeRequest) (*tfplugin6.ApplyResourceChangeResponse, error) {
	typ, diags := d.h.resourceDerivedType(req.TypeName)
	if diags.HasErrors() {
		return &tfplugin6.ApplyResourceChangeResponse{Diagnostics: diagnosticsToWire(diags)}, nil
	}

	prior, diags := decodeConfig(req.GetPriorState(), typ)
	if diags.HasErrors() {
		return &tfplugin6.ApplyResourceChangeResponse{Diagnostics: diagnosticsToWire(diags)}, nil
	}
	planned, diags := decodeConfig(req.GetPlannedState(), typ)
	if diags.HasErrors() {
		return &tfplugin6.ApplyResourceChangeResponse{Diagnostics: diagnosticsToWire(diags)}, nil
	}
	config, diags := decodeConfig(req.GetConfig(), typ)
	if diags.HasErrors() {
		return &tfplugin6.ApplyResourceChangeResponse{Diagnostics: diagnosticsToWire(diags)}, nil
	}

	newState, diags := d.h.ApplyResourceChange(ctx, req.TypeName, prior, planned, config)
	if diags.HasErrors() {
		return &tfplugin6.ApplyResourceChangeResponse{Diagnostics: diagnosticsToWire(diags)}, nil
	}
	return &tfplugin6.ApplyResourceChangeResponse{NewState: &tfplugin6.DynamicValue{Msgpack: values.Encode(newState)}}, nil
}

func (d *Dispatch) ReadDataSource(ctx context.Context, req *tfplugin6.ReadDataSourceRequest) (*tfplugin6.ReadDataSourceResponse, error) {
	typ, diags := d.h.dataSourceDerivedType(req.TypeName)
	if diags.HasErrors() {
		return &tfplugin6.ReadDataSourceResponse{Diagnostics: diagnosticsToWire(diags)}, nil
	}

	config, diags := decodeConfig(req.GetConfig(), typ)
	if diags.HasErrors() {
		return &tfplugin6.ReadDataSourceResponse{Diagnostics: diagnosticsToWire(diags)}, nil
	}

	state, diags := d.h.ReadDataSource(ctx, req.TypeName, config)
	if diags.HasErrors() {
		return &tfplugin6.ReadDataSourceResponse{Diagnostics: diagnosticsToWire(diags)}, nil
	}
	return &tfplugin6.ReadDataSourceResponse{State: &tfplugin6.DynamicValue{Msgpack: values.Encode(state)}}, nil
}

func (d *Dispatch) GetFunctions(context.Context, *tfplugin6.GetFunctionsRequest) (*tfplugin6.GetFunctionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, ErrUnimplemented().Error())
}

func (d *Dispatch) CallFunction(context.Context, *tfplugin6.CallFunctionRequest) (*tfplugin6.CallFunctionResponse, error) {
	return nil, status.Error(codes.Unimplemented, ErrUnimplemented().Error())
}

func (d *Dispatch) GetMetadata(context.Context, *tfplugin6.GetMetadataRequest) (*tfplugin6.GetMetadataResponse, error) {
	return nil, status.Error(codes.Unimplemented, ErrUnimplemented().Error())
}

func (d *Dispatch) ImportResourceState(context.Context, *tfplugin6.ImportResourceStateRequest) (*tfplugin6.ImportResourceStateResponse, error) {
	return nil, status.Error(codes.Unimplemented, ErrUnimplemented().Error())
}

func (d *Dispatch) MoveResourceState(context.Context, *tfplugin6.MoveResourceStateRequest) (*tfplugin6.MoveResourceStateResponse, error) {
	return nil, status.Error(codes.Unimplemented, ErrUnimplemented().Error())
}

func (d *Dispatch) StopProvider(ctx context.Context, _ *tfplugin6.StopProviderRequest) (*tfplugin6.StopProviderResponse, error) {
	go d.h.StopProvider(ctx)
	return &tfplugin6.StopProviderResponse{}, nil
}
