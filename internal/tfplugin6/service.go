package tfplugin6

import (
	"context"

	"google.golang.org/grpc"
)

// ProviderServer is the server-side surface of the tfplugin6.Provider gRPC
// service: one method per RPC in the protocol (spec §4.7). package handler
// implements it; package transport registers it on a *grpc.Server.
type ProviderServer interface {
	GetProviderSchema(context.Context, *GetProviderSchemaRequest) (*GetProviderSchemaResponse, error)
	ValidateProviderConfig(context.Context, *ValidateProviderConfigRequest) (*ValidateProviderConfigResponse, error)
	ValidateResourceConfig(context.Context, *ValidateResourceConfigRequest) (*ValidateResourceConfigResponse, error)
	ValidateDataResourceConfig(context.Context, *ValidateDataResourceConfigRequest) (*ValidateDataResourceConfigResponse, error)
	UpgradeResourceState(context.Context, *UpgradeResourceStateRequest) (*UpgradeResourceStateResponse, error)
	ConfigureProvider(context.Context, *ConfigureProviderRequest) (*ConfigureProviderResponse, error)
	ReadResource(context.Context, *ReadResourceRequest) (*ReadResourceResponse, error)
	PlanResourceChange(context.Context, *PlanResourceChangeRequest) (*PlanResourceChangeResponse, error)
	ApplyResourceChange(context.Context, *ApplyResourceChangeRequest) (*ApplyResourceChangeResponse, error)
	ImportResourceState(context.Context, *ImportResourceStateRequest) (*ImportResourceStateResponse, error)
	MoveResourceState(context.Context, *MoveResourceStateRequest) (*MoveResourceStateResponse, error)
	ReadDataSource(context.Context, *ReadDataSourceRequest) (*ReadDataSourceResponse, error)
	GetFunctions(context.Context, *GetFunctionsRequest) (*GetFunctionsResponse, error)
	CallFunction(context.Context, *CallFunctionRequest) (*CallFunctionResponse, error)
	GetMetadata(context.Context, *GetMetadataRequest) (*GetMetadataResponse, error)
	StopProvider(context.Context, *StopProviderRequest) (*StopProviderResponse, error)
}

// GRPCControllerServer mirrors go-plugin's sibling GRPCController service,
// used to terminate the plugin process independent of the provider
// protocol proper.
type GRPCControllerServer interface {
	Shutdown(context.Context, *ShutdownRequest) (*ShutdownResponse, error)
}

// unaryDesc builds the grpc.MethodDesc for one RPC, in the shape
// protoc-gen-go-grpc would generate: decode the request, call through to
// the concrete method on srv, and run it through any interceptor.
func unaryDesc[Req, Resp any](name string, call func(ProviderServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			req := new(Req)
			if err := dec(req); err != nil {
				return nil, err
			}
			server := srv.(ProviderServer)
			if interceptor == nil {
				return call(server, ctx, req)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/tfplugin6.Provider/" + name}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(server, ctx, req.(*Req))
			}
			return interceptor(ctx, req, info, handler)
		},
	}
}

// ProviderServiceDesc is the grpc.ServiceDesc for tfplugin6.Provider.
var ProviderServiceDesc = grpc.ServiceDesc{
	ServiceName: "tfplugin6.Provider",
	HandlerType: (*ProviderServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryDesc("GetProviderSchema", ProviderServer.GetProviderSchema),
		unaryDesc("ValidateProviderConfig", ProviderServer.ValidateProviderConfig),
		unaryDesc("ValidateResourceConfig", ProviderServer.ValidateResourceConfig),
		unaryDesc("ValidateDataResourceConfig", ProviderServer.ValidateDataResourceConfig),
		unaryDesc("UpgradeResourceState", ProviderServer.UpgradeResourceState),
		unaryDesc("ConfigureProvider", ProviderServer.ConfigureProvider),
		unaryDesc("ReadResource", ProviderServer.ReadResource),
		unaryDesc("PlanResourceChange", ProviderServer.PlanResourceChange),
		unaryDesc("ApplyResourceChange", ProviderServer.ApplyResourceChange),
		unaryDesc("ImportResourceState", ProviderServer.ImportResourceState),
		unaryDesc("MoveResourceState", ProviderServer.MoveResourceState),
		unaryDesc("ReadDataSource", ProviderServer.ReadDataSource),
		unaryDesc("GetFunctions", ProviderServer.GetFunctions),
		unaryDesc("CallFunction", ProviderServer.CallFunction),
		unaryDesc("GetMetadata", ProviderServer.GetMetadata),
		unaryDesc("StopProvider", ProviderServer.StopProvider),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tfplugin6.proto",
}

// GRPCControllerServiceDesc is the grpc.ServiceDesc for go-plugin's
// sibling GRPCController service.
var GRPCControllerServiceDesc = grpc.ServiceDesc{
	ServiceName: "plugin.GRPCController",
	HandlerType: (*GRPCControllerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Shutdown",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				req := new(ShutdownRequest)
				if err := dec(req); err != nil {
					return nil, err
				}
				server := srv.(GRPCControllerServer)
				if interceptor == nil {
					return server.Shutdown(ctx, req)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/plugin.GRPCController/Shutdown"}
				handler := func(ctx context.Context, req any) (any, error) {
					return server.Shutdown(ctx, req.(*ShutdownRequest))
				}
				return interceptor(ctx, req, info, handler)
			},
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "grpc_controller.proto",
}
