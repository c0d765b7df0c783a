package tfplugin6

// ClientCapabilities mirrors tfplugin6.ClientCapabilities.
type ClientCapabilities struct {
	DeferralAllowed bool `json:"deferral_allowed,omitempty"`
}

// GetProviderSchemaRequest mirrors tfplugin6.GetProviderSchema.Request.
type GetProviderSchemaRequest struct{}

// GetProviderSchemaResponse mirrors tfplugin6.GetProviderSchema.Response.
type GetProviderSchemaResponse struct {
	Provider            *Schema            `json:"provider,omitempty"`
	ResourceSchemas      map[string]*Schema `json:"resource_schemas,omitempty"`
	DataSourceSchemas    map[string]*Schema `json:"data_source_schemas,omitempty"`
	Diagnostics          []*Diagnostic      `json:"diagnostics,omitempty"`
	ServerCapabilities   *ServerCapabilities `json:"server_capabilities,omitempty"`
}

// ValidateProviderConfigRequest mirrors tfplugin6.ValidateProviderConfig.Request.
type ValidateProviderConfigRequest struct {
	Config *DynamicValue `json:"config,omitempty"`
}

// ValidateProviderConfigResponse mirrors tfplugin6.ValidateProviderConfig.Response.
type ValidateProviderConfigResponse struct {
	Diagnostics []*Diagnostic `json:"diagnostics,omitempty"`
}

// ValidateResourceConfigRequest mirrors tfplugin6.ValidateResourceConfig.Request.
type ValidateResourceConfigRequest struct {
	TypeName string        `json:"type_name"`
	Config   *DynamicValue `json:"config,omitempty"`
}

// ValidateResourceConfigResponse mirrors tfplugin6.ValidateResourceConfig.Response.
type ValidateResourceConfigResponse struct {
	Diagnostics []*Diagnostic `json:"diagnostics,omitempty"`
}

// ValidateDataResourceConfigRequest mirrors tfplugin6.ValidateDataResourceConfig.Request.
type ValidateDataResourceConfigRequest struct {
	TypeName string        `json:"type_name"`
	Config   *DynamicValue `json:"config,omitempty"`
}

// ValidateDataResourceConfigResponse mirrors tfplugin6.ValidateDataResourceConfig.Response.
type ValidateDataResourceConfigResponse struct {
	Diagnostics []*Diagnostic `json:"diagnostics,omitempty"`
}

// ConfigureProviderRequest mirrors tfplugin6.ConfigureProvider.Request.
type ConfigureProviderRequest struct {
	TerraformVersion   string              `json:"terraform_version"`
	Config             *DynamicValue       `json:"config,omitempty"`
	ClientCapabilities *ClientCapabilities `json:"client_capabilities,omitempty"`
}

// ConfigureProviderResponse mirrors tfplugin6.ConfigureProvider.Response.
type ConfigureProviderResponse struct {
	Diagnostics []*Diagnostic `json:"diagnostics,omitempty"`
}

// UpgradeResourceStateRequest mirrors tfplugin6.UpgradeResourceState.Request.
type UpgradeResourceStateRequest struct {
	TypeName string    `json:"type_name"`
	Version  int64     `json:"version"`
	RawState *RawState `json:"raw_state,omitempty"`
}

// UpgradeResourceStateResponse mirrors tfplugin6.UpgradeResourceState.Response.
type UpgradeResourceStateResponse struct {
	UpgradedState *DynamicValue `json:"upgraded_state,omitempty"`
	Diagnostics   []*Diagnostic `json:"diagnostics,omitempty"`
}

// ReadResourceRequest mirrors tfplugin6.ReadResource.Request.
type ReadResourceRequest struct {
	TypeName     string        `json:"type_name"`
	CurrentState *DynamicValue `json:"current_state,omitempty"`
	Private      []byte        `json:"private,omitempty"`
}

// ReadResourceResponse mirrors tfplugin6.ReadResource.Response.
type ReadResourceResponse struct {
	NewState    *DynamicValue `json:"new_state,omitempty"`
	Diagnostics []*Diagnostic `json:"diagnostics,omitempty"`
	Private     []byte        `json:"private,omitempty"`
}

// PlanResourceChangeRequest mirrors tfplugin6.PlanResourceChange.Request.
type PlanResourceChangeRequest struct {
	TypeName         string        `json:"type_name"`
	PriorState       *DynamicValue `json:"prior_state,omitempty"`
	ProposedNewState *DynamicValue `json:"proposed_new_state,omitempty"`
	Config           *DynamicValue `json:"config,omitempty"`
	PriorPrivate     []byte        `json:"prior_private,omitempty"`
}

// PlanResourceChangeResponse mirrors tfplugin6.PlanResourceChange.Response.
type PlanResourceChangeResponse struct {
	PlannedState    *DynamicValue    `json:"planned_state,omitempty"`
	RequiresReplace []*AttributePath `json:"requires_replace,omitempty"`
	PlannedPrivate  []byte           `json:"planned_private,omitempty"`
	Diagnostics     []*Diagnostic    `json:"diagnostics,omitempty"`
}

// ApplyResourceChangeRequest mirrors tfplugin6.ApplyResourceChange.Request.
type ApplyResourceChangeRequest struct {
	TypeName       string        `json:"type_name"`
	PriorState     *DynamicValue `json:"prior_state,omitempty"`
	PlannedState   *DynamicValue `json:"planned_state,omitempty"`
	Config         *DynamicValue `json:"config,omitempty"`
	PlannedPrivate []byte        `json:"planned_private,omitempty"`
}

// ApplyResourceChangeResponse mirrors tfplugin6.ApplyResourceChange.Response.
type ApplyResourceChangeResponse struct {
	NewState    *DynamicValue `json:"new_state,omitempty"`
	Private     []byte        `json:"private,omitempty"`
	Diagnostics []*Diagnostic `json:"diagnostics,omitempty"`
}

// ImportResourceStateRequest mirrors tfplugin6.ImportResourceState.Request.
type ImportResourceStateRequest struct {
	TypeName string `json:"type_name"`
	ID       string `json:"id"`
}

// ImportedResource mirrors tfplugin6.ImportResourceState.ImportedResource.
type ImportedResource struct {
	TypeName string        `json:"type_name"`
	State    *DynamicValue `json:"state,omitempty"`
	Private  []byte        `json:"private,omitempty"`
}

// ImportResourceStateResponse mirrors tfplugin6.ImportResourceState.Response.
type ImportResourceStateResponse struct {
	ImportedResources []*ImportedResource `json:"imported_resources,omitempty"`
	Diagnostics        []*Diagnostic       `json:"diagnostics,omitempty"`
}

// MoveResourceStateRequest mirrors tfplugin6.MoveResourceState.Request.
type MoveResourceStateRequest struct {
	SourceProviderAddress string `json:"source_provider_address"`
	SourceTypeName        string `json:"source_type_name"`
	SourceSchemaVersion   int64  `json:"source_schema_version"`
	SourceState           []byte `json:"source_state,omitempty"`
	TargetTypeName        string `json:"target_type_name"`
	SourcePrivate         []byte `json:"source_private,omitempty"`
}

// MoveResourceStateResponse mirrors tfplugin6.MoveResourceState.Response.
type MoveResourceStateResponse struct {
	TargetState *DynamicValue `json:"target_state,omitempty"`
	TargetPrivate []byte      `json:"target_private,omitempty"`
	Diagnostics []*Diagnostic `json:"diagnostics,omitempty"`
}

// ReadDataSourceRequest mirrors tfplugin6.ReadDataSource.Request.
type ReadDataSourceRequest struct {
	TypeName string        `json:"type_name"`
	Config   *DynamicValue `json:"config,omitempty"`
}

// ReadDataSourceResponse mirrors tfplugin6.ReadDataSource.Response.
type ReadDataSourceResponse struct {
	State       *DynamicValue `json:"state,omitempty"`
	Diagnostics []*Diagnostic `json:"diagnostics,omitempty"`
}

// Function and FunctionParameter mirror the provider-functions additions to
// tfplugin6. This core implements no functions; GetFunctions answers with
// a gRPC Unimplemented status.
type FunctionParameter struct {
	Name               string `json:"name"`
	Type               []byte `json:"type,omitempty"`
	AllowNullValue     bool   `json:"allow_null_value,omitempty"`
	AllowUnknownValues bool   `json:"allow_unknown_values,omitempty"`
}

type Function struct {
	Parameters       []*FunctionParameter `json:"parameters,omitempty"`
	VariadicParameter *FunctionParameter  `json:"variadic_parameter,omitempty"`
	Return           []byte               `json:"return,omitempty"`
	Summary          string               `json:"summary,omitempty"`
}

// GetFunctionsRequest mirrors tfplugin6.GetFunctions.Request.
type GetFunctionsRequest struct{}

// GetFunctionsResponse mirrors tfplugin6.GetFunctions.Response.
type GetFunctionsResponse struct {
	Functions   map[string]*Function `json:"functions,omitempty"`
	Diagnostics []*Diagnostic        `json:"diagnostics,omitempty"`
}

// CallFunctionRequest mirrors tfplugin6.CallFunction.Request.
type CallFunctionRequest struct {
	Name      string          `json:"name"`
	Arguments []*DynamicValue `json:"arguments,omitempty"`
}

// CallFunctionResponse mirrors tfplugin6.CallFunction.Response.
type CallFunctionResponse struct {
	Result *DynamicValue `json:"result,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// GetMetadataRequest mirrors tfplugin6.GetMetadata.Request.
type GetMetadataRequest struct{}

// GetMetadataResponse mirrors tfplugin6.GetMetadata.Response.
type GetMetadataResponse struct {
	ServerCapabilities *ServerCapabilities `json:"server_capabilities,omitempty"`
	DataSources        []*Metadata         `json:"data_sources,omitempty"`
	Resources          []*Metadata         `json:"resources,omitempty"`
	Diagnostics        []*Diagnostic       `json:"diagnostics,omitempty"`
}

// Metadata mirrors tfplugin6.GetMetadata.DataSourceMetadata /
// ResourceMetadata.
type Metadata struct {
	TypeName string `json:"type_name"`
}

// StopProviderRequest mirrors tfplugin6.StopProvider.Request.
type StopProviderRequest struct{}

// StopProviderResponse mirrors tfplugin6.StopProvider.Response.
type StopProviderResponse struct {
	Error string `json:"error,omitempty"`
}

// ShutdownRequest and ShutdownResponse mirror plugin.GRPCController's
// Shutdown RPC, the sibling go-plugin uses to terminate the child process
// independent of the provider protocol proper.
type ShutdownRequest struct{}

type ShutdownResponse struct{}
