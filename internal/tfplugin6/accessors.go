package tfplugin6

// The Get* accessors below follow protoc-gen-go's convention of returning
// the zero value for a nil receiver, so callers can chain through an
// absent *DynamicValue without a nil check at every call site.

func (r *ConfigureProviderRequest) GetConfig() *DynamicValue {
	if r == nil {
		return nil
	}
	return r.Config
}

func (r *ReadResourceRequest) GetCurrentState() *DynamicValue {
	if r == nil {
		return nil
	}
	return r.CurrentState
}

func (r *PlanResourceChangeRequest) GetProposedNewState() *DynamicValue {
	if r == nil {
		return nil
	}
	return r.ProposedNewState
}

func (r *ApplyResourceChangeRequest) GetPriorState() *DynamicValue {
	if r == nil {
		return nil
	}
	return r.PriorState
}

func (r *ApplyResourceChangeRequest) GetPlannedState() *DynamicValue {
	if r == nil {
		return nil
	}
	return r.PlannedState
}

func (r *ApplyResourceChangeRequest) GetConfig() *DynamicValue {
	if r == nil {
		return nil
	}
	return r.Config
}

func (r *ReadDataSourceRequest) GetConfig() *DynamicValue {
	if r == nil {
		return nil
	}
	return r.Config
}
