package handlers

import (
	"text-analysis-dashboard/config"
	"text-analysis-dashboard/gateway"
	"text-analysis-dashboard/palette"
	"text-analysis-dashboard/projector"
)

// Policies is the list failure policy of each call site.
type Policies struct {
	API       gateway.ListPolicy
	Dashboard gateway.ListPolicy
	Table     gateway.ListPolicy
	Detail    gateway.ListPolicy
}

// PoliciesFromConfig reads the per-site policies from the views section.
func PoliciesFromConfig(v config.ViewsConfig) Policies {
	return Policies{
		API:       gateway.ListPolicy(v.API.OnListFailure),
		Dashboard: gateway.ListPolicy(v.Dashboard.OnListFailure),
		Table:     gateway.ListPolicy(v.Table.OnListFailure),
		Detail:    gateway.ListPolicy(v.Detail.OnListFailure),
	}
}

// Handler serves the JSON API and the dashboard pages.
type Handler struct {
	gateway   *gateway.Gateway
	projector *projector.Projector
	palette   *palette.Palette
	policies  Policies
}

// New returns a handler. A nil palette means palette.Default.
func New(gw *gateway.Gateway, p *palette.Palette, policies Policies) *Handler {
	if p == nil {
		p = palette.Default
	}
	return &Handler{
		gateway:   gw,
		projector: projector.New(p),
		palette:   p,
		policies:  policies,
	}
}
