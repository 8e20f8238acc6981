package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/user/inventory_api/services"
)

type Middleware func(http.Handler) http.Handler

type routerBuilder struct {
	mux             *http.ServeMux
	roleService     services.RoleService
	roleFormService services.RoleFormService
	metricsHandler  http.Handler
	middlewares     []Middleware
}

func NewRouter() *routerBuilder {
	return &routerBuilder{}
}

func (b *routerBuilder) WithMux(mux *http.ServeMux) *routerBuilder {
	b.mux = mux
	return b
}

func (b *routerBuilder) WithRoleService(svc services.RoleService) *routerBuilder {
	b.roleService = svc
	return b
}

func (b *routerBuilder) WithRoleFormService(svc services.RoleFormService) *routerBuilder {
	b.roleFormService = svc
	return b
}

// WithMetricsHandler replaces the default promhttp handler on /metrics.
func (b *routerBuilder) WithMetricsHandler(h http.Handler) *routerBuilder {
	b.metricsHandler = h
	return b
}

func (b *routerBuilder) WithMiddlewares(mws ...Middleware) *routerBuilder {
	b.middlewares = append(b.middlewares, mws...)
	return b
}

func (b *routerBuilder) Build() http.Handler {
	mux := b.mux
	if mux == nil {
		mux = http.NewServeMux()
	}

	metrics := b.metricsHandler
	if metrics == nil {
		metrics = promhttp.Handler()
	}

	mux.HandleFunc("GET /health", healthHandler)
	mux.Handle("GET /metrics", metrics)

	if b.roleService != nil {
		h := NewRoleHandler(b.roleService, b.roleFormService)
		mux.HandleFunc("GET /api/v1/roles", h.ListRoles)
		mux.HandleFunc("POST /api/v1/roles", h.CreateRole)
		mux.HandleFunc("GET /api/v1/roles/{id}", h.GetRole)
		mux.HandleFunc("PUT /api/v1/roles/{id}", h.UpdateRole)
		mux.HandleFunc("PATCH /api/v1/roles/{id}", h.UpdatePartialRole)
		mux.HandleFunc("DELETE /api/v1/roles/{id}", h.DeleteRole)
		mux.HandleFunc("DELETE /api/v1/roles/soft-delete/{id}", h.SoftDeleteRole)
		if b.roleFormService != nil {
			mux.HandleFunc("GET /api/v1/roles/{id}/forms", h.ListRoleForms)
		}
	}

	var handler http.Handler = mux
	for _, mw := range b.middlewares {
		handler = mw(handler)
	}
	return handler
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
