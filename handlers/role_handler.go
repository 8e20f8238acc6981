package handlers

import (
	"errors"
	"net/http"

	"github.com/user/inventory_api/services"
)

var errIDMismatch = errors.New("role id in path does not match role id in body")

type RoleHandler struct {
	roleService     services.RoleService
	roleFormService services.RoleFormService
}

func NewRoleHandler(roleService services.RoleService, roleFormService services.RoleFormService) *RoleHandler {
	return &RoleHandler{roleService: roleService, roleFormService: roleFormService}
}

func (h *RoleHandler) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roleService.GetAllRoles(r.Context())
	if err != nil {
		HandleServiceError(w, err)
		return
	}
	if roles == nil {
		roles = []services.RoleView{}
	}

	RespondWithJSON(w, http.StatusOK, roles)
}

func (h *RoleHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	role, err := h.roleService.GetRoleByID(r.Context(), id)
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, role)
}

func (h *RoleHandler) CreateRole(w http.ResponseWriter, r *http.Request) {
	var req services.RoleView
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	role, err := h.roleService.CreateRole(r.Context(), &req)
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, role)
}

func (h *RoleHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	var req services.RoleView
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}
	if req.ID != id {
		RespondWithError(w, ErrCodeBadRequest, errIDMismatch)
		return
	}

	ok, err := h.roleService.UpdateRole(r.Context(), &req)
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, resultResponse{Message: "role updated", Success: ok})
}

// UpdatePartialRole decodes into a pointer so a JSON null body reaches the
// service as nil fields.
func (h *RoleHandler) UpdatePartialRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	var fields *services.RoleView
	if err := DecodeJSON(r, &fields); err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	ok, err := h.roleService.UpdatePartialRole(r.Context(), id, fields)
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, resultResponse{Message: "role partially updated", Success: ok})
}

func (h *RoleHandler) SoftDeleteRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	ok, err := h.roleService.SoftDeleteRole(r.Context(), id)
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, resultResponse{Message: "role marked as inactive", Success: ok})
}

func (h *RoleHandler) DeleteRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	ok, err := h.roleService.DeleteRole(r.Context(), id)
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, resultResponse{Message: "role deleted", Success: ok})
}

func (h *RoleHandler) ListRoleForms(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	links, err := h.roleFormService.GetRoleForms(r.Context(), id)
	if err != nil {
		HandleServiceError(w, err)
		return
	}
	if links == nil {
		links = []services.RoleFormView{}
	}

	RespondWithJSON(w, http.StatusOK, links)
}
