package services_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/user/inventory_api/internal/models"
	"github.com/user/inventory_api/services"
)

func TestDefaultRoleMapper_RoundTrip(t *testing.T) {
	mapper := services.DefaultRoleMapper{}

	roles := []*models.Role{
		{ID: 1, Name: "Admin", Description: strPtr("full access"), Status: true},
		{ID: 2, Name: "Seller", Description: nil, Status: false},
		{ID: 3, Name: "Warehouse", Description: strPtr(""), Status: true},
	}

	for _, role := range roles {
		t.Run(role.Name, func(t *testing.T) {
			view := mapper.ToView(role)
			back := mapper.ToEntity(&view)

			if diff := cmp.Diff(role, back, cmpopts.IgnoreFields(models.Role{}, "CreatedAt", "UpdatedAt", "RoleForms")); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDefaultRoleMapper_ToView(t *testing.T) {
	got := services.DefaultRoleMapper{}.ToView(&models.Role{ID: 4, Name: "Buyer", Description: strPtr("purchases"), Status: true})
	want := services.RoleView{ID: 4, Name: "Buyer", Description: strPtr("purchases"), Status: true}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToView() mismatch (-want +got):\n%s", diff)
	}
}
