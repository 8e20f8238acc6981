package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/user/inventory_api/repository"
	"github.com/user/inventory_api/services"
	"github.com/user/inventory_api/testutil"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

func newRoleBusiness(t *testing.T, db *gorm.DB) *services.RoleBusiness {
	t.Helper()
	logger := zaptest.NewLogger(t)

	repos, err := repository.NewFactory(db, logger)
	if err != nil {
		t.Fatalf("NewFactory() error = %v", err)
	}
	factory, err := services.NewRoleStrategyFactory(repos.RoleRepository()).WithLogger(logger).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	b, err := services.NewRoleBusiness(factory, logger)
	if err != nil {
		t.Fatalf("NewRoleBusiness() error = %v", err)
	}
	return b
}

func runRoleLifecycle(t *testing.T, b *services.RoleBusiness) {
	ctx := context.Background()

	created, err := b.CreateRole(ctx, &services.RoleView{Name: "Admin", Description: strPtr(""), Status: true})
	if err != nil {
		t.Fatalf("CreateRole() error = %v", err)
	}
	if created.ID <= 0 {
		t.Fatalf("expected positive id, got %d", created.ID)
	}

	fetched, err := b.GetRoleByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetRoleByID() error = %v", err)
	}
	if diff := cmp.Diff(created, fetched); diff != "" {
		t.Errorf("GetRoleByID() mismatch (-want +got):\n%s", diff)
	}

	ok, err := b.SoftDeleteRole(ctx, created.ID)
	if err != nil || !ok {
		t.Fatalf("SoftDeleteRole() = %v, %v", ok, err)
	}
	fetched, err = b.GetRoleByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetRoleByID() after soft delete error = %v", err)
	}
	if fetched.Status {
		t.Error("expected status false after soft delete")
	}

	ok, err = b.UpdatePartialRole(ctx, created.ID, &services.RoleView{Name: "Administrator", Status: true})
	if err != nil || !ok {
		t.Fatalf("UpdatePartialRole() = %v, %v", ok, err)
	}
	fetched, _ = b.GetRoleByID(ctx, created.ID)
	want := &services.RoleView{ID: created.ID, Name: "Administrator", Description: strPtr(""), Status: true}
	if diff := cmp.Diff(want, fetched); diff != "" {
		t.Errorf("after partial update (-want +got):\n%s", diff)
	}

	ok, err = b.UpdateRole(ctx, &services.RoleView{ID: created.ID, Name: "Admin", Status: true})
	if err != nil || !ok {
		t.Fatalf("UpdateRole() = %v, %v", ok, err)
	}
	fetched, _ = b.GetRoleByID(ctx, created.ID)
	if fetched.Description != nil {
		t.Errorf("expected full update to clear description, got %q", *fetched.Description)
	}

	roles, err := b.GetAllRoles(ctx)
	if err != nil {
		t.Fatalf("GetAllRoles() error = %v", err)
	}
	if len(roles) != 1 {
		t.Errorf("expected 1 role, got %d", len(roles))
	}

	ok, err = b.DeleteRole(ctx, created.ID)
	if err != nil || !ok {
		t.Fatalf("DeleteRole() = %v, %v", ok, err)
	}
	if _, err := b.GetRoleByID(ctx, created.ID); !services.IsNotFound(err) {
		t.Errorf("expected not found after delete, got %v", err)
	}
	ok, err = b.DeleteRole(ctx, created.ID)
	if err != nil {
		t.Fatalf("DeleteRole() error = %v", err)
	}
	if ok {
		t.Error("expected false when deleting a missing role")
	}
	ok, err = b.SoftDeleteRole(ctx, created.ID)
	if err != nil {
		t.Fatalf("SoftDeleteRole() error = %v", err)
	}
	if ok {
		t.Error("expected false when soft deleting a missing role")
	}
}

func TestRoleLifecycle_SQLite(t *testing.T) {
	tdb := testutil.SetupSQLiteDB(t)
	defer tdb.Close(t)

	runRoleLifecycle(t, newRoleBusiness(t, tdb.DB))
}

func TestRoleLifecycle_Postgres(t *testing.T) {
	tdb := testutil.SetupTestDB(t)
	defer tdb.Close(t)
	defer testutil.TruncateAllTables(tdb.DB)

	runRoleLifecycle(t, newRoleBusiness(t, tdb.DB))
}

func TestRoleFormService_GetRoleForms(t *testing.T) {
	tdb := testutil.SetupSQLiteDB(t)
	defer tdb.Close(t)
	ctx := context.Background()

	repos, err := repository.NewFactory(tdb.DB, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("NewFactory() error = %v", err)
	}
	svc, err := services.NewRoleFormService(repos.RoleRepository(), repos.RoleFormRepository()).
		WithLogger(zaptest.NewLogger(t)).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	role, _ := testutil.CreateTestRole(tdb.DB, "Seller", nil, true)
	form, _ := testutil.CreateTestForm(tdb.DB, "sales")
	link, err := testutil.CreateTestRoleForm(tdb.DB, role.ID, form.ID, "write")
	if err != nil {
		t.Fatalf("failed to link role: %v", err)
	}

	got, err := svc.GetRoleForms(ctx, role.ID)
	if err != nil {
		t.Fatalf("GetRoleForms() error = %v", err)
	}
	want := []services.RoleFormView{{ID: link.ID, RoleID: role.ID, FormID: form.ID, FormName: "sales", Permission: "write"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetRoleForms() mismatch (-want +got):\n%s", diff)
	}

	if _, err := svc.GetRoleForms(ctx, 0); !services.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if _, err := svc.GetRoleForms(ctx, role.ID+1); !services.IsNotFound(err) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestRoleFormService_RejectsMissingDependencies(t *testing.T) {
	tdb := testutil.SetupSQLiteDB(t)
	defer tdb.Close(t)

	repos, err := repository.NewFactory(tdb.DB, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("NewFactory() error = %v", err)
	}
	var typedNil *fakeRoleRepository

	testCases := []struct {
		name  string
		roles repository.RoleRepository
		links repository.RoleFormRepository
	}{
		{"nil role repository", nil, repos.RoleFormRepository()},
		{"typed nil role repository", typedNil, repos.RoleFormRepository()},
		{"nil role form repository", repos.RoleRepository(), nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, err := services.NewRoleFormService(tc.roles, tc.links).WithLogger(zaptest.NewLogger(t)).Build()
			if !errors.Is(err, services.ErrNilDependency) {
				t.Errorf("expected ErrNilDependency, got %v", err)
			}
			if svc != nil {
				t.Error("expected nil service")
			}
		})
	}
}
