package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/user/inventory_api/internal/config"
	"github.com/user/inventory_api/internal/database"
	"github.com/user/inventory_api/internal/logger"
	"github.com/user/inventory_api/internal/models"
	"github.com/user/inventory_api/repository"
	"go.uber.org/zap"
)

type roleSeed struct {
	name        string
	description string
}

var defaultRoles = []roleSeed{
	{name: "Admin", description: "Full access to every form"},
	{name: "Seller", description: "Registers sales and customers"},
	{name: "Warehouse", description: "Manages stock and products"},
}

var defaultForms = []string{
	"products",
	"categories",
	"inventory",
	"sales",
	"customers",
	"suppliers",
	"roles",
}

const adminRole = "Admin"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		migrate  bool
		logLevel string
	)

	cmd := &cobra.Command{
		Use:          "inventory-seed",
		Short:        "Seed default roles, forms and admin permissions",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}

			log, err := logger.New(cfg.LogLevel, cfg.LogFormat, "inventory-seed")
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			defer log.Sync()

			db, err := database.Open(cfg)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer database.Close(db)

			if migrate {
				if err := database.AutoMigrate(db); err != nil {
					return fmt.Errorf("run migrations: %w", err)
				}
			}

			repos, err := repository.NewFactory(db, log)
			if err != nil {
				return err
			}

			if err := seed(cmd.Context(), repos, log); err != nil {
				return err
			}
			log.Info("seeding completed")
			return nil
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", true, "run schema migrations before seeding")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "override LOG_LEVEL")
	return cmd
}

// seed is safe to run repeatedly: existing roles, forms and links are left
// untouched.
func seed(ctx context.Context, repos *repository.Factory, log *zap.Logger) error {
	roles := repos.RoleRepository()
	forms := repos.FormRepository()
	links := repos.RoleFormRepository()

	var admin *models.Role
	for _, rs := range defaultRoles {
		role, err := roles.GetByName(ctx, rs.name)
		if err != nil {
			return fmt.Errorf("look up role %s: %w", rs.name, err)
		}
		if role == nil {
			description := rs.description
			role, err = roles.Add(ctx, &models.Role{Name: rs.name, Description: &description, Status: true})
			if err != nil {
				return fmt.Errorf("create role %s: %w", rs.name, err)
			}
			log.Info("created role", zap.String("role", rs.name), zap.Int("role_id", role.ID))
		}
		if rs.name == adminRole {
			admin = role
		}
	}

	existing, err := links.GetByRole(ctx, admin.ID)
	if err != nil {
		return fmt.Errorf("load admin forms: %w", err)
	}
	linked := make(map[int]bool, len(existing))
	for _, l := range existing {
		linked[l.FormID] = true
	}

	for _, name := range defaultForms {
		found, err := forms.Find(ctx, "name = ?", name)
		if err != nil {
			return fmt.Errorf("look up form %s: %w", name, err)
		}

		var form *models.Form
		if len(found) > 0 {
			form = &found[0]
		} else {
			form, err = forms.Add(ctx, &models.Form{Name: name, Status: true})
			if err != nil {
				return fmt.Errorf("create form %s: %w", name, err)
			}
			log.Info("created form", zap.String("form", name), zap.Int("form_id", form.ID))
		}

		if linked[form.ID] {
			continue
		}
		if _, err := links.Add(ctx, &models.RoleForm{RoleID: admin.ID, FormID: form.ID, Permission: models.PermissionWrite}); err != nil {
			return fmt.Errorf("link %s to %s: %w", adminRole, name, err)
		}
	}
	return nil
}
