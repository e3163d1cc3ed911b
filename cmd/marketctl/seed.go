package main

import (
	"context"
	"log/slog"
	"strings"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/infra/auth"
	"marketplace/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

var catalogResources = []string{"product", "category", "brand", "listing"}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Upsert roles with their permissions and ensure an admin account exists",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "admin-email",
				Usage:   "email of the admin account to create when missing",
				Sources: cli.EnvVars("SEED_ADMIN_EMAIL"),
			},
			&cli.StringFlag{
				Name:    "admin-password",
				Usage:   "password for the admin account",
				Sources: cli.EnvVars("SEED_ADMIN_PASSWORD"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var s seeder

			return withApp(ctx, func() error {
				if err := s.seedRoles(ctx); err != nil {
					return err
				}

				email := strings.ToLower(strings.TrimSpace(cmd.String("admin-email")))
				if email == "" {
					return nil
				}

				return s.seedAdmin(ctx, email, cmd.String("admin-password"))
			}, []fx.Option{
				fx.Provide(
					postgres.NewTransactionManager,
					auth.NewBcryptHasher,
				),
			}, &s.txManager, &s.hasher, &s.logger)
		},
	}
}

type seeder struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

func (s *seeder) seedRoles(ctx context.Context) error {
	return s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		roleRepo := factory.NewRoleRepository()
		for _, role := range defaultRoles() {
			if err := roleRepo.Upsert(ctx, role); err != nil {
				return errors.Wrapf(err, "failed to seed role %s", role.Name)
			}
			s.logger.Info("Seeded role",
				slog.String("role", role.Name.String()),
				slog.Int("permissions", len(role.Permissions)),
			)
		}

		return nil
	})
}

func (s *seeder) seedAdmin(ctx context.Context, email, password string) error {
	if err := s.hasher.ValidatePasswordStrength(password); err != nil {
		return errors.Wrap(err, "admin password rejected")
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash admin password")
	}

	return s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.NewUserRepository()
		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			s.logger.Info("Admin account already present", slog.String("email", email))

			return nil
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up admin account")
		}

		role, err := factory.NewRoleRepository().FindByName(ctx, entity.RoleAdmin)
		if err != nil {
			return errors.Wrap(err, "admin role missing")
		}

		user := &entity.User{
			FirstName:       "Admin",
			Email:           email,
			RoleID:          role.ID,
			IsActive:        true,
			IsEmailVerified: true,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create admin account")
		}

		if err := factory.NewAuthRepository().CreateAuthentication(ctx, &entity.Authentication{
			UserID:         user.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   hash,
		}); err != nil {
			return errors.Wrap(err, "failed to create admin credential")
		}

		s.logger.Info("Created admin account", slog.String("email", email), slog.String("user_id", user.ID.String()))

		return nil
	})
}

// defaultRoles is the fixed role catalog. Admin holds every permission granted
// to any other role.
func defaultRoles() []*entity.Role {
	customer := []*entity.Permission{
		perm("product", "read", "Browse the catalog"),
		perm("cart", "manage", "Manage own cart"),
		perm("order", "create", "Place orders"),
		perm("order", "read_own", "View own orders"),
		perm("order", "cancel_own", "Cancel own orders"),
		perm("review", "create", "Review purchased products"),
		perm("address", "manage", "Manage own addresses"),
		perm("wishlist", "manage", "Manage own wishlist"),
		perm("seller", "apply", "Apply to become a seller"),
	}

	seller := append([]*entity.Permission{}, customer...)
	seller = append(seller,
		perm("product", "create", "Create own products"),
		perm("product", "update", "Update own products"),
		perm("product", "delete", "Delete own products"),
		perm("listing", "manage", "Manage own listings and stock"),
		perm("order", "read_seller", "View orders containing own products"),
		perm("order", "update_status", "Advance fulfilment of own orders"),
		perm("review", "respond", "Respond to reviews of own products"),
	)

	support := []*entity.Permission{
		perm("product", "read", "Browse the catalog"),
		perm("user", "read", "View user accounts"),
		perm("order", "read_all", "View every order"),
		perm("review", "moderate", "Approve pending reviews"),
		perm("seller", "read", "View seller applications"),
	}

	admin := append([]*entity.Permission{}, seller...)
	admin = append(admin, support...)
	for _, resource := range catalogResources {
		admin = append(admin, perm(resource, "admin", "Full control of "+resource+" records"))
	}
	admin = append(admin,
		perm("user", "admin", "Change roles and delete users"),
		perm("order", "mark_paid", "Record payments"),
		perm("seller", "moderate", "Approve, reject and suspend sellers"),
	)

	return []*entity.Role{
		role(entity.RoleCustomer, "Shopper account", customer),
		role(entity.RoleSeller, "Approved merchant", seller),
		role(entity.RoleSupport, "Customer support staff", support),
		role(entity.RoleAdmin, "Platform administrator", admin),
	}
}

func role(name entity.RoleName, description string, permissions []*entity.Permission) *entity.Role {
	seen := make(map[string]bool, len(permissions))
	unique := make([]*entity.Permission, 0, len(permissions))
	for _, p := range permissions {
		if seen[p.Key()] {
			continue
		}
		seen[p.Key()] = true
		unique = append(unique, &entity.Permission{Resource: p.Resource, Action: p.Action, Description: p.Description})
	}

	return &entity.Role{
		Name:        name,
		Description: description,
		Priority:    name.Priority(),
		Permissions: unique,
	}
}

func perm(resource, action, description string) *entity.Permission {
	return &entity.Permission{Resource: resource, Action: action, Description: description}
}
