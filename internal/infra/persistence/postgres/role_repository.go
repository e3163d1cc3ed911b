package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// roleRepository implements the repository.RoleRepository interface.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{
		db: db,
	}
}

func (repo *roleRepository) FindByName(ctx context.Context, name entity.RoleName) (*entity.Role, error) {
	return repo.findOne(ctx, "name = ?", string(name))
}

func (repo *roleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Role, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *roleRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Role, error) {
	var roleM model.RoleModel

	if err := repo.db.WithContext(ctx).
		Preload("Permissions").
		Where(query, args...).
		First(&roleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role")
	}

	return toRoleDomain(&roleM), nil
}

func (repo *roleRepository) List(ctx context.Context) ([]*entity.Role, error) {
	var roleModels []*model.RoleModel

	if err := repo.db.WithContext(ctx).
		Preload("Permissions").
		Order("priority DESC").
		Find(&roleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	roles := make([]*entity.Role, 0, len(roleModels))
	for _, roleM := range roleModels {
		roles = append(roles, toRoleDomain(roleM))
	}

	return roles, nil
}

// Upsert inserts or refreshes the role by name, upserts each permission by
// (resource, action) and replaces the role's permission set.
func (repo *roleRepository) Upsert(ctx context.Context, role *entity.Role) error {
	db := repo.db.WithContext(ctx)

	permissions := make([]*model.PermissionModel, 0, len(role.Permissions))
	for _, p := range role.Permissions {
		permM := &model.PermissionModel{
			ID:          newID(p.ID),
			Resource:    p.Resource,
			Action:      p.Action,
			Description: p.Description,
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "resource"}, {Name: "action"}},
			DoUpdates: clause.AssignmentColumns([]string{"description"}),
		}).Create(permM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to upsert permission")
		}
		if err := db.Where("resource = ? AND action = ?", p.Resource, p.Action).First(permM).Error; err != nil {
			return errors.Wrap(err, "failed to reload permission")
		}
		p.ID = permM.ID
		permissions = append(permissions, permM)
	}

	roleM := &model.RoleModel{
		ID:          newID(role.ID),
		Name:        string(role.Name),
		Description: role.Description,
		Priority:    role.Priority,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"description", "priority", "updated_at"}),
	}).Create(roleM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert role")
	}
	if err := db.Where("name = ?", string(role.Name)).First(roleM).Error; err != nil {
		return errors.Wrap(err, "failed to reload role")
	}

	if err := db.Model(roleM).Association("Permissions").Replace(permissions); err != nil {
		return errors.Wrap(err, "failed to replace role permissions")
	}

	role.ID = roleM.ID

	return nil
}

// --- Mapper Functions ---

func toRoleDomain(data *model.RoleModel) *entity.Role {
	if data == nil {
		return nil
	}

	permissions := make([]*entity.Permission, 0, len(data.Permissions))
	for _, p := range data.Permissions {
		permissions = append(permissions, &entity.Permission{
			ID:          p.ID,
			Resource:    p.Resource,
			Action:      p.Action,
			Description: p.Description,
		})
	}

	return &entity.Role{
		ID:          data.ID,
		Name:        entity.RoleName(data.Name),
		Description: data.Description,
		Priority:    data.Priority,
		Permissions: permissions,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
