package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/models"
	"gorm.io/gorm"
)

// ErrEmailTaken is returned when registering an email that already has an
// account.
var ErrEmailTaken = errors.New("user with this email already exists")

// UserRepository persists dashboard accounts.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user, assigning an id when the caller did not.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	existing, err := r.FindByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// All returns every account.
func (r *UserRepository) All(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateName changes only the display name. Used by the profile endpoint.
func (r *UserRepository) UpdateName(ctx context.Context, id, name string) (*models.User, error) {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("name", name)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

// UpdateAccount rewrites name, role and permissions. Admin-only path.
func (r *UserRepository) UpdateAccount(ctx context.Context, id, name, role string, perms models.Permissions) (*models.User, error) {
	// Struct-based update so the JSON serializer runs on the permissions
	// column; Select forces the write even for zero values.
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Select("name", "role", "permissions").
		Updates(&models.User{Name: name, Role: role, Permissions: perms})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.User{}).Error
}

// EnsureDefaultAdmin seeds the admin account on an empty user table so a
// fresh deployment is reachable. passwordHash must already be bcrypt-hashed.
func (r *UserRepository) EnsureDefaultAdmin(ctx context.Context, email, passwordHash string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&models.User{
		ID:          uuid.NewString(),
		Email:       email,
		Password:    passwordHash,
		Name:        "Default Admin",
		Role:        models.RoleAdmin,
		Permissions: models.AllPermissions(),
	}).Error
}
