package repository

import (
	"context"

	"github.com/yukikurage/task-tracker-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// List returns all users ordered by name
func (r *GormUserRepository) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := r.db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpsertByEmail inserts a user or renames the one already holding the email.
// The row is read back by email because drivers disagree on what an upsert
// returns for the updated row.
func (r *GormUserRepository) UpsertByEmail(ctx context.Context, user *models.User) error {
	db := r.db.WithContext(ctx)

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(&models.User{
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}).Error
	if err != nil {
		return err
	}

	return db.Where("email = ?", user.Email).First(user).Error
}
