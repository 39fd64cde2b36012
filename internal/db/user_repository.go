package db

import (
	"strings"
	"time"

	"github.com/mpradela/managme/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

// UserWithTaskCount augments a user with the number of tasks currently
// assigned to them. The count is derived per query, never stored.
type UserWithTaskCount struct {
	models.User
	TaskCount int64 `json:"taskCount"`
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Login lookups normalize both sides so "User@Example.com " and
// "user@example.com" name the same account.
func (repo *UserRepository) FindByNormalizedLogin(login string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(login)) = ?", normalizeLoginValue(login)).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedLogin(login string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(login)) = ?", normalizeLoginValue(login)).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func normalizeLoginValue(login string) string {
	return strings.ToLower(strings.TrimSpace(login))
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) Save(user *models.User) error {
	return repo.database.Save(user).Error
}

func (repo *UserRepository) UpdateByID(userID uint, updates map[string]any) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (repo *UserRepository) Delete(userID uint) error {
	return repo.database.Delete(&models.User{}, userID).Error
}

func (repo *UserRepository) ListWithTaskCounts() ([]UserWithTaskCount, error) {
	users := make([]UserWithTaskCount, 0)
	if err := repo.database.Model(&models.User{}).
		Select("users.*, (SELECT count(*) FROM tasks WHERE tasks.assigned_to_id = users.id) AS task_count").
		Order("users.id").
		Scan(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FilterExistingIDs keeps only identifiers that belong to persisted users,
// preserving input order and dropping duplicates.
func (repo *UserRepository) FilterExistingIDs(userIDs []uint) ([]uint, error) {
	if len(userIDs) == 0 {
		return []uint{}, nil
	}

	rows := make([]models.User, 0, len(userIDs))
	if err := repo.database.Select("id").Where("id IN ?", userIDs).Find(&rows).Error; err != nil {
		return nil, err
	}

	existing := make(map[uint]struct{}, len(rows))
	for _, row := range rows {
		existing[row.ID] = struct{}{}
	}

	filtered := make([]uint, 0, len(userIDs))
	for _, userID := range userIDs {
		if _, ok := existing[userID]; !ok {
			continue
		}
		filtered = append(filtered, userID)
		delete(existing, userID)
	}
	return filtered, nil
}

func (repo *UserRepository) ListByIDs(userIDs []uint) ([]models.User, error) {
	if len(userIDs) == 0 {
		return []models.User{}, nil
	}
	users := make([]models.User, 0, len(userIDs))
	if err := repo.database.Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *UserRepository) FindByActiveResetToken(token string, now time.Time) (models.User, error) {
	var user models.User
	if err := repo.database.
		Where("reset_password_token = ? AND reset_password_token <> '' AND reset_password_expires > ?", token, now).
		First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}
