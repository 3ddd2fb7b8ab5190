package services

import (
	"errors"
	"fmt"

	"github.com/berkekarsli/taskbox-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService owns the admin-only user management operations.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Delete removes a user and all of their tasks in one transaction.
// Returns the number of tasks removed alongside the deleted user.
func (s *UserService) Delete(userID uuid.UUID) (*models.User, int64, error) {
	// Existence check and cascade share one transaction; a user that
	// vanishes between the two still reports NotFound instead of a
	// silent no-op, and a fault mid-cascade reverts everything.
	var user models.User
	var taskCount int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to fetch user: %w", err)
		}

		result := tx.Where("user_id = ?", userID).Delete(&models.Task{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete tasks: %w", result.Error)
		}
		taskCount = result.RowsAffected

		if err := tx.Delete(&user).Error; err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return &user, taskCount, nil
}

// DeleteAllExcept removes every user other than the caller, along with
// all of their tasks, in one transaction. Irreversible.
func (s *UserService) DeleteAllExcept(callerID uuid.UUID) (deletedUsers, deletedTasks int64, err error) {
	err = s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id <> ?", callerID).Delete(&models.Task{})
		if result.Error != nil {
			return result.Error
		}
		deletedTasks = result.RowsAffected

		result = tx.Where("id <> ?", callerID).Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		deletedUsers = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to delete users: %w", err)
	}
	return deletedUsers, deletedTasks, nil
}
