package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/berkekarsli/taskbox-backend/internal/dto"
	"github.com/berkekarsli/taskbox-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	maxTitleLen       = 100
	maxDescriptionLen = 200
)

// TaskService owns task CRUD. Every lookup is scoped to the owning
// user in the query itself, so a task owned by someone else is
// indistinguishable from a task that does not exist.
type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

func (s *TaskService) Create(userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)

	if title == "" {
		return nil, validationError("Task title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return nil, validationError("Title must be 100 characters or less")
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return nil, validationError("Description must be 200 characters or less")
	}

	task := models.Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		UserID:      userID,
	}

	if err := s.db.Create(&task).Error; err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &task, nil
}

func (s *TaskService) List(userID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.Where("user_id = ?", userID).Order("created_at").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) Update(userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	// Scoped read and write share one transaction so the whole
	// operation commits or reverts as a unit.
	var task models.Task
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", taskID, userID).First(&task).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return fmt.Errorf("failed to fetch task: %w", err)
		}

		if req.Title != nil {
			title := strings.TrimSpace(*req.Title)
			if title == "" {
				return validationError("Task title is required")
			}
			if utf8.RuneCountInString(title) > maxTitleLen {
				return validationError("Title must be 100 characters or less")
			}
			task.Title = title
		}
		if req.Description != nil {
			description := strings.TrimSpace(*req.Description)
			if utf8.RuneCountInString(description) > maxDescriptionLen {
				return validationError("Description must be 200 characters or less")
			}
			task.Description = description
		}

		if err := tx.Save(&task).Error; err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &task, nil
}

func (s *TaskService) Delete(userID, taskID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", taskID, userID).Delete(&models.Task{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
