package dto

import "github.com/google/uuid"

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type DeleteAllUsersResponse struct {
	Message      string `json:"message"`
	DeletedUsers int64  `json:"deleted_users"`
	DeletedTasks int64  `json:"deleted_tasks"`
}
