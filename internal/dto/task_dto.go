package dto

import "github.com/google/uuid"

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateTaskRequest uses pointers so omitted fields keep their
// stored values.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type CreateTaskResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

type TaskResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}
