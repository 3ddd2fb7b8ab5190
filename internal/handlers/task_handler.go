package handlers

import (
	"errors"
	"log/slog"

	"github.com/berkekarsli/taskbox-backend/internal/auth"
	"github.com/berkekarsli/taskbox-backend/internal/dto"
	"github.com/berkekarsli/taskbox-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	if len(c.Body()) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Request body is required",
		})
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Request body is required",
		})
	}

	task, err := h.taskService.Create(claims.ID, &req)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: vErr.Error(),
			})
		}
		slog.Error("failed to create task", "action", "create_task", "user_id", claims.ID.String(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create task",
		})
	}

	slog.Info("task created", "task_id", task.ID.String(), "user_id", claims.ID.String())

	return c.Status(fiber.StatusCreated).JSON(dto.CreateTaskResponse{
		Message: "Task created",
		ID:      task.ID,
	})
}

func (h *TaskHandler) List(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	tasks, err := h.taskService.List(claims.ID)
	if err != nil {
		slog.Error("failed to list tasks", "action", "list_tasks", "user_id", claims.ID.String(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch tasks",
		})
	}

	resp := make([]dto.TaskResponse, len(tasks))
	for i, t := range tasks {
		resp[i] = dto.TaskResponse{ID: t.ID, Title: t.Title, Description: t.Description}
	}

	return c.JSON(resp)
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	// A malformed id cannot name an existing task, so it reads the
	// same as a missing one.
	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Task not found",
		})
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Request body is required",
		})
	}

	if _, err := h.taskService.Update(claims.ID, taskID, &req); err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: vErr.Error(),
			})
		}
		if errors.Is(err, services.ErrTaskNotFound) {
			slog.Warn("task update failed: not found or not owned",
				"task_id", taskID.String(), "user_id", claims.ID.String())
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Task not found",
			})
		}
		slog.Error("failed to update task", "action", "update_task", "task_id", taskID.String(), "user_id", claims.ID.String(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update task",
		})
	}

	slog.Info("task updated", "task_id", taskID.String(), "user_id", claims.ID.String())

	return c.JSON(dto.MessageResponse{Message: "Task updated"})
}

func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Task not found",
		})
	}

	if err := h.taskService.Delete(claims.ID, taskID); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			slog.Warn("task deletion failed: not found or not owned",
				"task_id", taskID.String(), "user_id", claims.ID.String())
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Task not found",
			})
		}
		slog.Error("failed to delete task", "action", "delete_task", "task_id", taskID.String(), "user_id", claims.ID.String(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete task",
		})
	}

	slog.Info("task deleted", "task_id", taskID.String(), "user_id", claims.ID.String())

	return c.JSON(dto.MessageResponse{Message: "Task deleted"})
}
