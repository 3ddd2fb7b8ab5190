package handlers

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/berkekarsli/taskbox-backend/internal/auth"
	"github.com/berkekarsli/taskbox-backend/internal/dto"
	"github.com/berkekarsli/taskbox-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AdminHandler serves the admin-only user management endpoints. The
// AdminRequired middleware has already verified the caller's role by
// the time any of these run.
type AdminHandler struct {
	userService *services.UserService
}

func NewAdminHandler(userService *services.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	users, err := h.userService.List()
	if err != nil {
		slog.Error("failed to list users", "action", "list_users", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch users",
		})
	}

	slog.Info("admin retrieved all users", "admin_email", claims.Email, "user_count", len(users))

	resp := make([]dto.UserResponse, len(users))
	for i, u := range users {
		resp[i] = dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
	}

	return c.JSON(resp)
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "User not found",
		})
	}

	user, taskCount, err := h.userService.Delete(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			slog.Warn("user deletion failed: not found",
				"target_user_id", userID.String(), "admin_email", claims.Email)
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		slog.Error("failed to delete user", "action", "delete_user", "target_user_id", userID.String(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete user",
		})
	}

	slog.Info("user deleted",
		"target_user_id", user.ID.String(),
		"target_email", user.Email,
		"deleted_tasks", taskCount,
		"admin_email", claims.Email,
	)

	return c.JSON(dto.MessageResponse{Message: "User deleted successfully"})
}

// DeleteAllUsers removes every account except the calling admin's own.
// One shot, no confirmation step.
func (h *AdminHandler) DeleteAllUsers(c *fiber.Ctx) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	users, tasks, err := h.userService.DeleteAllExcept(claims.ID)
	if err != nil {
		slog.Error("failed to delete all users", "action", "delete_all_users", "admin_email", claims.Email, "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete users",
		})
	}

	slog.Info("all users deleted", "admin_email", claims.Email, "deleted_users", users, "deleted_tasks", tasks)

	return c.JSON(dto.DeleteAllUsersResponse{
		Message:      fmt.Sprintf("Deleted %d users", users),
		DeletedUsers: users,
		DeletedTasks: tasks,
	})
}
