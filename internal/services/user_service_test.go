package services

import (
	"testing"

	"github.com/berkekarsli/taskbox-backend/internal/dto"
	"github.com/berkekarsli/taskbox-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserList(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	seedUser(t, db, "a@x.com")
	seedUser(t, db, "b@x.com")

	users, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserDelete_CascadesTasks(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	taskSvc := NewTaskService(db)

	victim := seedUser(t, db, "victim@x.com")
	bystander := seedUser(t, db, "bystander@x.com")

	_, err := taskSvc.Create(victim.ID, &dto.CreateTaskRequest{Title: "one"})
	require.NoError(t, err)
	_, err = taskSvc.Create(victim.ID, &dto.CreateTaskRequest{Title: "two"})
	require.NoError(t, err)
	kept, err := taskSvc.Create(bystander.ID, &dto.CreateTaskRequest{Title: "keep"})
	require.NoError(t, err)

	deleted, taskCount, err := userSvc.Delete(victim.ID)
	require.NoError(t, err)
	assert.Equal(t, victim.Email, deleted.Email)
	assert.Equal(t, int64(2), taskCount)

	var tasks int64
	require.NoError(t, db.Model(&models.Task{}).Where("user_id = ?", victim.ID).Count(&tasks).Error)
	assert.Zero(t, tasks)

	// Bystander's task survives
	remaining, err := taskSvc.List(bystander.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].ID)
}

func TestUserDelete_FaultRevertsCascade(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	taskSvc := NewTaskService(db)

	victim := seedUser(t, db, "victim@x.com")
	_, err := taskSvc.Create(victim.ID, &dto.CreateTaskRequest{Title: "survivor"})
	require.NoError(t, err)

	// Abort the final user delete after the task cascade has already
	// run inside the transaction.
	require.NoError(t, db.Exec(`
		CREATE TRIGGER fail_user_delete BEFORE DELETE ON users
		BEGIN SELECT RAISE(ABORT, 'simulated storage fault'); END
	`).Error)

	_, _, err = userSvc.Delete(victim.ID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)

	// Rollback restored both the user and the cascaded tasks.
	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(1), users)

	tasks, err := taskSvc.List(victim.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestUserDelete_NotFound(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, _, err := svc.Delete(uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserDeleteAllExcept(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	taskSvc := NewTaskService(db)

	admin := seedUser(t, db, "admin@x.com")
	u1 := seedUser(t, db, "u1@x.com")
	u2 := seedUser(t, db, "u2@x.com")

	_, err := taskSvc.Create(admin.ID, &dto.CreateTaskRequest{Title: "mine"})
	require.NoError(t, err)
	_, err = taskSvc.Create(u1.ID, &dto.CreateTaskRequest{Title: "theirs"})
	require.NoError(t, err)
	_, err = taskSvc.Create(u2.ID, &dto.CreateTaskRequest{Title: "also theirs"})
	require.NoError(t, err)

	users, tasks, err := userSvc.DeleteAllExcept(admin.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), users)
	assert.Equal(t, int64(2), tasks)

	remaining, err := userSvc.List()
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, admin.ID, remaining[0].ID)

	adminTasks, err := taskSvc.List(admin.ID)
	require.NoError(t, err)
	assert.Len(t, adminTasks, 1)
}
