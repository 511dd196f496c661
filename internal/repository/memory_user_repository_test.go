package repository

import (
	"sync"
	"testing"
	"time"

	"github.com/m1zuki/todo-quota-api/internal/constants"
	"github.com/m1zuki/todo-quota-api/internal/models"
	"github.com/m1zuki/todo-quota-api/internal/utils"
	"github.com/stretchr/testify/require"
)

func newTestUser(username string) models.User {
	return models.User{
		ID:       utils.NewID(),
		Name:     "Test User",
		Username: username,
		Todos:    []models.Todo{},
	}
}

func newTestTodo(title string) models.Todo {
	return models.Todo{
		ID:        utils.NewID(),
		Title:     title,
		CreatedAt: time.Now(),
	}
}

func TestInsert_DuplicateUsername(t *testing.T) {
	repo := NewMemoryUserRepository()

	require.NoError(t, repo.Insert(newTestUser("ana1")))
	require.ErrorIs(t, repo.Insert(newTestUser("ana1")), ErrUsernameTaken)
}

func TestInsert_ConcurrentSameUsername(t *testing.T) {
	repo := NewMemoryUserRepository()

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.Insert(newTestUser("ana1"))
		}()
	}
	wg.Wait()
	close(errs)

	inserted := 0
	for err := range errs {
		if err == nil {
			inserted++
		} else {
			require.ErrorIs(t, err, ErrUsernameTaken)
		}
	}
	require.Equal(t, 1, inserted)
}

func TestAppendTodo_ConcurrentStopsAtQuota(t *testing.T) {
	repo := NewMemoryUserRepository()
	require.NoError(t, repo.Insert(newTestUser("ana1")))

	var wg sync.WaitGroup
	for i := 0; i < constants.FreeTodoQuota*2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.AppendTodo("ana1", newTestTodo("todo"))
		}()
	}
	wg.Wait()

	todos, err := repo.ListTodos("ana1")
	require.NoError(t, err)
	require.Len(t, todos, constants.FreeTodoQuota)
}

func TestFindByID_And_FindByUsername(t *testing.T) {
	repo := NewMemoryUserRepository()
	user := newTestUser("ana1")
	require.NoError(t, repo.Insert(user))

	byID, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	require.Equal(t, "ana1", byID.Username)

	byName, err := repo.FindByUsername("ana1")
	require.NoError(t, err)
	require.Equal(t, user.ID, byName.ID)

	_, err = repo.FindByID(utils.NewID())
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.FindByUsername("nobody")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindByUsername_CaseSensitive(t *testing.T) {
	repo := NewMemoryUserRepository()
	require.NoError(t, repo.Insert(newTestUser("Ana")))

	_, err := repo.FindByUsername("ana")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestSetPro(t *testing.T) {
	repo := NewMemoryUserRepository()
	user := newTestUser("ana1")
	require.NoError(t, repo.Insert(user))

	upgraded, err := repo.SetPro(user.ID)
	require.NoError(t, err)
	require.True(t, upgraded.Pro)

	_, err = repo.SetPro(user.ID)
	require.ErrorIs(t, err, ErrProAlreadyActive)

	_, err = repo.SetPro(utils.NewID())
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestAppendTodo_QuotaForFreeUsers(t *testing.T) {
	repo := NewMemoryUserRepository()
	user := newTestUser("ana1")
	require.NoError(t, repo.Insert(user))

	for i := 0; i < constants.FreeTodoQuota; i++ {
		require.NoError(t, repo.AppendTodo("ana1", newTestTodo("todo")))
	}

	require.ErrorIs(t, repo.AppendTodo("ana1", newTestTodo("over quota")), ErrQuotaExceeded)

	todos, err := repo.ListTodos("ana1")
	require.NoError(t, err)
	require.Len(t, todos, constants.FreeTodoQuota)
}

func TestAppendTodo_ProUsersBypassQuota(t *testing.T) {
	repo := NewMemoryUserRepository()
	user := newTestUser("ana1")
	require.NoError(t, repo.Insert(user))
	_, err := repo.SetPro(user.ID)
	require.NoError(t, err)

	for i := 0; i < 15; i++ {
		require.NoError(t, repo.AppendTodo("ana1", newTestTodo("todo")))
	}

	todos, err := repo.ListTodos("ana1")
	require.NoError(t, err)
	require.Len(t, todos, 15)
}

func TestListTodos_InsertionOrder(t *testing.T) {
	repo := NewMemoryUserRepository()
	require.NoError(t, repo.Insert(newTestUser("ana1")))

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		require.NoError(t, repo.AppendTodo("ana1", newTestTodo(title)))
	}

	todos, err := repo.ListTodos("ana1")
	require.NoError(t, err)
	require.Len(t, todos, 3)
	for i, title := range titles {
		require.Equal(t, title, todos[i].Title)
	}
}

func TestUpdateTodo_ReplacesTitleAndDeadline(t *testing.T) {
	repo := NewMemoryUserRepository()
	require.NoError(t, repo.Insert(newTestUser("ana1")))

	todo := newTestTodo("before")
	require.NoError(t, repo.AppendTodo("ana1", todo))

	deadline := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	updated, err := repo.UpdateTodo("ana1", todo.ID, "after", &deadline)
	require.NoError(t, err)
	require.Equal(t, "after", updated.Title)
	require.Equal(t, &deadline, updated.Deadline)

	// nil deadline overwrites the previous value
	updated, err = repo.UpdateTodo("ana1", todo.ID, "after", nil)
	require.NoError(t, err)
	require.Nil(t, updated.Deadline)

	_, err = repo.UpdateTodo("ana1", utils.NewID(), "x", nil)
	require.ErrorIs(t, err, ErrTodoNotFound)
}

func TestCompleteTodo_Idempotent(t *testing.T) {
	repo := NewMemoryUserRepository()
	require.NoError(t, repo.Insert(newTestUser("ana1")))

	todo := newTestTodo("finish me")
	require.NoError(t, repo.AppendTodo("ana1", todo))

	done, err := repo.CompleteTodo("ana1", todo.ID)
	require.NoError(t, err)
	require.True(t, done.Done)

	done, err = repo.CompleteTodo("ana1", todo.ID)
	require.NoError(t, err)
	require.True(t, done.Done)
}

func TestDeleteTodo(t *testing.T) {
	repo := NewMemoryUserRepository()
	require.NoError(t, repo.Insert(newTestUser("ana1")))

	keep := newTestTodo("keep")
	drop := newTestTodo("drop")
	require.NoError(t, repo.AppendTodo("ana1", keep))
	require.NoError(t, repo.AppendTodo("ana1", drop))

	require.NoError(t, repo.DeleteTodo("ana1", drop.ID))

	todos, err := repo.ListTodos("ana1")
	require.NoError(t, err)
	require.Len(t, todos, 1)
	require.Equal(t, keep.ID, todos[0].ID)

	require.ErrorIs(t, repo.DeleteTodo("ana1", drop.ID), ErrTodoNotFound)
}

func TestSnapshots_DoNotAliasStore(t *testing.T) {
	repo := NewMemoryUserRepository()
	user := newTestUser("ana1")
	require.NoError(t, repo.Insert(user))
	require.NoError(t, repo.AppendTodo("ana1", newTestTodo("original")))

	snapshot, err := repo.FindByUsername("ana1")
	require.NoError(t, err)
	snapshot.Todos[0].Title = "mutated copy"

	todos, err := repo.ListTodos("ana1")
	require.NoError(t, err)
	require.Equal(t, "original", todos[0].Title)
}
