package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "todoapp/internal/errors"
	"todoapp/internal/repository"
)

func TestCategoryService_UniquePerOwner(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.user(t, "alice@x.com")
	bob := f.user(t, "bob@x.com")
	svc := NewCategoryService(repository.NewCategoryRepository(f.db))

	work, err := svc.Create(ctx, alice, " Work ")
	require.NoError(t, err)
	assert.Equal(t, "Work", work.Name)

	_, err = svc.Create(ctx, alice, "Work")
	assertKind(t, err, apperrors.ErrConflict, msgCategoryExists)

	_, err = svc.Create(ctx, bob, "Work")
	require.NoError(t, err)

	_, err = svc.Create(ctx, alice, "")
	assertKind(t, err, apperrors.ErrValidation, msgCategoryNameRequired)
}

func TestCategoryService_Rename(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.user(t, "a@x.com")
	other := f.user(t, "b@x.com")
	svc := NewCategoryService(repository.NewCategoryRepository(f.db))

	home, err := svc.Create(ctx, owner, "Home")
	require.NoError(t, err)
	_, err = svc.Create(ctx, owner, "Work")
	require.NoError(t, err)

	same, err := svc.Rename(ctx, owner, home.ID, "Home")
	require.NoError(t, err)
	assert.Equal(t, "Home", same.Name)

	_, err = svc.Rename(ctx, owner, home.ID, "Work")
	assertKind(t, err, apperrors.ErrConflict, msgCategoryExists)

	renamed, err := svc.Rename(ctx, owner, home.ID, "House")
	require.NoError(t, err)
	assert.Equal(t, "House", renamed.Name)

	_, err = svc.Rename(ctx, other, home.ID, "Stolen")
	assertKind(t, err, apperrors.ErrNotFound, msgCategoryNotFound)
	_, err = svc.Rename(ctx, other, home.ID, " ")
	assertKind(t, err, apperrors.ErrNotFound, msgCategoryNotFound)
	_, err = svc.Rename(ctx, owner, home.ID, " ")
	assertKind(t, err, apperrors.ErrValidation, msgCategoryNameRequired)

	assertKind(t, svc.Delete(ctx, other, home.ID), apperrors.ErrNotFound, msgCategoryNotFound)
	require.NoError(t, svc.Delete(ctx, owner, home.ID))

	list, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Work", list[0].Name)
}

func TestTagService_AttachDetach(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.user(t, "a@x.com")
	svc := NewTagService(repository.NewTagRepository(f.db), f.todos)

	todo := f.todo(t, owner, "Buy milk")
	tag, err := svc.Create(ctx, owner, "groceries")
	require.NoError(t, err)

	require.NoError(t, svc.Attach(ctx, owner, tag.ID, todo.ID))
	assertKind(t, svc.Attach(ctx, owner, tag.ID, todo.ID), apperrors.ErrConflict, msgTagAttached)

	tags, err := svc.ListForTodo(ctx, owner, todo.ID)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, tag.ID, tags[0].ID)

	require.NoError(t, svc.Detach(ctx, owner, tag.ID, todo.ID))
	assertKind(t, svc.Detach(ctx, owner, tag.ID, todo.ID), apperrors.ErrNotFound, msgTagNotAttached)

	require.NoError(t, svc.Attach(ctx, owner, tag.ID, todo.ID))
}

func TestTagService_OwnershipAndUniqueness(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.user(t, "alice@x.com")
	bob := f.user(t, "bob@x.com")
	svc := NewTagService(repository.NewTagRepository(f.db), f.todos)

	aliceTodo := f.todo(t, alice, "Alice's")
	bobTodo := f.todo(t, bob, "Bob's")
	aliceTag, err := svc.Create(ctx, alice, "urgent")
	require.NoError(t, err)

	_, err = svc.Create(ctx, alice, "urgent")
	assertKind(t, err, apperrors.ErrConflict, msgTagExists)
	bobTag, err := svc.Create(ctx, bob, "urgent")
	require.NoError(t, err)

	assertKind(t, svc.Attach(ctx, alice, aliceTag.ID, bobTodo.ID), apperrors.ErrNotFound, msgTodoNotFound)
	assertKind(t, svc.Attach(ctx, alice, bobTag.ID, aliceTodo.ID), apperrors.ErrNotFound, msgTagNotFound)
	assertKind(t, svc.Attach(ctx, alice, uuid.New(), aliceTodo.ID), apperrors.ErrNotFound, msgTagNotFound)

	require.NoError(t, svc.Attach(ctx, alice, aliceTag.ID, aliceTodo.ID))
	assertKind(t, svc.Detach(ctx, bob, aliceTag.ID, aliceTodo.ID), apperrors.ErrNotFound, "")
	_, err = svc.ListForTodo(ctx, bob, aliceTodo.ID)
	assertKind(t, err, apperrors.ErrNotFound, msgTodoNotFound)

	assertKind(t, svc.Delete(ctx, bob, aliceTag.ID), apperrors.ErrNotFound, msgTagNotFound)
	require.NoError(t, svc.Delete(ctx, alice, aliceTag.ID))

	tags, err := svc.ListForTodo(ctx, alice, aliceTodo.ID)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestCommentService(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.user(t, "alice@x.com")
	bob := f.user(t, "bob@x.com")
	svc := NewCommentService(repository.NewCommentRepository(f.db), f.todos)

	todo := f.todo(t, alice, "Renovate")

	c, err := svc.Create(ctx, alice, todo.ID, "  call the plumber ")
	require.NoError(t, err)
	assert.Equal(t, "call the plumber", c.Text)
	assert.Equal(t, alice, c.UserID)

	_, err = svc.Create(ctx, alice, todo.ID, " ")
	assertKind(t, err, apperrors.ErrValidation, msgCommentTextRequired)

	_, err = svc.Create(ctx, bob, todo.ID, "hi")
	assertKind(t, err, apperrors.ErrNotFound, msgTodoNotFound)
	_, err = svc.ListForTodo(ctx, bob, todo.ID)
	assertKind(t, err, apperrors.ErrNotFound, msgTodoNotFound)
	_, err = svc.Update(ctx, bob, c.ID, "edited")
	assertKind(t, err, apperrors.ErrNotFound, msgCommentNotFound)
	_, err = svc.Create(ctx, bob, todo.ID, " ")
	assertKind(t, err, apperrors.ErrNotFound, msgTodoNotFound)
	_, err = svc.Update(ctx, bob, c.ID, " ")
	assertKind(t, err, apperrors.ErrNotFound, msgCommentNotFound)
	_, err = svc.Update(ctx, alice, c.ID, " ")
	assertKind(t, err, apperrors.ErrValidation, msgCommentTextRequired)
	assertKind(t, svc.Delete(ctx, bob, c.ID), apperrors.ErrNotFound, msgCommentNotFound)

	updated, err := svc.Update(ctx, alice, c.ID, "call the electrician")
	require.NoError(t, err)
	assert.Equal(t, "call the electrician", updated.Text)

	list, err := svc.ListForTodo(ctx, alice, todo.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "call the electrician", list[0].Text)

	require.NoError(t, svc.Delete(ctx, alice, c.ID))
	list, err = svc.ListForTodo(ctx, alice, todo.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
