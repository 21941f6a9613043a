package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapp/internal/db/dbtest"
	"todoapp/internal/model"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	gormDB := dbtest.New(t)
	o := seedOptions{Email: "demo@example.com", Password: "demo1234"}

	stats, err := seed(ctx, gormDB, 10, o)
	require.NoError(t, err)
	assert.Equal(t, len(sampleTodos), stats.Todos)
	assert.Equal(t, 4, stats.Categories)
	assert.Equal(t, 2, stats.Tags)
	assert.Equal(t, 2, stats.Comments)
	assert.Equal(t, 2, stats.Reminders)

	var links int64
	require.NoError(t, gormDB.Model(&model.TagLink{}).Count(&links).Error)
	assert.EqualValues(t, 3, links)

	_, err = seed(ctx, gormDB, 10, o)
	assert.ErrorContains(t, err, "--replace")

	o.Replace = true
	_, err = seed(ctx, gormDB, 10, o)
	require.NoError(t, err)

	var users, todos int64
	require.NoError(t, gormDB.Model(&model.User{}).Count(&users).Error)
	require.NoError(t, gormDB.Model(&model.Todo{}).Count(&todos).Error)
	assert.EqualValues(t, 1, users)
	assert.EqualValues(t, len(sampleTodos), todos)
}
