package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cois1702/trio-homework-app/app/models"
)

func TestMemoryCollectionCRUD(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	task := models.Task{ID: "t1", Grade: "5", ClassLetter: "B", Subject: "Math"}
	require.NoError(t, st.Tasks.Insert(ctx, task))

	tasks, err := st.Tasks.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Math", tasks[0].Subject)

	task.Done = true
	require.NoError(t, st.Tasks.Replace(ctx, "t1", task))
	got, found, err := FindByID(ctx, st.Tasks, "t1")
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, got.Done)

	require.NoError(t, st.Tasks.Delete(ctx, "t1"))
	tasks, err = st.Tasks.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestMemoryDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	assert.NoError(t, st.Tasks.Delete(ctx, "never-existed"))
	assert.NoError(t, st.Teachers.Delete(ctx, "never-existed"))
}

func TestMemoryReplaceMissingIsNoOp(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	require.NoError(t, st.Tasks.Replace(ctx, "ghost", models.Task{ID: "ghost"}))
	tasks, err := st.Tasks.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks, "Replace must not insert")
}

func TestMemoryListReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	require.NoError(t, st.Teachers.Insert(ctx, models.Teacher{ID: "a", Name: "A"}))
	snapshot, err := st.Teachers.List(ctx)
	require.NoError(t, err)

	snapshot[0].Name = "mutated"
	fresh, err := st.Teachers.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", fresh[0].Name)
}

func TestMemorySettingsLazyDefault(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	s, err := st.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), s)
}

func TestMemorySettingsPartialMerge(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	name := "Springfield Elementary"
	s, err := st.Settings.Update(ctx, models.SettingsPatch{SchoolName: &name})
	require.NoError(t, err)
	assert.Equal(t, name, s.SchoolName)
	assert.Equal(t, models.DefaultSettings().SchoolLogo, s.SchoolLogo)

	logo := "https://files.invalid/logos/1-logo.png"
	s, err = st.Settings.Update(ctx, models.SettingsPatch{SchoolLogo: &logo})
	require.NoError(t, err)
	assert.Equal(t, logo, s.SchoolLogo)
	assert.Equal(t, name, s.SchoolName, "unpatched field must stay put")
}

func TestFindByIDMissing(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	_, found, err := FindByID(ctx, st.Uploads, "missing")
	require.NoError(t, err)
	assert.False(t, found)
}
