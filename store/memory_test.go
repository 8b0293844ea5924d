package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"entropy/apperr"
	"entropy/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModules() []models.Module {
	return []models.Module{
		{ID: 1, Category: models.CategoryDesign, Title: "Intro to Graphic Design"},
		{ID: 2, Category: models.CategoryDesign, Title: "UI/UX Design Basics"},
		{ID: 3, Category: models.CategoryMusic, Title: "Music Production Basics"},
	}
}

func seededMemory(t *testing.T) *Memory {
	t.Helper()
	m := NewMemory()
	require.NoError(t, m.SeedModules(context.Background(), testModules()))
	return m
}

func TestMemoryCreateUserAssignsUniqueIDs(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	first := &models.User{Name: "Ana", Email: "ana@x.com", Age: 15, Password: "hash"}
	second := &models.User{Name: "Ben", Email: "ben@x.com", Age: 16, Password: "hash"}

	require.NoError(t, m.CreateUser(ctx, first))
	require.NoError(t, m.CreateUser(ctx, second))

	assert.NotZero(t, first.ID)
	assert.NotZero(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestMemoryCreateUserDuplicateEmail(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.CreateUser(ctx, &models.User{Name: "Ana", Email: "ana@x.com", Age: 15, Password: "hash"}))

	err := m.CreateUser(ctx, &models.User{Name: "Imposter", Email: "ana@x.com", Age: 14, Password: "hash"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// The failing call must not disturb existing state
	users, err := m.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Ana", users[0].Name)
}

func TestMemoryConcurrentRegistrationsGetDistinctIDs(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	const n = 50
	ids := make(chan uint, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := &models.User{Name: "User", Email: fmt.Sprintf("user%d@x.com", i), Age: 15, Password: "hash"}
			if err := m.CreateUser(ctx, user); err == nil {
				ids <- user.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := map[uint]bool{}
	for id := range ids {
		assert.False(t, seen[id], "id %d allocated twice", id)
		seen[id] = true
	}
}

func TestMemoryUpdateUserIsSerializedPerUser(t *testing.T) {
	m := seededMemory(t)
	ctx := context.Background()

	user := &models.User{Name: "Ana", Email: "ana@x.com", Age: 15, Password: "hash"}
	require.NoError(t, m.CreateUser(ctx, user))

	// Each update appends one module id; with atomic read-check-write all
	// 20 survive.
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := m.UpdateUser(ctx, user.ID, func(u *models.User) error {
				u.EnrolledModules = append(u.EnrolledModules, uint(100+i))
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := m.UserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, got.EnrolledModules, 20)
	assert.Equal(t, uint(20), got.Version)
}

func TestMemoryUpdateUserErrorAbortsWrite(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	user := &models.User{Name: "Ana", Email: "ana@x.com", Age: 15, Password: "hash"}
	require.NoError(t, m.CreateUser(ctx, user))

	_, err := m.UpdateUser(ctx, user.ID, func(u *models.User) error {
		u.EnrolledModules = append(u.EnrolledModules, 1)
		return apperr.Conflict("Already enrolled in this module")
	})
	require.Error(t, err)

	got, err := m.UserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, got.EnrolledModules)
	assert.Zero(t, got.Version)
}

func TestMemoryIncrementEnrolledNoLostUpdates(t *testing.T) {
	m := seededMemory(t)
	ctx := context.Background()

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.IncrementEnrolled(ctx, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	module, err := m.ModuleByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(n), module.Enrolled)
}

func TestMemorySeedModulesIsOneShot(t *testing.T) {
	m := seededMemory(t)
	ctx := context.Background()

	_, err := m.IncrementEnrolled(ctx, 1)
	require.NoError(t, err)

	// Re-seeding must not reset counters
	require.NoError(t, m.SeedModules(ctx, testModules()))

	module, err := m.ModuleByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), module.Enrolled)
}

func TestMemoryModulesAscendingOrder(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	require.NoError(t, m.SeedModules(ctx, []models.Module{
		{ID: 3, Category: models.CategoryMusic},
		{ID: 1, Category: models.CategoryDesign},
		{ID: 2, Category: models.CategoryDesign},
	}))

	modules, err := m.Modules(ctx)
	require.NoError(t, err)
	require.Len(t, modules, 3)
	assert.Equal(t, uint(1), modules[0].ID)
	assert.Equal(t, uint(2), modules[1].ID)
	assert.Equal(t, uint(3), modules[2].ID)
}

func TestMemoryUnknownLookups(t *testing.T) {
	m := seededMemory(t)
	ctx := context.Background()

	_, err := m.UserByID(ctx, 999)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	_, err = m.ModuleByID(ctx, 999)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	_, err = m.IncrementEnrolled(ctx, 999)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
