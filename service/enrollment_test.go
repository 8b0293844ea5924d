package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"entropy/apperr"
	"entropy/database"
	"entropy/models"
	"entropy/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testServices(t *testing.T) (*Identity, *Enrollment) {
	t.Helper()
	st := store.NewMemory()
	require.NoError(t, st.SeedModules(context.Background(), database.SeedCatalog()))
	return NewIdentity(st, bcrypt.MinCost), NewEnrollment(st)
}

func registerUser(t *testing.T, identity *Identity, email string) *models.User {
	t.Helper()
	user, err := identity.Register(context.Background(), "Ana", email, 15, "secret1")
	require.NoError(t, err)
	return user
}

func TestEnrollLifecycle(t *testing.T) {
	identity, enrollment := testServices(t)
	ctx := context.Background()
	user := registerUser(t, identity, "ana@x.com")

	// NotEnrolled -> Enrolled
	module, enrolled, err := enrollment.Enroll(ctx, user.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), module.Enrolled)
	assert.Equal(t, []uint{1}, enrolled)

	state, err := enrollment.State(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Progress[1], "progress starts at 0")

	// Enrolled -> Completed
	module, completed, progress, err := enrollment.Complete(ctx, user.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), module.ID)
	assert.Equal(t, []uint{1}, completed)
	assert.Equal(t, 100, progress[1])
}

func TestEnrollTwiceConflicts(t *testing.T) {
	identity, enrollment := testServices(t)
	ctx := context.Background()
	user := registerUser(t, identity, "ana@x.com")

	_, _, err := enrollment.Enroll(ctx, user.ID, 1)
	require.NoError(t, err)

	_, _, err = enrollment.Enroll(ctx, user.ID, 1)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// The counter must not move on the failing call
	module, err := enrollment.ModuleByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), module.Enrolled)
}

func TestCompleteBeforeEnrollFailsPrecondition(t *testing.T) {
	identity, enrollment := testServices(t)
	ctx := context.Background()
	user := registerUser(t, identity, "ana@x.com")

	_, _, _, err := enrollment.Complete(ctx, user.ID, 1)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindPrecondition))
}

func TestCompleteTwiceConflicts(t *testing.T) {
	identity, enrollment := testServices(t)
	ctx := context.Background()
	user := registerUser(t, identity, "ana@x.com")

	_, _, err := enrollment.Enroll(ctx, user.ID, 1)
	require.NoError(t, err)
	_, _, _, err = enrollment.Complete(ctx, user.ID, 1)
	require.NoError(t, err)

	_, _, _, err = enrollment.Complete(ctx, user.ID, 1)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestEnrollAfterCompleteConflicts(t *testing.T) {
	identity, enrollment := testServices(t)
	ctx := context.Background()
	user := registerUser(t, identity, "ana@x.com")

	_, _, err := enrollment.Enroll(ctx, user.ID, 1)
	require.NoError(t, err)
	_, _, _, err = enrollment.Complete(ctx, user.ID, 1)
	require.NoError(t, err)

	// Completed is terminal; no transition back to Enrolled
	_, _, err = enrollment.Enroll(ctx, user.ID, 1)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestEnrollUnknownModule(t *testing.T) {
	identity, enrollment := testServices(t)
	ctx := context.Background()
	user := registerUser(t, identity, "ana@x.com")

	_, _, err := enrollment.Enroll(ctx, user.ID, 999)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	_, _, _, err = enrollment.Complete(ctx, user.ID, 999)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestConcurrentEnrollmentsCountExactly(t *testing.T) {
	identity, enrollment := testServices(t)
	ctx := context.Background()

	const n = 40
	users := make([]*models.User, n)
	for i := range users {
		users[i] = registerUser(t, identity, fmt.Sprintf("user%d@x.com", i))
	}

	var wg sync.WaitGroup
	for _, user := range users {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			_, _, err := enrollment.Enroll(ctx, id, 1)
			assert.NoError(t, err)
		}(user.ID)
	}
	wg.Wait()

	module, err := enrollment.ModuleByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(n), module.Enrolled, "no increment may be lost")
}

func TestConcurrentSamePairEnrollsOnce(t *testing.T) {
	identity, enrollment := testServices(t)
	ctx := context.Background()
	user := registerUser(t, identity, "ana@x.com")

	const attempts = 10
	results := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := enrollment.Enroll(ctx, user.ID, 1)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded int
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.True(t, apperr.IsKind(err, apperr.KindConflict))
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one enroll may win the race")

	module, err := enrollment.ModuleByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), module.Enrolled)
}

func TestLearningState(t *testing.T) {
	identity, enrollment := testServices(t)
	ctx := context.Background()
	user := registerUser(t, identity, "ana@x.com")

	_, _, err := enrollment.Enroll(ctx, user.ID, 1)
	require.NoError(t, err)
	_, _, err = enrollment.Enroll(ctx, user.ID, 4)
	require.NoError(t, err)
	_, _, _, err = enrollment.Complete(ctx, user.ID, 1)
	require.NoError(t, err)

	state, err := enrollment.State(ctx, user.ID)
	require.NoError(t, err)

	assert.Equal(t, []uint{1, 4}, state.Enrolled)
	assert.Equal(t, []uint{1}, state.Completed)
	assert.Equal(t, map[uint]int{1: 100, 4: 0}, state.Progress)
	assert.Len(t, state.AllModules, 9)

	require.Len(t, state.EnrolledModules, 2)
	assert.Equal(t, uint(1), state.EnrolledModules[0].ID)
	require.Len(t, state.CompletedModules, 1)
	assert.Equal(t, uint(1), state.CompletedModules[0].ID)
}

func TestLearningStateUnknownUser(t *testing.T) {
	_, enrollment := testServices(t)

	_, err := enrollment.State(context.Background(), 999)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestCatalogGrouping(t *testing.T) {
	_, enrollment := testServices(t)

	grouped, total, err := enrollment.Catalog(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 9, total)
	assert.Len(t, grouped[models.CategoryDesign], 3)
	assert.Len(t, grouped[models.CategoryFilmmaking], 3)
	assert.Len(t, grouped[models.CategoryMusic], 3)
}

func TestRecommendations(t *testing.T) {
	identity, enrollment := testServices(t)
	ctx := context.Background()
	user := registerUser(t, identity, "ana@x.com")

	// Enrolled in one Design module: recommend the other Design modules,
	// ascending id, never the enrolled one.
	_, _, err := enrollment.Enroll(ctx, user.ID, 2)
	require.NoError(t, err)

	state, err := enrollment.State(ctx, user.ID)
	require.NoError(t, err)

	require.Len(t, state.Recommended, 2)
	assert.Equal(t, uint(1), state.Recommended[0].ID)
	assert.Equal(t, uint(3), state.Recommended[1].ID)
}

func TestRecommendationsCappedAtThree(t *testing.T) {
	identity, enrollment := testServices(t)
	ctx := context.Background()
	user := registerUser(t, identity, "ana@x.com")

	// Design and Filmmaking enrolled: 4 candidates remain, cap keeps 3.
	_, _, err := enrollment.Enroll(ctx, user.ID, 1)
	require.NoError(t, err)
	_, _, err = enrollment.Enroll(ctx, user.ID, 4)
	require.NoError(t, err)

	state, err := enrollment.State(ctx, user.ID)
	require.NoError(t, err)

	require.Len(t, state.Recommended, 3)
	assert.Equal(t, uint(2), state.Recommended[0].ID)
	assert.Equal(t, uint(3), state.Recommended[1].ID)
	assert.Equal(t, uint(5), state.Recommended[2].ID)
}

func TestRecommendationsEmptyForNewUser(t *testing.T) {
	identity, enrollment := testServices(t)
	user := registerUser(t, identity, "ana@x.com")

	state, err := enrollment.State(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, state.Recommended)
}
