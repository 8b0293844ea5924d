package service

import (
	"context"

	"entropy/apperr"
	"entropy/models"
	"entropy/store"
)

// maxRecommendations caps the advisory recommendation list.
const maxRecommendations = 3

// Enrollment owns the per-(user, module) lifecycle:
// NotEnrolled -> Enrolled -> Completed. No transition leaves Completed.
type Enrollment struct {
	store store.Store
}

func NewEnrollment(st store.Store) *Enrollment {
	return &Enrollment{store: st}
}

// LearningState is the per-user view assembled for GET /modules.
type LearningState struct {
	User             *models.User
	Enrolled         []uint
	Completed        []uint
	Progress         map[uint]int
	EnrolledModules  []models.Module
	CompletedModules []models.Module
	AllModules       []models.Module
	Recommended      []models.Module
}

// Enroll moves the pair to Enrolled, bumps the module counter exactly once
// and initializes progress at 0.
func (s *Enrollment) Enroll(ctx context.Context, userID, moduleID uint) (*models.Module, []uint, error) {
	if _, err := s.store.ModuleByID(ctx, moduleID); err != nil {
		return nil, nil, err
	}

	user, err := s.store.UpdateUser(ctx, userID, func(u *models.User) error {
		// Completion never removes the enrollment, so this single check
		// rejects both Enrolled and Completed pairs.
		if u.HasEnrolled(moduleID) {
			return apperr.Conflict("Already enrolled in this module")
		}
		u.EnrolledModules = append(u.EnrolledModules, moduleID)
		u.SetProgress(moduleID, 0)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	module, err := s.store.IncrementEnrolled(ctx, moduleID)
	if err != nil {
		return nil, nil, err
	}
	return module, user.EnrolledModules, nil
}

// Complete moves an Enrolled pair to Completed and pins progress at 100.
func (s *Enrollment) Complete(ctx context.Context, userID, moduleID uint) (*models.Module, []uint, map[uint]int, error) {
	module, err := s.store.ModuleByID(ctx, moduleID)
	if err != nil {
		return nil, nil, nil, err
	}

	user, err := s.store.UpdateUser(ctx, userID, func(u *models.User) error {
		if !u.HasEnrolled(moduleID) {
			return apperr.Precondition("You must be enrolled in this module to complete it")
		}
		if u.HasCompleted(moduleID) {
			return apperr.Conflict("Module already completed")
		}
		u.CompletedModules = append(u.CompletedModules, moduleID)
		u.SetProgress(moduleID, 100)
		return nil
	})
	if err != nil {
		return nil, nil, nil, err
	}

	return module, user.CompletedModules, user.ProgressMap(), nil
}

// State returns the user's enrollment view plus a catalog snapshot. The
// enrolled counters in the snapshot may be momentarily stale under
// concurrent enrollment.
func (s *Enrollment) State(ctx context.Context, userID uint) (*LearningState, error) {
	user, err := s.store.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	modules, err := s.store.Modules(ctx)
	if err != nil {
		return nil, err
	}

	state := &LearningState{
		User:       user,
		Enrolled:   user.EnrolledModules,
		Completed:  user.CompletedModules,
		Progress:   map[uint]int{},
		AllModules: modules,
	}

	// Every enrolled module reports a progress entry, defaulting to 0.
	stored := user.ProgressMap()
	for _, id := range user.EnrolledModules {
		state.Progress[id] = stored[id]
	}

	for _, module := range modules {
		if user.HasEnrolled(module.ID) {
			state.EnrolledModules = append(state.EnrolledModules, module)
		}
		if user.HasCompleted(module.ID) {
			state.CompletedModules = append(state.CompletedModules, module)
		}
	}

	state.Recommended = recommend(user, modules)
	return state, nil
}

// Catalog returns the modules grouped by category plus the total count.
func (s *Enrollment) Catalog(ctx context.Context) (map[string][]models.Module, int, error) {
	modules, err := s.store.Modules(ctx)
	if err != nil {
		return nil, 0, err
	}

	grouped := make(map[string][]models.Module, len(models.Categories()))
	for _, category := range models.Categories() {
		grouped[category] = []models.Module{}
	}
	for _, module := range modules {
		grouped[module.Category] = append(grouped[module.Category], module)
	}
	return grouped, len(modules), nil
}

// ModuleByID returns a single catalog module.
func (s *Enrollment) ModuleByID(ctx context.Context, id uint) (*models.Module, error) {
	return s.store.ModuleByID(ctx, id)
}

// recommend is advisory: modules sharing a category with the user's
// enrollments, minus anything already enrolled or completed, capped at
// three in catalog order.
func recommend(user *models.User, modules []models.Module) []models.Module {
	categories := map[string]bool{}
	for _, module := range modules {
		if user.HasEnrolled(module.ID) {
			categories[module.Category] = true
		}
	}

	var recommended []models.Module
	for _, module := range modules {
		if len(recommended) == maxRecommendations {
			break
		}
		if !categories[module.Category] || user.HasEnrolled(module.ID) {
			continue
		}
		recommended = append(recommended, module)
	}
	return recommended
}
