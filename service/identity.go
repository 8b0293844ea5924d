// Package service holds the identity and enrollment components. Both run
// against the injected store and stay free of transport concerns.
package service

import (
	"context"
	"log"

	"entropy/apperr"
	"entropy/models"
	"entropy/store"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// Registration age window for the teen platform.
const (
	MinAge = 13
	MaxAge = 19
)

const minPasswordLen = 6

// Identity creates accounts and verifies credentials.
type Identity struct {
	store     store.Store
	saltRound int
}

func NewIdentity(st store.Store, saltRound int) *Identity {
	return &Identity{store: st, saltRound: saltRound}
}

// Register creates a new account with empty enrollment state. The plaintext
// password is hashed and never stored.
func (s *Identity) Register(ctx context.Context, name, email string, age int, password string) (*models.User, error) {
	if name == "" || email == "" || age == 0 || password == "" {
		return nil, apperr.Validation("All fields are required")
	}
	if age < MinAge || age > MaxAge {
		return nil, apperr.Validation("Age must be between 13 and 19")
	}
	if len(password) < minPasswordLen {
		return nil, apperr.Validation("Password must be at least 6 characters long")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.saltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return nil, apperr.Internal("Failed to create user", err)
	}

	user := &models.User{
		Name:             name,
		Email:            email,
		Age:              age,
		Password:         string(hashedPassword),
		EnrolledModules:  datatypes.JSONSlice[uint]{},
		CompletedModules: datatypes.JSONSlice[uint]{},
		Progress:         datatypes.NewJSONType(map[uint]int{}),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies email and password. The failure is the same for an
// unknown email and a wrong password so accounts cannot be enumerated.
func (s *Identity) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperr.Validation("Email and password are required")
	}

	user, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, apperr.Auth("Invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.Auth("Invalid email or password")
	}
	return user, nil
}

// UserByID resolves an authenticated id back to a user record.
func (s *Identity) UserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.store.UserByID(ctx, id)
}
