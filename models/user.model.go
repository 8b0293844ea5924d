package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Age      int    `json:"age" gorm:"not null"`
	Password string `json:"-" gorm:"not null"`

	// Enrollment state lives on the user row as JSON columns so the
	// in-memory and durable paths carry the same always-present fields.
	EnrolledModules  datatypes.JSONSlice[uint]        `json:"enrolledModules"`
	CompletedModules datatypes.JSONSlice[uint]        `json:"completedModules"`
	Progress         datatypes.JSONType[map[uint]int] `json:"progress"`

	Version uint `json:"-" gorm:"default:0"` // optimistic lock counter
}

// HasEnrolled reports whether the user ever enrolled in the module.
func (u *User) HasEnrolled(moduleID uint) bool {
	return containsID(u.EnrolledModules, moduleID)
}

// HasCompleted reports whether the user completed the module.
func (u *User) HasCompleted(moduleID uint) bool {
	return containsID(u.CompletedModules, moduleID)
}

// ProgressMap returns the progress mapping, never nil.
func (u *User) ProgressMap() map[uint]int {
	progress := u.Progress.Data()
	if progress == nil {
		progress = map[uint]int{}
	}
	return progress
}

// SetProgress records the completion percentage for a module.
func (u *User) SetProgress(moduleID uint, percent int) {
	progress := u.ProgressMap()
	progress[moduleID] = percent
	u.Progress = datatypes.NewJSONType(progress)
}

// Clone returns a deep copy so callers can mutate without aliasing the
// stored record.
func (u *User) Clone() *User {
	clone := *u
	clone.EnrolledModules = append(datatypes.JSONSlice[uint]{}, u.EnrolledModules...)
	clone.CompletedModules = append(datatypes.JSONSlice[uint]{}, u.CompletedModules...)
	progress := map[uint]int{}
	for id, percent := range u.Progress.Data() {
		progress[id] = percent
	}
	clone.Progress = datatypes.NewJSONType(progress)
	return &clone
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
