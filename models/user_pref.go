package models

import (
	"time"

	"github.com/google/uuid"
)

// UserPref holds the three filter dimensions for one user (1:1 with the
// external identity). It is replaced wholesale on every update.
type UserPref struct {
	ID             string           `gorm:"primaryKey;type:uuid" json:"id"`
	ExternalUserID string           `gorm:"uniqueIndex;not null" json:"-"`
	Age            CodeSet[AgeBand] `gorm:"type:varchar(16);not null" json:"age"`
	Gender         CodeSet[Gender]  `gorm:"type:varchar(8);not null" json:"gender"`
	Size           CodeSet[Size]    `gorm:"type:varchar(16);not null" json:"size"`
	CreatedAt      time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
}

// DefaultUserPref covers every band, gender and size.
func DefaultUserPref(externalUserID string) *UserPref {
	return &UserPref{
		ID:             uuid.NewString(),
		ExternalUserID: externalUserID,
		Age:            NewCodeSet(AllAgeBands, AllAgeBands),
		Gender:         NewCodeSet(AllGenders, AllGenders),
		Size:           NewCodeSet(AllSizes, AllSizes),
	}
}
