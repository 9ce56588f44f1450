package domain

import "time"

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

func (r Role) Valid() bool {
	return r == RoleBuyer || r == RoleSeller
}

type User struct {
	ID           uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	ProfilePic   string    `json:"profilePic,omitempty"`
	Role         Role      `json:"role" gorm:"type:enum('buyer','seller');default:'buyer'"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
