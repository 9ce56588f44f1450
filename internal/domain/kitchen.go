package domain

import "time"

// Kitchen is a seller's storefront. OwnerName is copied from the owning
// user at creation time and is not kept in sync with later renames.
type Kitchen struct {
	ID          uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"not null"`
	OwnerID     uint64    `json:"ownerId" gorm:"not null;index"`
	OwnerName   string    `json:"ownerName"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Rating      float64   `json:"rating" gorm:"default:0"`
	TotalOrders int64     `json:"totalOrders" gorm:"default:0"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
