package venue

import "time"

// Venue is shared reference data; the form stores its numeric ID as a
// string and the canonical ID travels in patches.
type Venue struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Address   string    `json:"address"`
	Suburb    string    `json:"suburb"`
	Capacity  int       `json:"capacity"`
	IsVirtual bool      `gorm:"default:false" json:"is_virtual"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
