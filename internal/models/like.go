package models

import "time"

// Like represents a like on a post. At most one like exists per
// (post, profile) pair.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_post_profile_like"`
	ProfileID uint      `json:"profile_id" gorm:"index;uniqueIndex:idx_post_profile_like"`
	CreatedAt time.Time `json:"created_at"`
}
