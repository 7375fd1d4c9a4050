// Package course owns the course catalog: course records, their ordered
// lesson content, and the lifecycle rules enforcing creator ownership.
package course

import (
	id "coursebay/pkg/domain"
)

// ContentItem is a single lesson unit within a course. JSON tags double as
// the JSONB storage encoding. Within a course no two items may share both
// title and body; that pair is the duplicate-detection key.
type ContentItem struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Duration string `json:"duration"`
	VideoURL string `json:"videoUrl"`
}

// Matches reports whether the item carries the given duplicate-detection key.
func (ci ContentItem) Matches(title, body string) bool {
	return ci.Title == title && ci.Body == body
}

// Course is a purchasable course. CreatorID is immutable after creation and
// is the sole authority for mutation; Author snapshots the creator's name at
// creation time. Content keeps append order.
type Course struct {
	ID          id.CourseID
	Name        string
	Description string
	Author      string
	Cost        int64
	CreatorID   id.AdminID
	Content     []ContentItem
}

// OwnedBy reports whether adminID created this course.
func (c *Course) OwnedBy(adminID id.AdminID) bool {
	return c.CreatorID == adminID
}

// ContainsContent reports whether any item matches the (title, body) key.
func (c *Course) ContainsContent(title, body string) bool {
	for _, item := range c.Content {
		if item.Matches(title, body) {
			return true
		}
	}
	return false
}

// WithoutContent returns the content sequence with every (title, body) match
// removed, preserving the order of the remainder.
func (c *Course) WithoutContent(title, body string) []ContentItem {
	remaining := make([]ContentItem, 0, len(c.Content))
	for _, item := range c.Content {
		if !item.Matches(title, body) {
			remaining = append(remaining, item)
		}
	}
	return remaining
}
