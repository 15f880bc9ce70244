package models

import "time"

// Blog represents a blog post with an ordered photo carousel.
type Blog struct {
	// ID is the server-assigned unique identifier.
	ID string `json:"_id"`

	// Title is the post headline.
	Title string `json:"title"`

	// Description is the post body text.
	Description string `json:"description"`

	// Photos is the ordered list of photo URLs. Order is significant:
	// the public site renders them as a carousel in this exact order.
	// A post always has at least one photo, enforced at write time.
	Photos []string `json:"photos"`

	// CreatedAt is the server-side creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
}

// EntityID implements the cache entity contract.
func (b Blog) EntityID() string { return b.ID }
