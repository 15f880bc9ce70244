package models

// User represents an administrator account of the sport center.
// Administrators authenticate with a phone number and manage all other
// resources through the admin client.
type User struct {
	// ID is the server-assigned unique identifier of the account.
	// The API is Mongo-shaped, hence the "_id" wire name.
	ID string `json:"_id"`

	// FullName is the display name of the administrator.
	FullName string `json:"fullName"`

	// PhoneNumber is the login identifier: exactly nine digits,
	// enforced client-side before any write request.
	PhoneNumber string `json:"phoneNumber"`

	// Password is write-only: it is sent on create (and on update when
	// the administrator chooses a new one) and is never populated from
	// a read response.
	Password string `json:"password,omitempty"`
}

// EntityID implements the cache entity contract.
func (u User) EntityID() string { return u.ID }
