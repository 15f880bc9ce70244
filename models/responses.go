package models

// MessageResponse is the error envelope the API attaches to failed
// operations. Every error body optionally carries a human-readable
// message; its absence triggers a generic fallback string on the client.
type MessageResponse struct {
	Message string `json:"message"`
}

// ProfileResponse is the body of the identity check endpoint. On success
// the user fields are populated and Message is empty; a soft failure
// (invalid or expired token returned with HTTP 200) carries only Message.
type ProfileResponse struct {
	User
	Message string `json:"message,omitempty"`
}

// LoginResponse is the body of the login endpoint: a bearer token on
// success, a message on failure.
type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// UploadResponse is the body of the single-file upload endpoint.
type UploadResponse struct {
	Filename string `json:"filename"`
}
