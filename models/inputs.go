package models

// AdminInput carries the admin form fields for create and update requests.
// An empty ID means "create"; on update an empty Password means the
// password stays unchanged.
type AdminInput struct {
	ID          string `json:"-"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password,omitempty"`
}

// TrainerInput carries the trainer form fields. Exactly one of PhotoPath
// (a local file to upload) or Photo (an already-uploaded URL, kept on
// edit) must be set by the time the form is submitted.
type TrainerInput struct {
	ID         string
	FullName   string
	Experience string
	Level      TrainerLevel
	Students   string

	// PhotoPath is the path to a local image file to upload.
	PhotoPath string
	// Photo is the existing photo URL kept as-is on edit.
	Photo string
}

// BlogInput carries the blog form fields. ExistingPhotos are URLs the
// administrator chose to keep; PhotoPaths are local files to append. Both
// travel in a single multipart write, so a partial photo-set replacement
// is one request.
type BlogInput struct {
	ID             string
	Title          string
	Description    string
	ExistingPhotos []string
	PhotoPaths     []string
}

// LoginInput is the login form payload.
type LoginInput struct {
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

// ChangePasswordInput is the change-password dialog payload. Confirm is
// validated client-side only and never leaves the process.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	Confirm         string `json:"-"`
}
