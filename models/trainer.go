package models

// TrainerLevel is the belt colour of a trainer. The codes are the Uzbek
// colour names used by the API; the client renders a localized label next
// to each code.
type TrainerLevel string

const (
	LevelOq        TrainerLevel = "Oq"        // white
	LevelSariq     TrainerLevel = "Sariq"     // yellow
	LevelApelsin   TrainerLevel = "Apelsin"   // orange
	LevelYashil    TrainerLevel = "Yashil"    // green
	LevelKok       TrainerLevel = "Ko'k"      // blue
	LevelJigarrang TrainerLevel = "Jigarrang" // brown
	LevelQora      TrainerLevel = "Qora"      // black
)

// TrainerLevels lists every belt colour in rank order, lowest first.
// Used by the trainer form to render the level selector.
func TrainerLevels() []TrainerLevel {
	return []TrainerLevel{
		LevelOq,
		LevelSariq,
		LevelApelsin,
		LevelYashil,
		LevelKok,
		LevelJigarrang,
		LevelQora,
	}
}

// Valid reports whether l is one of the seven known belt colours.
func (l TrainerLevel) Valid() bool {
	for _, known := range TrainerLevels() {
		if l == known {
			return true
		}
	}
	return false
}

// Trainer represents a trainer profile shown on the public site and
// managed through the admin client.
type Trainer struct {
	// ID is the server-assigned unique identifier.
	ID string `json:"_id"`

	// FullName is the trainer's display name.
	FullName string `json:"fullName"`

	// Experience is the years of experience. The API stores it as a
	// string; the client only checks that it parses as a number.
	Experience string `json:"experience"`

	// Level is the trainer's belt colour.
	Level TrainerLevel `json:"level"`

	// Students is the number of students, stored as a string by the API
	// for the same historical reason as Experience.
	Students string `json:"students"`

	// Photo is the URL (or uploaded file reference) of the trainer's
	// portrait. Every trainer has exactly one photo.
	Photo string `json:"photo"`
}

// EntityID implements the cache entity contract.
func (t Trainer) EntityID() string { return t.ID }
