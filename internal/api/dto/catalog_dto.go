package dto

// WalkerQuery captures walker search filters.
type WalkerQuery struct {
	Query string `query:"q"`
	Size  string `query:"size"`
}

// WalkerResponse is one walker card.
type WalkerResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Photo         string   `json:"photo"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	PricePerHour  int      `json:"price_per_hour"`
	Neighborhood  string   `json:"neighborhood"`
	AcceptedSizes []string `json:"accepted_sizes"`
	Verified      bool     `json:"verified"`
	MaxDogs       int      `json:"max_dogs"`
}

// PetResponse is one pet card.
type PetResponse struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Photo  string   `json:"photo"`
	Breed  string   `json:"breed"`
	Age    string   `json:"age"`
	Size   string   `json:"size"`
	Weight string   `json:"weight,omitempty"`
	Alerts []string `json:"alerts"`
}

// AchievementResponse is one badge.
type AchievementResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

// SharePetRequest payload.
type SharePetRequest struct {
	Email string `json:"email"`
}
