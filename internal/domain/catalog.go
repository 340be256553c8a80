package domain

// Walker is a professional offering walks in the marketplace.
type Walker struct {
	ID            string
	Name          string
	Photo         string
	Rating        float64
	Reviews       int
	PricePerHour  int
	Neighborhood  string
	AcceptedSizes []string
	Verified      bool
	MaxDogs       int
}

// Accepts reports whether the walker takes dogs of the given size code.
func (w Walker) Accepts(size string) bool {
	for _, s := range w.AcceptedSizes {
		if s == size {
			return true
		}
	}
	return false
}

// Pet is a dog registered by a tutor.
type Pet struct {
	ID     string
	Name   string
	Photo  string
	Breed  string
	Age    string
	Size   string
	Weight string
	Alerts []string
}

// Achievement is a gamification badge shown on the activity feed.
type Achievement struct {
	Title       string
	Description string
	Unlocked    bool
}

// SupportTicket is a case opened by a tutor from the support screen.
type SupportTicket struct {
	ID       string
	Category TicketType
	Status   string
	Title    string
	Date     string
}

// Support ticket statuses as shown to tutors.
const (
	SupportStatusOpen     = "Aberto"
	SupportStatusReview   = "Em Análise"
	SupportStatusResolved = "Resolvido"
)
