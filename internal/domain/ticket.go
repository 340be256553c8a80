package domain

// TicketType enumerates support case categories.
type TicketType string

const (
	TicketTypeFinancial TicketType = "Financeiro"
	TicketTypeTechnical TicketType = "Técnico"
	TicketTypeEmergency TicketType = "Emergência"
	TicketTypeComplaint TicketType = "Denúncia"
)

// TicketTypes lists every known ticket type in display order.
func TicketTypes() []TicketType {
	return []TicketType{TicketTypeEmergency, TicketTypeFinancial, TicketTypeTechnical, TicketTypeComplaint}
}

// Valid reports whether t is a known ticket type.
func (t TicketType) Valid() bool {
	switch t {
	case TicketTypeFinancial, TicketTypeTechnical, TicketTypeEmergency, TicketTypeComplaint:
		return true
	}
	return false
}

// TicketStatus enumerates lifecycle states for attendant tickets.
type TicketStatus string

const (
	TicketStatusUnderReview TicketStatus = "Em análise"
	TicketStatusInService   TicketStatus = "Em atendimento"
	TicketStatusResolved    TicketStatus = "Resolvido"
)

// Ticket is a support or emergency case handled by attendants.
type Ticket struct {
	ID           string
	Protocol     string
	Type         TicketType
	Subject      string
	Description  string
	Status       TicketStatus
	WaitTime     int // minutes
	UserName     string
	CreatedAt    string
	Attachments  []Attachment
	Interactions []Interaction
}

// Attachment is a file attached by the requester.
type Attachment struct {
	Name string
	URL  string
}

// Clone returns a deep copy so seed data is never shared between sessions.
func (t *Ticket) Clone() *Ticket {
	if t == nil {
		return nil
	}
	cp := *t
	cp.Attachments = append([]Attachment(nil), t.Attachments...)
	cp.Interactions = append([]Interaction(nil), t.Interactions...)
	return &cp
}
