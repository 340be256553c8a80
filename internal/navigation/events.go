package navigation

import "github.com/spec-kit/happy-paws/internal/domain"

// EventName identifies a navigation event.
type EventName string

const (
	EventLogin                 EventName = "login"
	EventGoRegister            EventName = "go_register"
	EventRegistrationCompleted EventName = "registration_completed"
	EventGoBack                EventName = "go_back"
	EventGoHome                EventName = "go_home"
	EventGoSearch              EventName = "go_search"
	EventSelectWalker          EventName = "select_walker"
	EventScheduleWalk          EventName = "schedule_walk"
	EventScheduleConfirmed     EventName = "schedule_confirmed"
	EventViewWalk              EventName = "view_walk"
	EventWalkStarted           EventName = "walk_started"
	EventAcknowledgeWalk       EventName = "acknowledge_walk"
	EventWalkEnded             EventName = "walk_ended"
	EventTakePhoto             EventName = "take_photo"
	EventPhotoPosted           EventName = "photo_posted"
	EventEmergency             EventName = "emergency"
	EventReviewSubmitted       EventName = "review_submitted"
	EventGoPets                EventName = "go_pets"
	EventSelectPet             EventName = "select_pet"
	EventAddPet                EventName = "add_pet"
	EventPetAdded              EventName = "pet_added"
	EventGoActivityFeed        EventName = "go_activity_feed"
	EventOpenSupport           EventName = "open_support"
	EventTicketSelected        EventName = "ticket_selected"
	EventTabChanged            EventName = "tab_changed"
	EventLogout                EventName = "logout"
)

// completions are raised by services once their checks or simulated delay
// finish. Clients ask for them through the matching operation instead.
var completions = map[EventName]struct{}{
	EventLogin:                 {},
	EventRegistrationCompleted: {},
	EventScheduleConfirmed:     {},
	EventWalkStarted:           {},
	EventWalkEnded:             {},
	EventPhotoPosted:           {},
}

// Completion reports whether n may only be raised by a service operation.
func (n EventName) Completion() bool {
	_, ok := completions[n]
	return ok
}

// Event is a navigation request with its optional payload.
type Event struct {
	Name   EventName
	Tab    domain.Tab
	Flow   domain.Flow
	Ticket *domain.Ticket
}

// Named builds a payload-free event.
func Named(name EventName) Event {
	return Event{Name: name}
}

// Login builds the login event for the chosen flow.
func Login(flow domain.Flow) Event {
	return Event{Name: EventLogin, Flow: flow}
}

// RegistrationCompleted builds the completion event for a registered role.
func RegistrationCompleted(role domain.Flow) Event {
	return Event{Name: EventRegistrationCompleted, Flow: role}
}

// TabChanged builds a tab selection event.
func TabChanged(tab domain.Tab) Event {
	return Event{Name: EventTabChanged, Tab: tab}
}

// TicketSelected builds the dashboard selection event. A nil ticket is refused by the router.
func TicketSelected(ticket *domain.Ticket) Event {
	return Event{Name: EventTicketSelected, Ticket: ticket}
}
