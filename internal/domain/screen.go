package domain

// Screen identifies one full-page view of the app.
type Screen string

const (
	ScreenLogin              Screen = "login"
	ScreenRegister           Screen = "register"
	ScreenHome               Screen = "home"
	ScreenSearch             Screen = "search"
	ScreenWalkerProfile      Screen = "walker-profile"
	ScreenSchedule           Screen = "schedule"
	ScreenActiveWalk         Screen = "active-walk"
	ScreenReview             Screen = "review"
	ScreenActivityFeed       Screen = "activity-feed"
	ScreenPets               Screen = "pets"
	ScreenPetDetails         Screen = "pet-details"
	ScreenAddPet             Screen = "add-pet"
	ScreenProfile            Screen = "profile"
	ScreenSupport            Screen = "support"
	ScreenAttendantDashboard Screen = "attendant-dashboard"
	ScreenAttendantTicket    Screen = "attendant-ticket"
	ScreenWalkerBooking      Screen = "walker-booking"
	ScreenTutorMonitoring    Screen = "tutor-monitoring"
	ScreenWalkPhotoPost      Screen = "walk-photo-post"
)

// AllScreens returns the closed screen enumeration.
func AllScreens() []Screen {
	return []Screen{
		ScreenLogin, ScreenRegister, ScreenHome, ScreenSearch, ScreenWalkerProfile,
		ScreenSchedule, ScreenActiveWalk, ScreenReview, ScreenActivityFeed, ScreenPets,
		ScreenPetDetails, ScreenAddPet, ScreenProfile, ScreenSupport,
		ScreenAttendantDashboard, ScreenAttendantTicket, ScreenWalkerBooking,
		ScreenTutorMonitoring, ScreenWalkPhotoPost,
	}
}

// Tab identifies a bottom-navigation destination.
type Tab string

const (
	TabHome     Tab = "home"
	TabSearch   Tab = "search"
	TabBookings Tab = "bookings"
	TabPets     Tab = "pets"
	TabProfile  Tab = "profile"
	// TabMessages is rendered but has no screen behind it yet.
	TabMessages Tab = "messages"
)

// Tabs returns the tabs in bar order.
func Tabs() []Tab {
	return []Tab{TabHome, TabSearch, TabBookings, TabPets, TabMessages, TabProfile}
}

// Valid reports whether t is a known tab.
func (t Tab) Valid() bool {
	for _, candidate := range Tabs() {
		if candidate == t {
			return true
		}
	}
	return false
}

// Flow is the audience variant a session runs after login.
type Flow string

const (
	FlowNone      Flow = ""
	FlowTutor     Flow = "tutor"
	FlowWalker    Flow = "walker"
	FlowAttendant Flow = "attendant"
)

// Valid reports whether f names a selectable flow.
func (f Flow) Valid() bool {
	switch f {
	case FlowTutor, FlowWalker, FlowAttendant:
		return true
	}
	return false
}

// ScreenState is the whole navigation state of a session.
// CurrentScreen == ScreenAttendantTicket implies SelectedTicket != nil.
type ScreenState struct {
	CurrentScreen           Screen
	ActiveTab               Tab
	Flow                    Flow
	SelectedTicket          *Ticket
	WalkNotificationPending bool
}

// InitialScreenState is the state of a fresh session.
func InitialScreenState() ScreenState {
	return ScreenState{CurrentScreen: ScreenLogin, ActiveTab: TabHome}
}
