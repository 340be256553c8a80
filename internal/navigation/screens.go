package navigation

import "github.com/spec-kit/happy-paws/internal/domain"

// Audience groups screens by who may reach them.
type Audience string

const (
	AudiencePublic    Audience = "public"
	AudienceMember    Audience = "member"
	AudienceAttendant Audience = "attendant"
)

// Descriptor is the render contract of a screen.
type Descriptor struct {
	Title    string
	Audience Audience
	TabBar   bool
	// Back is the go_back target; empty means the screen has no back action.
	Back domain.Screen
}

var descriptors = map[domain.Screen]Descriptor{
	domain.ScreenLogin:              {Title: "Entrar", Audience: AudiencePublic},
	domain.ScreenRegister:           {Title: "Criar Perfil", Audience: AudiencePublic, Back: domain.ScreenLogin},
	domain.ScreenHome:               {Title: "Início", Audience: AudienceMember, TabBar: true},
	domain.ScreenSearch:             {Title: "Buscar Passeador", Audience: AudienceMember, TabBar: true},
	domain.ScreenWalkerProfile:      {Title: "Perfil do Passeador", Audience: AudienceMember, Back: domain.ScreenSearch},
	domain.ScreenSchedule:           {Title: "Agendar Passeio", Audience: AudienceMember, Back: domain.ScreenWalkerProfile},
	domain.ScreenActiveWalk:         {Title: "Passeio em Andamento", Audience: AudienceMember},
	domain.ScreenReview:             {Title: "Avaliar Passeio", Audience: AudienceMember, Back: domain.ScreenHome},
	domain.ScreenActivityFeed:       {Title: "Mural", Audience: AudienceMember, TabBar: true},
	domain.ScreenPets:               {Title: "Meus Pets", Audience: AudienceMember, TabBar: true},
	domain.ScreenPetDetails:         {Title: "Detalhes do Pet", Audience: AudienceMember, Back: domain.ScreenPets},
	domain.ScreenAddPet:             {Title: "Adicionar Pet", Audience: AudienceMember, Back: domain.ScreenPets},
	domain.ScreenProfile:            {Title: "Perfil", Audience: AudienceMember, TabBar: true, Back: domain.ScreenHome},
	domain.ScreenSupport:            {Title: "Suporte", Audience: AudienceMember, Back: domain.ScreenProfile},
	domain.ScreenAttendantDashboard: {Title: "Central de Atendimento", Audience: AudienceAttendant},
	domain.ScreenAttendantTicket:    {Title: "Chamado", Audience: AudienceAttendant, Back: domain.ScreenAttendantDashboard},
	domain.ScreenWalkerBooking:      {Title: "Agendamento Confirmado", Audience: AudienceMember, TabBar: true, Back: domain.ScreenHome},
	domain.ScreenTutorMonitoring:    {Title: "Acompanhar Passeio", Audience: AudienceMember, Back: domain.ScreenHome},
	domain.ScreenWalkPhotoPost:      {Title: "Postar Foto", Audience: AudienceMember, Back: domain.ScreenActiveWalk},
}

// Describe returns the descriptor for a screen. Unknown screens fall back to home.
func Describe(screen domain.Screen) Descriptor {
	if d, ok := descriptors[screen]; ok {
		return d
	}
	return descriptors[domain.ScreenHome]
}

// tabScreens maps tabs to their destination screen. Bookings depends on the flow.
var tabScreens = map[domain.Tab]func(domain.Flow) domain.Screen{
	domain.TabHome:   func(domain.Flow) domain.Screen { return domain.ScreenHome },
	domain.TabSearch: func(domain.Flow) domain.Screen { return domain.ScreenSearch },
	domain.TabBookings: func(flow domain.Flow) domain.Screen {
		if flow == domain.FlowWalker {
			return domain.ScreenWalkerBooking
		}
		return domain.ScreenActivityFeed
	},
	domain.TabPets:    func(domain.Flow) domain.Screen { return domain.ScreenPets },
	domain.TabProfile: func(domain.Flow) domain.Screen { return domain.ScreenProfile },
}

// entryScreens is where each flow lands after login.
var entryScreens = map[domain.Flow]domain.Screen{
	domain.FlowTutor:     domain.ScreenHome,
	domain.FlowWalker:    domain.ScreenWalkerBooking,
	domain.FlowAttendant: domain.ScreenAttendantDashboard,
}
