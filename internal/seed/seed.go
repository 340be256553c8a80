// Package seed holds the static mock content the prototype starts with.
package seed

import "github.com/spec-kit/happy-paws/internal/domain"

// Tickets returns fresh copies of the attendant tickets.
func Tickets() []*domain.Ticket {
	out := make([]*domain.Ticket, 0, len(tickets))
	for i := range tickets {
		out = append(out, tickets[i].Clone())
	}
	return out
}

// Walkers returns the walker catalog.
func Walkers() []domain.Walker {
	return append([]domain.Walker(nil), walkers...)
}

// Pets returns the tutor's pets.
func Pets() []domain.Pet {
	return append([]domain.Pet(nil), pets...)
}

// Achievements returns the activity-feed badges.
func Achievements() []domain.Achievement {
	return append([]domain.Achievement(nil), achievements...)
}

// SupportTickets returns the tutor's past support cases.
func SupportTickets() []domain.SupportTicket {
	return append([]domain.SupportTicket(nil), supportTickets...)
}

var tickets = []domain.Ticket{
	{
		ID:          "1",
		Protocol:    "EMG-2024-001",
		Type:        domain.TicketTypeEmergency,
		Subject:     "Cachorro fugiu durante passeio",
		Description: "Meu cachorro Thor escapou da coleira durante o passeio com a passeadora Marina. Ele correu em direção à Av. Paulista. A passeadora está tentando alcançá-lo mas preciso de ajuda urgente.",
		Status:      domain.TicketStatusUnderReview,
		WaitTime:    2,
		CreatedAt:   "2024-12-10T14:30:00",
		UserName:    "João Pedro",
		Attachments: []domain.Attachment{
			{Name: "local_fuga.png", URL: "https://images.unsplash.com/photo-1524661135-423995f22d0b?w=400&h=300&fit=crop"},
			{Name: "coleira_aberta.jpg", URL: "https://images.unsplash.com/photo-1587300003388-59208cc962cb?w=400&h=300&fit=crop"},
		},
		Interactions: []domain.Interaction{
			{Author: "João Pedro", Message: "Meu cachorro fugiu! Preciso de ajuda urgente!", Timestamp: "14:30"},
		},
	},
	{
		ID:          "2",
		Protocol:    "EMG-2024-002",
		Type:        domain.TicketTypeEmergency,
		Subject:     "Passeador não apareceu",
		Description: "O passeador confirmou o agendamento para as 10h mas já se passaram 40 minutos e ele não apareceu. Não responde mensagens nem ligações.",
		Status:      domain.TicketStatusUnderReview,
		WaitTime:    5,
		CreatedAt:   "2024-12-10T10:40:00",
		UserName:    "Maria Clara",
		Attachments: []domain.Attachment{
			{Name: "confirmacao_agendamento.png", URL: "https://images.unsplash.com/photo-1611532736597-de2d4265fba3?w=400&h=300&fit=crop"},
		},
		Interactions: []domain.Interaction{
			{Author: "Maria Clara", Message: "O passeador não veio! Já estou esperando há 40 minutos.", Timestamp: "10:40"},
		},
	},
	{
		ID:          "3",
		Protocol:    "FIN-2024-015",
		Type:        domain.TicketTypeFinancial,
		Subject:     "Cobrança duplicada no cartão",
		Description: "Fui cobrado duas vezes pelo mesmo passeio do dia 08/12. O valor de R$45,00 aparece duplicado na minha fatura.",
		Status:      domain.TicketStatusUnderReview,
		WaitTime:    18,
		CreatedAt:   "2024-12-09T16:20:00",
		UserName:    "Carlos Oliveira",
		Attachments: []domain.Attachment{
			{Name: "fatura_cartao.png", URL: "https://images.unsplash.com/photo-1554224155-6726b3ff858f?w=400&h=300&fit=crop"},
		},
		Interactions: []domain.Interaction{
			{Author: "Carlos Oliveira", Message: "Fui cobrado em duplicidade, gostaria do estorno.", Timestamp: "16:20"},
		},
	},
	{
		ID:          "4",
		Protocol:    "TEC-2024-042",
		Type:        domain.TicketTypeTechnical,
		Subject:     "GPS não atualiza posição",
		Description: "Durante o passeio, o GPS parou de atualizar a posição do passeador. A última atualização foi há 15 minutos e estou preocupado.",
		Status:      domain.TicketStatusInService,
		WaitTime:    12,
		CreatedAt:   "2024-12-10T11:00:00",
		UserName:    "Ana Beatriz",
		Attachments: []domain.Attachment{
			{Name: "tela_gps_travado.png", URL: "https://images.unsplash.com/photo-1524661135-423995f22d0b?w=400&h=300&fit=crop"},
		},
		Interactions: []domain.Interaction{
			{Author: "Ana Beatriz", Message: "O GPS travou e não mostra onde meu cachorro está.", Timestamp: "11:00"},
			{Author: domain.AttendantAuthor, Message: "Estamos verificando o problema. Pode tentar fechar e abrir o app?", Timestamp: "11:05"},
		},
	},
	{
		ID:          "5",
		Protocol:    "DEN-2024-008",
		Type:        domain.TicketTypeComplaint,
		Subject:     "Passeador maltratou o animal",
		Description: "Recebi vídeo de vizinho mostrando que o passeador puxou meu cachorro pela coleira de forma violenta. Quero que seja investigado.",
		Status:      domain.TicketStatusUnderReview,
		WaitTime:    35,
		CreatedAt:   "2024-12-09T09:15:00",
		UserName:    "Fernanda Lima",
		Attachments: []domain.Attachment{
			{Name: "video_evidencia.mp4", URL: "https://images.unsplash.com/photo-1587300003388-59208cc962cb?w=400&h=300&fit=crop"},
			{Name: "foto_machucado.jpg", URL: "https://images.unsplash.com/photo-1543466835-00a7907e9de1?w=400&h=300&fit=crop"},
		},
		Interactions: []domain.Interaction{
			{Author: "Fernanda Lima", Message: "Meu cachorro foi maltratado, tenho provas em vídeo.", Timestamp: "09:15"},
		},
	},
}

var walkers = []domain.Walker{
	{ID: "1", Name: "Marina Silva", Photo: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=200&h=200&fit=crop", Rating: 4.9, Reviews: 127, PricePerHour: 45, Neighborhood: "Pinheiros", AcceptedSizes: []string{"P", "M", "G"}, Verified: true, MaxDogs: 3},
	{ID: "2", Name: "Carlos Eduardo", Photo: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200&h=200&fit=crop", Rating: 4.8, Reviews: 89, PricePerHour: 35, Neighborhood: "Vila Madalena", AcceptedSizes: []string{"P", "M"}, Verified: true, MaxDogs: 4},
	{ID: "3", Name: "Ana Beatriz", Photo: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=200&h=200&fit=crop", Rating: 4.7, Reviews: 56, PricePerHour: 40, Neighborhood: "Jardins", AcceptedSizes: []string{"M", "G"}, Verified: false, MaxDogs: 2},
	{ID: "4", Name: "Pedro Henrique", Photo: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=200&h=200&fit=crop", Rating: 5.0, Reviews: 34, PricePerHour: 50, Neighborhood: "Moema", AcceptedSizes: []string{"P", "M", "G"}, Verified: true, MaxDogs: 3},
}

var pets = []domain.Pet{
	{ID: "thor", Name: "Thor", Photo: "https://images.unsplash.com/photo-1587300003388-59208cc962cb?w=200&h=200&fit=crop", Breed: "Golden Retriever", Age: "2 anos", Size: "Grande", Weight: "32 kg", Alerts: []string{"Medo de carros", "Toma medicação"}},
	{ID: "luna", Name: "Luna", Photo: "https://images.unsplash.com/photo-1543466835-00a7907e9de1?w=200&h=200&fit=crop", Breed: "Poodle", Age: "4 anos", Size: "Pequeno", Alerts: []string{"Idoso"}},
}

var achievements = []domain.Achievement{
	{Title: "Primeiro Passeio", Description: "Complete seu primeiro passeio", Unlocked: true},
	{Title: "5 em Sequência", Description: "5 passeios seguidos", Unlocked: true},
	{Title: "Super Ativo", Description: "10 passeios no mês", Unlocked: true},
	{Title: "Maratonista", Description: "50km percorridos", Unlocked: false},
	{Title: "Top Dog", Description: "100 passeios totais", Unlocked: false},
}

var supportTickets = []domain.SupportTicket{
	{ID: "1", Category: domain.TicketTypeFinancial, Status: domain.SupportStatusResolved, Title: "Problema com pagamento", Date: "05/02/2026"},
	{ID: "2", Category: domain.TicketTypeTechnical, Status: domain.SupportStatusReview, Title: "App travando no mapa", Date: "08/02/2026"},
}
