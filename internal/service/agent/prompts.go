package agent

import (
	"github.com/Avisha2803/resort-booking-agent/internal/core"
	"github.com/Avisha2803/resort-booking-agent/internal/providers/tools"
)

const receptionistPrompt = `You are a resort receptionist. Answer questions about rooms, facilities, check-in/out.
Use tools for accurate information.`

const restaurantPrompt = `You are a restaurant assistant. Handle menu requests and food orders.
For ordering: Ask for room number, confirm items, then place order.
Use tools when needed.`

const roomServicePrompt = `You handle room service requests. Ask for room number and request type.
Use tool to create service requests.`

type personaProfile struct {
	prompt    string
	toolNames []string
}

var personaProfiles = map[core.Persona]personaProfile{
	core.PersonaReceptionist: {
		prompt:    receptionistPrompt,
		toolNames: []string{tools.ToolCheckRoomAvailability, tools.ToolGetFacilityInfo},
	},
	core.PersonaRestaurant: {
		prompt:    restaurantPrompt,
		toolNames: []string{tools.ToolGetMenuItems, tools.ToolPlaceRestaurantOrder},
	},
	core.PersonaRoomService: {
		prompt:    roomServicePrompt,
		toolNames: []string{tools.ToolCreateRoomServiceRequest},
	},
}

func profileFor(p core.Persona) personaProfile {
	if profile, ok := personaProfiles[p]; ok {
		return profile
	}
	return personaProfiles[core.PersonaReceptionist]
}
