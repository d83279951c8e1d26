package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Avisha2803/resort-booking-agent/internal/core"
	"github.com/Avisha2803/resort-booking-agent/pkg/log"
)

const createRoomServiceRequestSchema = `
{
  "type": "object",
  "properties": {
    "room_number": { "type": "string", "description": "Room number" },
    "request_type": { "type": "string", "description": "cleaning, towel, amenity, repair" },
    "details": { "type": "string", "description": "Additional details" }
  },
  "required": ["room_number", "request_type"]
}
`

const maxDetailsLen = 200

func (c *Concierge) CreateRoomServiceRequest(ctx context.Context, args json.RawMessage) (string, error) {
	var input struct {
		RoomNumber  string `json:"room_number"`
		RequestType string `json:"request_type"`
		Details     string `json:"details"`
	}
	if err := json.Unmarshal(args, &input); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	roomNumber := strings.TrimSpace(input.RoomNumber)
	if roomNumber == "" {
		return "❌ Please provide room number.", nil
	}
	requestType := strings.TrimSpace(input.RequestType)
	if requestType == "" {
		return "❌ Please specify request type.", nil
	}

	details := input.Details
	if len(details) > maxDetailsLen {
		details = details[:maxDetailsLen]
	}

	ctx, cancel := context.WithTimeout(ctx, c.storeTimeout)
	defer cancel()

	req := &core.ServiceRequest{
		RoomNumber:  roomNumber,
		RequestType: requestType,
		Details:     details,
		Status:      core.StatusPending,
	}
	if err := c.requests.Create(ctx, req); err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to persist service request")
		return "❌ Unable to create request. Please try again.", nil
	}

	detailsText := details
	if detailsText == "" {
		detailsText = "Standard request"
	}

	var ecoMsg string
	typeLower := strings.ToLower(requestType)
	switch {
	case strings.Contains(typeLower, "clean"):
		ecoMsg = "💚 Using plant-based cleaners"
	case strings.Contains(typeLower, "towel"):
		ecoMsg = "💚 Towel reuse saves water"
	}

	return fmt.Sprintf(`✅ **SERVICE REQUESTED**

📋 Request #%d
🏨 Room %s
🔧 %s
📝 %s

%s
⏰ ETA: 30 minutes

Thank you!`, req.ID, roomNumber, requestType, detailsText, ecoMsg), nil
}
