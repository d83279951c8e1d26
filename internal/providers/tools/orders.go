package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Avisha2803/resort-booking-agent/internal/core"
	"github.com/Avisha2803/resort-booking-agent/pkg/log"
)

const placeRestaurantOrderSchema = `
{
  "type": "object",
  "properties": {
    "room_number": { "type": "string", "description": "Room number" },
    "items_dict": {
      "type": "object",
      "description": "Item names and quantities",
      "additionalProperties": { "type": "integer" }
    }
  },
  "required": ["room_number", "items_dict"]
}
`

// PlaceRestaurantOrder validates conversationally: a blank room number or an
// empty basket comes back as guest-facing text, never as an error.
func (c *Concierge) PlaceRestaurantOrder(ctx context.Context, args json.RawMessage) (string, error) {
	var input struct {
		RoomNumber string             `json:"room_number"`
		ItemsDict  map[string]float64 `json:"items_dict"`
	}
	if err := json.Unmarshal(args, &input); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	roomNumber := strings.TrimSpace(input.RoomNumber)
	if roomNumber == "" {
		return "❌ Please provide room number.", nil
	}
	if len(input.ItemsDict) == 0 {
		return "❌ No items specified.", nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.storeTimeout)
	defer cancel()

	// Requested names sorted for a stable receipt
	names := make([]string, 0, len(input.ItemsDict))
	for name := range input.ItemsDict {
		names = append(names, name)
	}
	sort.Strings(names)

	var validItems []core.OrderItem
	var total float64

	for _, name := range names {
		menuItem, err := c.menu.FindByName(ctx, name)
		if errors.Is(err, core.ErrNotFound) {
			// Unmatched names are silently dropped
			continue
		}
		if err != nil {
			log.FromCtx(ctx).Error().Err(err).Str("item", name).Msg("order lookup failed")
			return "❌ Unable to place order. Please try again.", nil
		}

		quantity := int(input.ItemsDict[name])
		itemTotal := menuItem.Price * float64(quantity)
		total += itemTotal
		validItems = append(validItems, core.OrderItem{
			Name:     menuItem.Name,
			Quantity: quantity,
			Price:    menuItem.Price,
			Total:    itemTotal,
		})
	}

	if len(validItems) == 0 {
		return "❌ No valid items found. Please check menu.", nil
	}

	order := &core.Order{
		RoomNumber:  roomNumber,
		Items:       validItems,
		TotalAmount: total,
		Status:      core.StatusPending,
	}
	if err := c.orders.Create(ctx, order); err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to persist order")
		return "❌ Unable to place order. Please try again.", nil
	}

	lines := make([]string, len(validItems))
	for i, item := range validItems {
		lines[i] = fmt.Sprintf("• %dx %s - ₹%s", item.Quantity, item.Name, formatPrice(item.Total))
	}

	return fmt.Sprintf(`✅ **ORDER PLACED!**

📋 Order #%d
🏨 Room %s
💰 Total: ₹%s

**Items:**
%s

⏰ Delivery: 20-30 minutes
💚 Compostable packaging used

Thank you for ordering!`, order.ID, roomNumber, formatPrice(total), strings.Join(lines, "\n")), nil
}
