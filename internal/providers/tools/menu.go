package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Avisha2803/resort-booking-agent/internal/core"
	"github.com/Avisha2803/resort-booking-agent/pkg/log"
)

const getMenuItemsSchema = `
{
  "type": "object",
  "properties": {
    "compact": { "type": "boolean", "description": "Brief menu if true" }
  },
  "required": []
}
`

const (
	menuUnavailableText = "🍽️ Unable to load menu. Please contact restaurant."
	menuUpdatingText    = "🍽️ Menu is being updated. Please check back."
)

func (c *Concierge) GetMenuItems(ctx context.Context, args json.RawMessage) (string, error) {
	var input struct {
		Compact bool `json:"compact"`
	}
	if err := json.Unmarshal(args, &input); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.storeTimeout)
	defer cancel()

	items, err := c.menu.List(ctx)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to load menu")
		return menuUnavailableText, nil
	}
	if len(items) == 0 {
		return menuUpdatingText, nil
	}

	if input.Compact {
		return renderCompactMenu(items), nil
	}
	return renderFullMenu(items), nil
}

// groupByCategory preserves the first-seen order of categories, which is
// the store's (category, name) ordering.
func groupByCategory(items []core.MenuItem) ([]string, map[string][]core.MenuItem) {
	var order []string
	grouped := make(map[string][]core.MenuItem)
	for _, item := range items {
		cat := item.Category
		if cat == "" {
			cat = "Other"
		}
		if _, seen := grouped[cat]; !seen {
			order = append(order, cat)
		}
		grouped[cat] = append(grouped[cat], item)
	}
	return order, grouped
}

// featuredCategories drive the compact menu view.
var featuredCategories = []string{"Breakfast", "Main Course", "Drinks"}

func renderCompactMenu(items []core.MenuItem) string {
	_, grouped := groupByCategory(items)

	var b strings.Builder
	b.WriteString("🍽️ **Popular Items:**\n\n")

	for _, cat := range featuredCategories {
		catItems, ok := grouped[cat]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "**%s:**\n", cat)
		for i, item := range catItems {
			if i == 3 {
				break
			}
			fmt.Fprintf(&b, "• %s - ₹%s\n", item.Name, formatPrice(item.Price))
		}
		b.WriteString("\n")
	}

	b.WriteString("💚 *Say 'full menu' for complete menu*")
	return b.String()
}

func renderFullMenu(items []core.MenuItem) string {
	order, grouped := groupByCategory(items)

	var b strings.Builder
	b.WriteString("🍽️ **RESTAURANT MENU** 🍽️\n\n")

	for _, cat := range order {
		fmt.Fprintf(&b, "════════════════════\n**%s**\n════════════════════\n\n", strings.ToUpper(cat))
		for _, item := range grouped[cat] {
			fmt.Fprintf(&b, "• **%s** - ₹%s\n", item.Name, formatPrice(item.Price))
			if item.Description != "" {
				fmt.Fprintf(&b, "  _%s_\n", item.Description)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("💚 *Compostable packaging* | 📞 *Extension 2*")
	return b.String()
}
