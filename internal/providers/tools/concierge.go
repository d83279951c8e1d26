package tools

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/Avisha2803/resort-booking-agent/internal/core"
)

const (
	ToolCheckRoomAvailability    = "check_room_availability"
	ToolGetFacilityInfo          = "get_facility_info"
	ToolGetMenuItems             = "get_menu_items"
	ToolPlaceRestaurantOrder     = "place_restaurant_order"
	ToolCreateRoomServiceRequest = "create_room_service_request"
)

// Concierge owns the hand-written tool functions backing the three agents.
// Every handler scopes its own store access with storeTimeout.
type Concierge struct {
	menu     core.MenuRepository
	orders   core.OrdersRepository
	requests core.RequestsRepository

	storeTimeout time.Duration
	randFloat    func() float64
}

type Option func(*Concierge)

// WithRandFloat replaces the occupancy randomness source, mainly for tests.
func WithRandFloat(f func() float64) Option {
	return func(c *Concierge) { c.randFloat = f }
}

func WithStoreTimeout(d time.Duration) Option {
	return func(c *Concierge) { c.storeTimeout = d }
}

func NewConcierge(menu core.MenuRepository, orders core.OrdersRepository, requests core.RequestsRepository, opts ...Option) *Concierge {
	c := &Concierge{
		menu:         menu,
		orders:       orders,
		requests:     requests,
		storeTimeout: 5 * time.Second,
		randFloat:    rand.Float64,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Concierge) RegisterAll(r *Registry) {
	r.Register(ToolCheckRoomAvailability, Definition{
		Description: "Check room availability and prices",
		Schema:      checkRoomAvailabilitySchema,
		Handler:     c.CheckRoomAvailability,
	})
	r.Register(ToolGetFacilityInfo, Definition{
		Description: "Get facility information",
		Schema:      getFacilityInfoSchema,
		Handler:     c.GetFacilityInfo,
	})
	r.Register(ToolGetMenuItems, Definition{
		Description: "Get restaurant menu",
		Schema:      getMenuItemsSchema,
		Handler:     c.GetMenuItems,
	})
	r.Register(ToolPlaceRestaurantOrder, Definition{
		Description: "Place food order",
		Schema:      placeRestaurantOrderSchema,
		Handler:     c.PlaceRestaurantOrder,
	})
	r.Register(ToolCreateRoomServiceRequest, Definition{
		Description: "Create room service request",
		Schema:      createRoomServiceRequestSchema,
		Handler:     c.CreateRoomServiceRequest,
	})
}

// formatPrice renders prices without trailing zeros (₹120, not ₹120.00).
func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
