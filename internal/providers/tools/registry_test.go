package tools

import (
	"context"
	"encoding/json"
	"testing"
)

func TestRegistryDeclarations(t *testing.T) {
	r := NewRegistry()
	newTestConcierge(nil, nil, nil).RegisterAll(r)

	decls := r.Declarations(ToolGetMenuItems, ToolPlaceRestaurantOrder)
	if len(decls) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(decls))
	}
	if decls[0].Function.Name != ToolGetMenuItems {
		t.Errorf("declaration order must follow the requested names, got %q", decls[0].Function.Name)
	}
	if decls[0].Type != "function" {
		t.Errorf("type = %q, want function", decls[0].Type)
	}

	// Unknown names are skipped, not errored
	decls = r.Declarations("no_such_tool", ToolGetFacilityInfo)
	if len(decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(decls))
	}
}

func TestRegistrySchemasAreValidJSON(t *testing.T) {
	r := NewRegistry()
	newTestConcierge(nil, nil, nil).RegisterAll(r)

	for _, decl := range r.Declarations(
		ToolCheckRoomAvailability,
		ToolGetFacilityInfo,
		ToolGetMenuItems,
		ToolPlaceRestaurantOrder,
		ToolCreateRoomServiceRequest,
	) {
		var v map[string]any
		if err := json.Unmarshal(decl.Function.Parameters, &v); err != nil {
			t.Errorf("schema for %s is not valid JSON: %v", decl.Function.Name, err)
		}
	}
}

func TestRegistryCallUnknownTool(t *testing.T) {
	r := NewRegistry()

	got, err := r.Call(context.Background(), "teleport_guest", "{}")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Tool 'teleport_guest' not available" {
		t.Errorf("got %q", got)
	}
}

func TestRegistryCallEmptyArgs(t *testing.T) {
	r := NewRegistry()
	newTestConcierge(nil, nil, nil).RegisterAll(r)

	// Models sometimes send no arguments at all
	got, err := r.Call(context.Background(), ToolCheckRoomAvailability, "")
	if err != nil {
		t.Fatal(err)
	}
	if got == "" {
		t.Error("expected the room summary, got empty string")
	}
}
