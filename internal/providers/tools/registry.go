package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Avisha2803/resort-booking-agent/internal/core"
	"github.com/Avisha2803/resort-booking-agent/pkg/log"
)

type Handler func(ctx context.Context, args json.RawMessage) (string, error)

type Definition struct {
	Description string
	Schema      string
	Handler     Handler
}

// Registry maps tool names to their declarations and handlers. Agents only
// see the subset they declare; Call is shared.
type Registry struct {
	defs map[string]Definition
}

func NewRegistry() *Registry {
	return &Registry{
		defs: make(map[string]Definition),
	}
}

func (r *Registry) Register(name string, def Definition) {
	r.defs[name] = def
}

func (r *Registry) Declarations(names ...string) []core.Tool {
	tools := make([]core.Tool, 0, len(names))
	for _, name := range names {
		def, ok := r.defs[name]
		if !ok {
			continue
		}
		tools = append(tools, core.Tool{
			Type: "function",
			Function: core.Function{
				Name:        name,
				Description: def.Description,
				Parameters:  json.RawMessage(def.Schema),
			},
		})
	}
	return tools
}

// Call executes a tool by name. An unknown tool produces a conversational
// result rather than an error so the model can recover.
func (r *Registry) Call(ctx context.Context, name string, args string) (string, error) {
	def, ok := r.defs[name]
	if !ok {
		return fmt.Sprintf("Tool '%s' not available", name), nil
	}

	if args == "" {
		args = "{}"
	}

	log.FromCtx(ctx).Info().Str("tool", name).Msg("executing tool")
	return def.Handler(ctx, json.RawMessage(args))
}
