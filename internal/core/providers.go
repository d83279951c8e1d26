package core

import "context"

type AIProvider interface {
	Chat(ctx context.Context, history []Message, tools []Tool) (Message, error)
}

// ToolInvoker exposes declared tool functions to the agents.
type ToolInvoker interface {
	Declarations(names ...string) []Tool
	Call(ctx context.Context, name string, args string) (string, error)
}
