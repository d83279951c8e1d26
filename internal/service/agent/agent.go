// Package agent wraps persona-scoped chat sessions against the hosted
// model and dispatches the function calls coming back from it.
package agent

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Avisha2803/resort-booking-agent/internal/core"
	"github.com/Avisha2803/resort-booking-agent/internal/service/memory"
	"github.com/Avisha2803/resort-booking-agent/pkg/log"
)

const fallbackReply = "How can I help you?"

var roomPattern = regexp.MustCompile(`room\s*(\d+)`)

// Agent is one persona's chat session for one guest session. The transcript
// is the model-side history and is distinct from the bounded conversation
// memory shared across personas.
type Agent struct {
	persona   core.Persona
	sessionID string
	prompt    string
	tools     []core.Tool

	ai           core.AIProvider // nil means degraded mode
	invoker      core.ToolInvoker
	mem          *memory.Store
	modelTimeout time.Duration

	transcript []core.Message
}

func New(persona core.Persona, sessionID string, ai core.AIProvider, invoker core.ToolInvoker, mem *memory.Store, modelTimeout time.Duration) *Agent {
	profile := profileFor(persona)
	return &Agent{
		persona:      persona,
		sessionID:    sessionID,
		prompt:       profile.prompt,
		tools:        invoker.Declarations(profile.toolNames...),
		ai:           ai,
		invoker:      invoker,
		mem:          mem,
		modelTimeout: modelTimeout,
	}
}

// ProcessTurn runs one guest turn to completion. It never fails: anything
// going wrong degrades to the persona's canned reply.
func (a *Agent) ProcessTurn(ctx context.Context, history []core.Message) (reply string) {
	logger := log.FromCtx(ctx)
	userMessage := core.LastUserText(history)

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Str("persona", string(a.persona)).Msg("agent turn panicked")
			reply = a.degradedReply(ctx, userMessage)
		}
	}()

	if userMessage == "" {
		return fallbackReply
	}

	// Best-effort room number capture; never fails the turn
	if m := roomPattern.FindStringSubmatch(strings.ToLower(userMessage)); m != nil {
		a.mem.MergeContext(a.sessionID, map[string]any{"room_number": m[1]})
	}

	a.mem.Record(a.sessionID, core.RoleUser, userMessage, nil)

	var responseText string
	if a.ai != nil {
		responseText = a.modelTurn(ctx, userMessage)
	}
	if strings.TrimSpace(responseText) == "" {
		responseText = a.degradedReply(ctx, userMessage)
	}

	a.mem.Record(a.sessionID, core.RoleAssistant, responseText, nil)
	return responseText
}

// modelTurn sends the user text to the hosted model and executes whatever
// function calls come back. This is a single bounded round: only the calls
// present in the first response run, and their results go into the
// transcript without triggering a follow-up model call.
func (a *Agent) modelTurn(ctx context.Context, userMessage string) string {
	logger := log.FromCtx(ctx)

	a.transcript = append(a.transcript, core.Message{Role: core.RoleUser, Content: userMessage})

	messages := make([]core.Message, 0, len(a.transcript)+1)
	messages = append(messages, core.Message{Role: core.RoleSystem, Content: a.prompt})
	messages = append(messages, a.transcript...)

	mctx, cancel := context.WithTimeout(ctx, a.modelTimeout)
	defer cancel()

	response, err := a.ai.Chat(mctx, messages, a.tools)
	if err != nil {
		logger.Error().Err(err).Str("persona", string(a.persona)).Msg("model call failed")
		return ""
	}

	a.transcript = append(a.transcript, response)

	var b strings.Builder
	b.WriteString(response.Content)

	for _, tc := range response.ToolCalls {
		result, err := a.invoker.Call(ctx, tc.Function.Name, tc.Function.Arguments)
		if err != nil {
			result = fmt.Sprintf("Error: %.100s", err.Error())
		}

		b.WriteString("\n")
		b.WriteString(result)

		a.transcript = append(a.transcript, core.Message{
			Role:       core.RoleTool,
			Content:    result,
			ToolCallID: tc.ID,
		})
	}

	return b.String()
}
