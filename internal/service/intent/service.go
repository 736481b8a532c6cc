// Package intent classifies chat prompts into stylist actions. A chat
// model performs the classification when configured; a deterministic
// rule-based resolver backs it so classification never fails.
package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"go.uber.org/zap"

	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/analysis/request"
	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/model/outfit"
	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/observability"
)

// Service wraps the model-backed classifier with the rule-based
// fallback. A Service built without a chat model is fully functional
// and always classifies via rules.
type Service struct {
	classifier compose.Runnable[map[string]any, *schema.Message]
	fallback   func(text string, view request.SessionView) request.Decision
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewService creates the classifier service. chatModel may be nil, in
// which case only the fallback runs.
func NewService(ctx context.Context, chatModel model.ChatModel, metrics *observability.Metrics, logger *zap.Logger) (*Service, error) {
	svc := &Service{
		fallback: request.Classify,
		metrics:  metrics,
		logger:   logger,
	}

	if chatModel == nil {
		return svc, nil
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage(classifierSystemPrompt),
		schema.UserMessage(classifierUserPrompt),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile intent classifier chain: %w", err)
	}

	svc.classifier = runnable
	return svc, nil
}

// Enabled reports whether the model-backed classifier is available.
func (s *Service) Enabled() bool {
	return s != nil && s.classifier != nil
}

// Classify maps a prompt plus session state to a stylist decision. Any
// backend trouble (model outage, undecodable output, unknown action)
// silently falls back to the rule-based classifier, so the result is
// always a valid action.
func (s *Service) Classify(ctx context.Context, promptText string, view request.SessionView) request.Decision {
	if !s.Enabled() {
		return s.fallbackDecision(promptText, view)
	}

	input := map[string]any{
		"prompt":  strings.TrimSpace(promptText),
		"session": summarizeSession(view),
	}

	msg, err := s.classifier.Invoke(ctx, input)
	if err != nil {
		s.logger.Warn("intent classifier invoke failed, using fallback", zap.Error(err))
		return s.fallbackDecision(promptText, view)
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		return s.fallbackDecision(promptText, view)
	}

	payload, err := parseClassifierOutput(msg.Content)
	if err != nil {
		s.logger.Warn("intent classifier output unparseable, using fallback", zap.Error(err))
		return s.fallbackDecision(promptText, view)
	}

	action, ok := outfit.ParseAction(strings.TrimSpace(payload.Action))
	if !ok {
		return s.fallbackDecision(promptText, view)
	}

	decision := request.Decision{
		Action:  action,
		Keyword: strings.TrimSpace(payload.Keyword),
		Reply:   strings.TrimSpace(payload.Reply),
	}

	if slot, ok := outfit.ParseSlot(strings.TrimSpace(payload.Slot)); ok {
		decision.Slot = slot
	}
	// Replace and show_more are meaningless without a target slot.
	if decision.Slot == "" && (action == outfit.ActionReplace || action == outfit.ActionShowMore) {
		return s.fallbackDecision(promptText, view)
	}

	return decision
}

func (s *Service) fallbackDecision(promptText string, view request.SessionView) request.Decision {
	if s.metrics != nil {
		s.metrics.IncrClassifierFallback()
	}
	return s.fallback(promptText, view)
}

// parseClassifierOutput extracts the JSON object from the model reply,
// tolerating surrounding prose or code fences.
func parseClassifierOutput(content string) (*classifierPayload, error) {
	trimmed := strings.TrimSpace(content)
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("missing json object")
	}

	payload := &classifierPayload{}
	if err := json.Unmarshal([]byte(trimmed[start:end+1]), payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func summarizeSession(view request.SessionView) string {
	if !view.HasOutfit() {
		return "The user has no outfit yet."
	}

	names := make([]string, 0, len(view.FilledSlots))
	for _, slot := range view.FilledSlots {
		names = append(names, string(slot))
	}
	summary := "Filled slots: " + strings.Join(names, ", ")
	if view.LastSlot != "" {
		summary += ". Last touched slot: " + string(view.LastSlot)
	}
	return summary + "."
}

type classifierPayload struct {
	Action  string `json:"action"`
	Slot    string `json:"slot"`
	Keyword string `json:"keyword"`
	Reply   string `json:"reply"`
}

const classifierSystemPrompt = `You are the intent classifier for a Roblox outfit stylist.
Given the user's message and a summary of their current outfit, pick exactly one action:
- "greet": the message is a greeting and no outfit exists yet.
- "show_more": the user wants additional or alternate options for a slot that is already filled (words like "more", "another").
- "replace": the user names a specific slot to change and an outfit exists (words like "change", "swap", "different").
- "clarify": the request is too vague to search for, or names no recognizable slot when one is required.
- "new_outfit": anything else describing items or a style to build.
Slots: Head, Hair, Face, Shirt, T-Shirt, Pants, Back Accessory, Neck Accessory, Shoulder Accessory, Front Accessory, Waist Accessory, Head Bodypart, Bundle, Emote.
Return only one JSON object with fields: action (required, one of the five values), slot (the target slot for replace/show_more, else empty), keyword (a short catalog search keyword extracted from the message, else empty), reply (for clarify: one short clarifying question; otherwise empty). No extra text.`

const classifierUserPrompt = `Session state:
{session}

User message:
{prompt}

Respond with the JSON object.`
