package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"vango/models"
	"vango/services/agent"
)

// AgentBrain adapts the Gemini client to the booking agent's LLM port.
type AgentBrain struct {
	client *GeminiClient
}

func NewAgentBrain(client *GeminiClient) *AgentBrain {
	return &AgentBrain{client: client}
}

// phaseInstructions tell the model what to pursue in each dialogue phase.
var phaseInstructions = map[models.Phase]string{
	models.PhaseDiscovery: "Find out what the customer is moving: roughly how big it is, how heavy, " +
		"how many people will travel, and how far. Set readyToRecommend once you have enough to pick a van.",
	models.PhaseRecommendation: "A category was recommended. Determine whether the customer accepts it " +
		"(recommendationAccepted true/false). If they push back with new constraints, capture them in needs.",
	models.PhaseBooking: "Collect the missing booking fields: officeId (from the office list), startDate, " +
		"endDate (RFC 3339), driverAge. Ask for at most two missing fields per turn.",
	models.PhaseConfirmation: "The summary was presented. Determine whether the customer confirms " +
		"(confirmed true/false), collect their phone number and name, and accept corrections to any field.",
}

// Advance runs one extraction turn against Gemini.
func (b *AgentBrain) Advance(ctx context.Context, in agent.AdvanceInput) (*models.AgentExtraction, error) {
	raw, err := b.client.GenerateContent(ctx, buildAgentPrompt(in))
	if err != nil {
		return nil, err
	}
	ext, err := parseExtraction(raw)
	if err != nil {
		return nil, fmt.Errorf("malformed model response: %w", err)
	}
	return ext, nil
}

func buildAgentPrompt(in agent.AdvanceInput) string {
	stateJSON, _ := json.Marshal(in.State)

	var sb strings.Builder
	sb.WriteString("You are the booking assistant of a van rental company, talking to a customer on a voice call.\n")
	sb.WriteString("Reply with a single JSON object, no markdown, with these fields:\n")
	sb.WriteString(`{"message": "what to say next, one or two short spoken sentences",` + "\n")
	sb.WriteString(` "needs": {"cargoDescription","cargoVolumeM3","weightKg","passengers","distanceKm"} (only fields mentioned this turn),` + "\n")
	sb.WriteString(` "booking": {"officeId","startDate","endDate","driverAge","phone","name","message"} (only fields mentioned this turn),` + "\n")
	sb.WriteString(` "readyToRecommend": bool, "recommendationAccepted": bool or omit, "confirmed": bool or omit}` + "\n")
	sb.WriteString("Never invent values the customer did not say. Never quote prices; the system computes them.\n\n")

	if instr, ok := phaseInstructions[in.State.Phase]; ok {
		sb.WriteString("Current objective: " + instr + "\n\n")
	}

	sb.WriteString("Facts you may use:\n")
	sb.WriteString(in.RAGContext)
	sb.WriteString("\nKnown state: ")
	sb.Write(stateJSON)
	sb.WriteString("\n\nConversation so far:\n")
	for _, m := range in.History {
		fmt.Fprintf(&sb, "%s: %s\n", m.Role, m.Content)
	}
	fmt.Fprintf(&sb, "user: %s\n", in.Transcript)
	return sb.String()
}

// parseExtraction tolerates the fences and prose models wrap JSON in.
func parseExtraction(raw string) (*models.AgentExtraction, error) {
	raw = strings.TrimSpace(raw)
	if start := strings.Index(raw, "{"); start >= 0 {
		if end := strings.LastIndex(raw, "}"); end > start {
			raw = raw[start : end+1]
		}
	}

	var ext models.AgentExtraction
	if err := json.Unmarshal([]byte(raw), &ext); err != nil {
		return nil, err
	}
	if ext.Message == "" {
		return nil, fmt.Errorf("response has no message")
	}
	return &ext, nil
}
