package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/neilberkman/chatlens/pkg/watranscript"
)

// ParticipantProfile is a short LLM-written description of one chat
// participant.
type ParticipantProfile struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Highlight is one question/answer insight about the conversation.
type Highlight struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Insights is the structured result of the LLM collaborator: one profile
// per participant plus a small set of conversation highlights.
type Insights struct {
	Participants []ParticipantProfile `json:"participants"`
	Highlights   []Highlight          `json:"highlights"`
}

// Analyzer generates chat insights using an LLM provider.
type Analyzer struct {
	provider   Provider
	sampleSize int
}

// NewAnalyzer creates an analyzer. sampleSize caps how many messages are
// sent to the provider; zero or negative falls back to 120.
func NewAnalyzer(provider Provider, sampleSize int) *Analyzer {
	if sampleSize <= 0 {
		sampleSize = 120
	}
	return &Analyzer{provider: provider, sampleSize: sampleSize}
}

// Generate produces insights for a parsed transcript. Sampling and
// prompt construction are pure; only the provider call touches the
// network.
func (a *Analyzer) Generate(ctx context.Context, messages []watranscript.Message, participants []string) (*Insights, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("no messages to analyze")
	}

	sample := SampleMessages(messages, a.sampleSize)
	prompt := buildInsightsPrompt(sample, participants)

	response, err := a.provider.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("insights generation: %w", err)
	}

	insights, err := parseInsights(response)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", a.provider.Name(), err)
	}
	return insights, nil
}

// SampleMessages returns an evenly spaced, order-preserving sample of at
// most max messages. Sequences already within the cap come back as-is.
func SampleMessages(messages []watranscript.Message, max int) []watranscript.Message {
	if max <= 0 || len(messages) <= max {
		return messages
	}

	sample := make([]watranscript.Message, 0, max)
	step := float64(len(messages)) / float64(max)
	for i := 0; i < max; i++ {
		sample = append(sample, messages[int(float64(i)*step)])
	}
	return sample
}

// parseInsights extracts the JSON object from an LLM response, tolerating
// markdown fences and prose around it.
func parseInsights(response string) (*Insights, error) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var insights Insights
	if err := json.Unmarshal([]byte(response[start:end+1]), &insights); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if len(insights.Participants) == 0 && len(insights.Highlights) == 0 {
		return nil, fmt.Errorf("response carried no insights")
	}
	return &insights, nil
}
