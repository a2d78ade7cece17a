package llm

import (
	"fmt"
	"strings"

	"github.com/neilberkman/chatlens/pkg/watranscript"
)

const maxContentLen = 300 // Max chars per message in the prompt

func buildInsightsPrompt(sample []watranscript.Message, participants []string) string {
	var transcript strings.Builder
	for _, msg := range sample {
		content := msg.Content
		if len(content) > maxContentLen {
			content = content[:maxContentLen] + "..."
		}
		transcript.WriteString(msg.Author + ": " + content + "\n")
	}

	return fmt.Sprintf(`You are analyzing an exported group chat. Participants: %s.

Transcript sample (%d messages):
%s

Respond with ONLY a JSON object, no prose, in this shape:
{
  "participants": [{"name": "...", "description": "one or two sentences about this person's style and role in the chat"}],
  "highlights": [{"question": "...", "answer": "..."}]
}

Write one entry per participant and 3-5 highlights. Highlights are
interesting questions about the conversation (running jokes, recurring
topics, memorable moments) with short answers.`,
		strings.Join(participants, ", "),
		len(sample),
		transcript.String(),
	)
}
