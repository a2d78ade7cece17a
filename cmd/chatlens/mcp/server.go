package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/neilberkman/chatlens/internal/core/stats"
	"github.com/neilberkman/chatlens/pkg/watranscript"
)

// AnalyzeTranscriptArgs defines arguments for the analyze_transcript tool
type AnalyzeTranscriptArgs struct {
	FilePath string `json:"file_path" jsonschema:"description=Path to an exported chat transcript (.txt),required"`
	Top      int    `json:"top,omitempty" jsonschema:"description=How many entries in each ranking (default: 10)"`
}

// GetParticipantsArgs defines arguments for the get_participants tool
type GetParticipantsArgs struct {
	FilePath string `json:"file_path" jsonschema:"description=Path to an exported chat transcript (.txt),required"`
}

// TopWordsArgs defines arguments for the top_words tool
type TopWordsArgs struct {
	FilePath string `json:"file_path" jsonschema:"description=Path to an exported chat transcript (.txt),required"`
	Author   string `json:"author,omitempty" jsonschema:"description=Restrict to messages from this participant"`
	Limit    int    `json:"limit,omitempty" jsonschema:"description=Max words to return (default: 20)"`
}

// TranscriptSummary is the analyze_transcript result
type TranscriptSummary struct {
	TotalMessages int                 `json:"total_messages"`
	Participants  []string            `json:"participants"`
	FirstMessage  string              `json:"first_message"`
	LastMessage   string              `json:"last_message"`
	BusiestDay    stats.BusiestDay    `json:"busiest_day"`
	Authors       []stats.RankedEntry `json:"authors"`
	TopWords      []stats.RankedEntry `json:"top_words"`
	TopEmojis     []stats.RankedEntry `json:"top_emojis"`
	HourlyPeak    int                 `json:"hourly_peak"`
}

// ParticipantInfo is one entry of the get_participants result
type ParticipantInfo struct {
	Name         string  `json:"name"`
	MessageCount int     `json:"message_count"`
	Share        float64 `json:"share_percent"`
}

// StartServer starts the MCP server on stdio
func StartServer() error {
	s := server.NewMCPServer(
		"ChatLens",
		"1.0.0",
	)

	analyzeTool := mcp.NewTool("analyze_transcript",
		mcp.WithDescription("Parse an exported chat transcript and return aggregate statistics: message totals, per-author counts, busiest day, top words and emoji, and activity peaks."),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Path to an exported chat transcript (.txt)")),
		mcp.WithNumber("top",
			mcp.Description("How many entries in each ranking (default: 10)")),
	)
	s.AddTool(analyzeTool, analyzeTranscriptHandler)

	participantsTool := mcp.NewTool("get_participants",
		mcp.WithDescription("List the participants of a chat transcript with their message counts and share of the conversation."),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Path to an exported chat transcript (.txt)")),
	)
	s.AddTool(participantsTool, getParticipantsHandler)

	wordsTool := mcp.NewTool("top_words",
		mcp.WithDescription("Return the most frequent meaningful words in a transcript, optionally restricted to one participant. Short words, stop words and media placeholders are excluded."),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Path to an exported chat transcript (.txt)")),
		mcp.WithString("author",
			mcp.Description("Restrict to messages from this participant")),
		mcp.WithNumber("limit",
			mcp.Description("Max words to return (default: 20)")),
	)
	s.AddTool(wordsTool, topWordsHandler)

	return server.ServeStdio(s)
}

// loadSnapshot parses the transcript at path and aggregates it. Transcripts
// are re-read on every call; nothing is cached between requests.
func loadSnapshot(path string) (*stats.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}
	messages := watranscript.Parse(string(data))
	if len(messages) == 0 {
		return nil, watranscript.ErrNoMessages
	}
	return stats.Aggregate(messages)
}

func analyzeTranscriptHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args AnalyzeTranscriptArgs
	argsBytes, _ := json.Marshal(request.Params.Arguments)
	if err := json.Unmarshal(argsBytes, &args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	top := args.Top
	if top == 0 {
		top = 10
	}

	snapshot, err := loadSnapshot(args.FilePath)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	hourlyPeak := 0
	for _, n := range snapshot.HourlyActivity {
		if n > hourlyPeak {
			hourlyPeak = n
		}
	}

	summary := TranscriptSummary{
		TotalMessages: snapshot.TotalMessages,
		Participants:  snapshot.Participants,
		FirstMessage:  snapshot.FirstMessage.Format("2006-01-02 15:04"),
		LastMessage:   snapshot.LastMessage.Format("2006-01-02 15:04"),
		BusiestDay:    snapshot.BusiestDay,
		Authors:       snapshot.AuthorRanking(),
		TopWords:      snapshot.TopWords(top),
		TopEmojis:     snapshot.TopEmojis(top),
		HourlyPeak:    hourlyPeak,
	}

	resultJSON, err := json.Marshal(summary)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(resultJSON)), nil
}

func getParticipantsHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args GetParticipantsArgs
	argsBytes, _ := json.Marshal(request.Params.Arguments)
	if err := json.Unmarshal(argsBytes, &args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	snapshot, err := loadSnapshot(args.FilePath)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var participants []ParticipantInfo
	for _, entry := range snapshot.AuthorRanking() {
		participants = append(participants, ParticipantInfo{
			Name:         entry.Key,
			MessageCount: entry.Count,
			Share:        float64(entry.Count) / float64(snapshot.TotalMessages) * 100,
		})
	}

	resultJSON, err := json.Marshal(map[string]interface{}{
		"participants": participants,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
	}
	return mcp.NewToolResultText(string(resultJSON)), nil
}

func topWordsHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args TopWordsArgs
	argsBytes, _ := json.Marshal(request.Params.Arguments)
	if err := json.Unmarshal(argsBytes, &args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	limit := args.Limit
	if limit == 0 {
		limit = 20
	}

	snapshot, err := loadSnapshot(args.FilePath)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var words []stats.RankedEntry
	if args.Author != "" {
		if _, ok := snapshot.AuthorWordCounts[args.Author]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown participant: %s", args.Author)), nil
		}
		words = snapshot.TopWordsFor(args.Author, limit)
	} else {
		words = snapshot.TopWords(limit)
	}

	resultJSON, err := json.Marshal(map[string]interface{}{
		"words": words,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
	}
	return mcp.NewToolResultText(string(resultJSON)), nil
}
