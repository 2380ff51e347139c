package gemini

import (
	"context"
	"fmt"
	"strings"
)

// SourceContext is the provider-agnostic grounding block for one source,
// concatenated into the system instruction in notebook source order.
type SourceContext struct {
	Title   string
	Content string
}

// Turn is one provider-agnostic conversation turn.
type Turn struct {
	Role    string // "user" or "assistant"
	Content string
}

const chatSystemInstructionTemplate = `You are an intelligent notebook assistant.
Use the provided sources to answer the user's questions.
Always cite your sources using bracketed numbers like [1], [2] corresponding to the source index below.
If the answer isn't in the sources, say so, but offer general knowledge if appropriate while clearly distinguishing it.
Current Sources:
%s`

// ChatWithSources sends one grounded chat turn. The caller has already
// appended the user message to its own history; the gateway holds no
// conversation state between calls.
func (c *Client) ChatWithSources(ctx context.Context, query string, sources []SourceContext, history []Turn) (string, error) {
	blocks := make([]string, 0, len(sources))
	for i, src := range sources {
		blocks = append(blocks, fmt.Sprintf("[%d] [Source: %s]\n%s", i+1, src.Title, src.Content))
	}

	contents := make([]*GenerateContentContent, 0, len(history)+1)
	for _, turn := range history {
		role := roleUser
		if turn.Role == "assistant" || turn.Role == roleModel {
			role = roleModel
		}
		contents = append(contents, &GenerateContentContent{
			Parts: []*GenerateContentPart{{Text: turn.Content}},
			Role:  role,
		})
	}
	contents = append(contents, &GenerateContentContent{
		Parts: []*GenerateContentPart{{Text: query}},
		Role:  roleUser,
	})

	payload := &GenerateContentRequest{
		SystemInstruction: &GenerateContentContent{
			Parts: []*GenerateContentPart{{
				Text: fmt.Sprintf(chatSystemInstructionTemplate, strings.Join(blocks, "\n\n")),
			}},
		},
		Contents: contents,
	}

	res, err := c.generateContent(ctx, c.chatModel, payload)
	if err != nil {
		return "", err
	}

	text, ok := firstText(res)
	if !ok {
		return "", &TransportError{Err: fmt.Errorf("response contained no text candidate")}
	}
	return text, nil
}

// SummarizeSource produces a concise summary of one source's content for the
// notebook overview.
func (c *Client) SummarizeSource(ctx context.Context, content string) (string, error) {
	payload := &GenerateContentRequest{
		Contents: []*GenerateContentContent{{
			Parts: []*GenerateContentPart{{
				Text: "Summarize the following source material concisely for a notebook overview:\n\n" + content,
			}},
			Role: roleUser,
		}},
	}

	res, err := c.generateContent(ctx, c.chatModel, payload)
	if err != nil {
		return "", err
	}

	text, ok := firstText(res)
	if !ok {
		return "", &TransportError{Err: fmt.Errorf("response contained no text candidate")}
	}
	return text, nil
}
