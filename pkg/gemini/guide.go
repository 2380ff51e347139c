package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

const guidePromptTemplate = `Generate a structured %s based on these sources.
Return the output in a clean JSON format that can be rendered visually.
Sources:
%s`

// GenerateGuide asks the backend for a machine-parseable study guide of the
// given type. Source order carries no meaning here since guides do not cite
// by index. A well-formed transport round trip with a malformed body yields
// a *GuideDecodeError carrying the raw text verbatim.
func (c *Client) GenerateGuide(ctx context.Context, guideType string, sources []SourceContext) (map[string]interface{}, error) {
	contents := make([]string, 0, len(sources))
	for _, src := range sources {
		contents = append(contents, src.Content)
	}

	payload := &GenerateContentRequest{
		Contents: []*GenerateContentContent{{
			Parts: []*GenerateContentPart{{
				Text: fmt.Sprintf(guidePromptTemplate, guideType, strings.Join(contents, "\n\n")),
			}},
			Role: roleUser,
		}},
		GenerationConfig: &GenerationConfig{
			ResponseMimeType: "application/json",
		},
	}

	res, err := c.generateContent(ctx, c.chatModel, payload)
	if err != nil {
		return nil, err
	}

	raw, ok := firstText(res)
	if !ok {
		return nil, &TransportError{Err: fmt.Errorf("response contained no text candidate")}
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(stripJSONFence(raw)), &decoded); err != nil {
		return nil, &GuideDecodeError{Raw: raw, Err: err}
	}
	return decoded, nil
}
