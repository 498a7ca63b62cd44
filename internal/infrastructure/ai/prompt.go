package ai

import (
	"strings"

	"github.com/textact/textact/internal/domain"
)

// defaultSystemPrompt keeps actions without a prompt usable: the model is
// told to transform rather than converse.
const defaultSystemPrompt = "You transform the text supplied by the user. Apply the requested change and respond with the transformed text only."

// systemPrompt returns the instruction block for an action. The action's
// prompt is used verbatim as the system message.
func systemPrompt(action domain.Action) string {
	if prompt := strings.TrimSpace(action.Prompt); prompt != "" {
		return prompt
	}
	return defaultSystemPrompt
}
