package domain

// PromptType selects what an AI prompt produces: rewritten content or a
// post type classification.
type PromptType string

const (
	PromptContent PromptType = "content"
	PromptTypeID  PromptType = "type_id"
)

// AIPrompt is a prompt template with {{tag}} placeholders.
type AIPrompt struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Prompt     string     `json:"prompt"`
	PromptType PromptType `json:"prompt_type"`
	IsActive   bool       `json:"is_active"`
	IsDefault  bool       `json:"is_default"`
}
