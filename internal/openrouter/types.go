package openrouter

// Message roles.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Content part types. OpenRouter accepts a mix of OpenAI chat-style and
// Responses-style parts; the relay sends the reference image in both forms
// since model support varies.
const (
	PartTypeText       = "text"
	PartTypeInputText  = "input_text"
	PartTypeImageURL   = "image_url"
	PartTypeInputImage = "input_image"
)

// ImageURL references an image by URL. Data URLs are allowed.
type ImageURL struct {
	URL string `json:"url"`
}

// ContentPart is one piece of a multimodal chat message.
type ContentPart struct {
	Type        string    `json:"type"`
	Text        string    `json:"text,omitempty"`
	ImageURL    *ImageURL `json:"image_url,omitempty"`
	ImageBase64 string    `json:"image_base64,omitempty"`
}

// Message is one turn of a chat-completions conversation.
type Message struct {
	Role    string        `json:"role"`
	Content []ContentPart `json:"content"`
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}
