package llm

// Usage contains token usage information for an LLM response.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Response from an LLM.
type Response struct {
	ID      string  `json:"id"`
	Model   string  `json:"model"`
	Role    Role    `json:"role"`
	Message Message `json:"message"`
	Usage   Usage   `json:"usage"`
}

// Text returns the text of the response message.
func (r *Response) Text() string {
	return r.Message.Text()
}
