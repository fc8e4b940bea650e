package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "qwen", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Invoker is the narrow single-turn contract consumed by the dialogue
// components: one prompt in, one string out, no built-in memory.
type Invoker interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

// Message represents a conversation message
type Message struct {
	Role string // "user", "assistant", "system"
	Text string
}

// Request represents a normalized LLM generation request
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Response represents a normalized LLM generation response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
