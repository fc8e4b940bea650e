package chat

// ProcessMessageInput is the input for one conversational turn.
type ProcessMessageInput struct {
	Text string // Raw user message, any supported language
}

// ProcessMessageOutput is the result of one conversational turn.
type ProcessMessageOutput struct {
	Reply    string // Reply in the user's language
	Intent   string // Intent the turn resolved to ("" for short-circuit turns)
	Language string // Detected language of the incoming message
}
