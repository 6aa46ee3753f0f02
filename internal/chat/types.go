package chat

import "scheduling-assistant/pkg/extractor"

// ProcessInput is one inbound user message for a session.
type ProcessInput struct {
	SessionID string
	Message   string
}

// ProcessOutput is the engine's reply for one turn.
type ProcessOutput struct {
	Response string
	Entities extractor.Entities
	Complete bool
}
