package ai

import "context"

// Client answers a customer question against retrieved shop context.
type Client interface {
	Answer(ctx context.Context, contextText, question string) (string, error)
}

// Transcriber turns an audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}
