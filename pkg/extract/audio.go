package extract

import (
	"context"
	"fmt"
	"log"

	"shoopaholic/pkg/ai"
)

// Audio transcribes recordings through the speech-to-text API.
type Audio struct {
	transcriber ai.Transcriber
}

func NewAudio(t ai.Transcriber) *Audio { return &Audio{transcriber: t} }

func (a *Audio) Extensions() []string { return []string{".mp3", ".wav", ".mp4"} }

func (a *Audio) Extract(ctx context.Context, path string) (string, error) {
	text, err := a.transcriber.Transcribe(ctx, path)
	if err != nil {
		log.Printf("[extract] transcription failed: %v", err)
		return "[Error: Could not transcribe audio.]", nil
	}
	return fmt.Sprintf("[TRANSCRIPT]: %s", text), nil
}
