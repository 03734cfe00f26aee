package service

import "context"

// ChatService runs one end-to-end chat turn. Answer always returns a usable
// string: every failure inside the turn degrades to a fixed message.
type ChatService interface {
	Answer(ctx context.Context, query string) string
}
