package ai

import (
	"context"
	"fmt"
	"strings"
)

// MockClient answers without an external call. Useful for local development
// and tests.
type MockClient struct{}

func NewMock() *MockClient { return &MockClient{} }

func (m *MockClient) Answer(_ context.Context, contextText, question string) (string, error) {
	if strings.TrimSpace(contextText) == "" {
		return "I don't know.", nil
	}
	return fmt.Sprintf("(mock) Based on the shop data, regarding %q: %s", question, firstLine(contextText)), nil
}

func (m *MockClient) Transcribe(_ context.Context, path string) (string, error) {
	return fmt.Sprintf("(mock transcript of %s)", path), nil
}

func firstLine(s string) string {
	line := strings.SplitN(strings.TrimSpace(s), "\n", 2)[0]
	if len(line) > 160 {
		line = line[:160]
	}
	return line
}
