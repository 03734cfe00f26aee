package serviceImp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoopaholic/entities"
	kbservice "shoopaholic/pkg/kb/service"
)

type fakeLog struct {
	recorded []string
	err      error
}

func (f *fakeLog) Record(text string) (*entities.QueryRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.recorded = append(f.recorded, text)
	return &entities.QueryRecord{ID: uint(len(f.recorded)), Text: text}, nil
}

func (f *fakeLog) Recent(int) ([]string, error) { return f.recorded, nil }
func (f *fakeLog) Total() (int64, error)        { return int64(len(f.recorded)), nil }

type fakeKB struct {
	res kbservice.RetrieveResult
}

func (f *fakeKB) Rebuild(context.Context, string) error { return nil }
func (f *fakeKB) Retrieve(context.Context, string, int) kbservice.RetrieveResult {
	return f.res
}
func (f *fakeKB) Current() (string, uint64) { return "", 0 }

type fakeLLM struct {
	lastContext  string
	lastQuestion string
	answer       string
	err          error
}

func (f *fakeLLM) Answer(_ context.Context, contextText, question string) (string, error) {
	f.lastContext = contextText
	f.lastQuestion = question
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func TestAnswer_HappyPath(t *testing.T) {
	lg := &fakeLog{}
	kb := &fakeKB{res: kbservice.RetrieveResult{Status: kbservice.StatusFound, Context: "We sell shoes and hats."}}
	llm := &fakeLLM{answer: "Yes, we sell shoes."}
	svc := New(lg, kb, llm, 3)

	got := svc.Answer(context.Background(), "do you sell shoes?")
	assert.Equal(t, "Yes, we sell shoes.", got)
	assert.Equal(t, "We sell shoes and hats.", llm.lastContext)
	assert.Equal(t, "do you sell shoes?", llm.lastQuestion)
	require.Len(t, lg.recorded, 1)
	assert.Equal(t, "do you sell shoes?", lg.recorded[0])
}

func TestAnswer_EmptyKnowledgeBaseUsesPlaceholderContext(t *testing.T) {
	kb := &fakeKB{res: kbservice.RetrieveResult{Status: kbservice.StatusNotFound}}
	llm := &fakeLLM{answer: "I don't know."}
	svc := New(&fakeLog{}, kb, llm, 3)

	got := svc.Answer(context.Background(), "do you sell socks?")
	assert.Equal(t, "I don't know.", got)
	assert.Equal(t, placeholderContext, llm.lastContext)
}

func TestAnswer_RetrievalUnavailableStillAnswers(t *testing.T) {
	kb := &fakeKB{res: kbservice.RetrieveResult{Status: kbservice.StatusUnavailable}}
	llm := &fakeLLM{answer: "I don't know."}
	svc := New(&fakeLog{}, kb, llm, 3)

	got := svc.Answer(context.Background(), "anything in stock?")
	assert.Equal(t, "I don't know.", got)
	assert.Equal(t, placeholderContext, llm.lastContext)
}

func TestAnswer_LogFailureIsNonFatal(t *testing.T) {
	lg := &fakeLog{err: errors.New("disk full")}
	kb := &fakeKB{res: kbservice.RetrieveResult{Status: kbservice.StatusFound, Context: "We sell hats."}}
	llm := &fakeLLM{answer: "We have hats."}
	svc := New(lg, kb, llm, 3)

	got := svc.Answer(context.Background(), "hats?")
	assert.Equal(t, "We have hats.", got)
}

func TestAnswer_CompletionFailureReturnsApology(t *testing.T) {
	kb := &fakeKB{res: kbservice.RetrieveResult{Status: kbservice.StatusFound, Context: "We sell hats."}}
	llm := &fakeLLM{err: errors.New("upstream 500")}
	svc := New(&fakeLog{}, kb, llm, 3)

	got := svc.Answer(context.Background(), "hats?")
	assert.Equal(t, apologyAnswer, got)
}
