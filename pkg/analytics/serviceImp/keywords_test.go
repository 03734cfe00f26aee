package serviceImp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoopaholic/pkg/analytics/service"
)

func TestExtractKeywords_Empty(t *testing.T) {
	assert.Empty(t, ExtractKeywords(nil))
	assert.Empty(t, ExtractKeywords([]string{}))
	assert.Empty(t, ExtractKeywords([]string{"", "   "}))
}

func TestExtractKeywords_FiltersStopwordsAndShortTokens(t *testing.T) {
	out := ExtractKeywords([]string{"What is the price of red shoes? Do you have it?"})

	words := make([]string, 0, len(out))
	for _, kw := range out {
		words = append(words, kw.Word)
		assert.Greater(t, len(kw.Word), 2)
		assert.NotContains(t, []string{"what", "is", "the", "price", "do", "you", "have"}, kw.Word)
	}
	assert.Equal(t, []string{"red", "shoes"}, words)
}

func TestExtractKeywords_LowercasesAndSplitsOnPunctuation(t *testing.T) {
	out := ExtractKeywords([]string{"SOCKS!socks,Socks"})
	require.Len(t, out, 1)
	assert.Equal(t, service.KeywordCount{Word: "socks", Count: 3}, out[0])
}

func TestExtractKeywords_AccumulatesAcrossTexts(t *testing.T) {
	out := ExtractKeywords([]string{"any socks?", "socks price?", "do you sell socks"})

	byWord := map[string]int{}
	for _, kw := range out {
		byWord[kw.Word] = kw.Count
	}
	assert.Equal(t, 3, byWord["socks"])
	assert.Equal(t, 1, byWord["sell"])
}

func TestExtractKeywords_FirstSeenOrderOnTies(t *testing.T) {
	out := ExtractKeywords([]string{"zebra apple", "zebra apple"})
	require.Len(t, out, 2)
	assert.Equal(t, "zebra", out[0].Word)
	assert.Equal(t, "apple", out[1].Word)
}

func TestTopKeywords(t *testing.T) {
	counts := []service.KeywordCount{
		{Word: "first", Count: 1},
		{Word: "popular", Count: 5},
		{Word: "second", Count: 1},
	}

	top := TopKeywords(counts, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "popular", top[0].Word)
	// tie between first and second resolves by first-seen order
	assert.Equal(t, "first", top[1].Word)

	assert.Len(t, TopKeywords(counts, 10), 3)
	assert.Empty(t, TopKeywords(counts, 0))

	// input slice must not be reordered
	assert.Equal(t, "first", counts[0].Word)
}
