package generator

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryHistoryKeepsCallOrder(t *testing.T) {
	h := NewMemoryHistory()
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	tick := 0
	h.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	h.Append(KindGeneration, "uno...", GeneratedText("a"))
	h.Append(KindCorrection, "dos...", CorrectionResult{Original: "x"})
	h.Append(KindTitles, "tres...", TitleList{"t"})

	records := h.All()
	require.Len(t, records, 3)
	assert.Equal(t, []Kind{KindGeneration, KindCorrection, KindTitles},
		[]Kind{records[0].Kind, records[1].Kind, records[2].Kind})
	assert.Equal(t, "dos...", records[1].InputSummary)
	for i := 1; i < len(records); i++ {
		assert.False(t, records[i].Timestamp.Before(records[i-1].Timestamp))
		assert.NotEqual(t, records[i].ID, records[i-1].ID)
	}
	assert.Equal(t, "2024-05-01T10:00:01.000000Z", records[0].TimestampISO())
}

func TestMemoryHistoryClear(t *testing.T) {
	h := NewMemoryHistory()
	assert.Empty(t, h.All())

	h.Clear()
	assert.Empty(t, h.All())

	for i := 0; i < 4; i++ {
		h.Append(KindSuggestions, "x...", SuggestionList{"s"})
	}
	h.Clear()
	assert.Empty(t, h.All())

	h.Append(KindAnalysis, "y...", StyleAnalysis{})
	assert.Len(t, h.All(), 1)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, "corto...", Summarize("corto"))

	long := strings.Repeat("á", 80)
	got := Summarize(long)
	assert.Equal(t, strings.Repeat("á", 50)+"...", got)
}
