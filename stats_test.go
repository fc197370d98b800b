package hadithsearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/x7007x/hadithsearch"
)

func TestBuildStats(t *testing.T) {
	t.Parallel()

	t.Run("counts collections with sentinel for missing", func(t *testing.T) {
		t.Parallel()

		hadiths := []*hadithsearch.Hadith{
			{Collection: "A"},
			{Collection: "A"},
			{Collection: "B"},
			{},
		}

		stats := hadithsearch.BuildStats(hadiths)

		assert.Equal(t, 4, stats.TotalHadiths)
		assert.Equal(t, []hadithsearch.GroupCount{
			{Label: "A", Count: 2},
			{Label: "B", Count: 1},
			{Label: hadithsearch.UnknownCollection, Count: 1},
		}, stats.ByCollection)
	})

	t.Run("counts grades with sentinel for ungraded", func(t *testing.T) {
		t.Parallel()

		hadiths := []*hadithsearch.Hadith{
			{GradeEnglish: "Sahih"},
			{},
			{GradeEnglish: "Sahih"},
			{GradeEnglish: "Da'if"},
		}

		stats := hadithsearch.BuildStats(hadiths)

		assert.Equal(t, []hadithsearch.GroupCount{
			{Label: "Sahih", Count: 2},
			{Label: hadithsearch.NotGraded, Count: 1},
			{Label: "Da'if", Count: 1},
		}, stats.ByGrade)
	})

	t.Run("orders by descending count", func(t *testing.T) {
		t.Parallel()

		hadiths := []*hadithsearch.Hadith{
			{Collection: "A"},
			{Collection: "B"},
			{Collection: "B"},
			{Collection: "B"},
			{Collection: "C"},
			{Collection: "C"},
		}

		stats := hadithsearch.BuildStats(hadiths)

		assert.Equal(t, []hadithsearch.GroupCount{
			{Label: "B", Count: 3},
			{Label: "C", Count: 2},
			{Label: "A", Count: 1},
		}, stats.ByCollection)
	})

	t.Run("ties keep first-seen order", func(t *testing.T) {
		t.Parallel()

		hadiths := []*hadithsearch.Hadith{
			{Collection: "Z"},
			{Collection: "A"},
			{Collection: "M"},
		}

		stats := hadithsearch.BuildStats(hadiths)

		assert.Equal(t, []hadithsearch.GroupCount{
			{Label: "Z", Count: 1},
			{Label: "A", Count: 1},
			{Label: "M", Count: 1},
		}, stats.ByCollection)
	})

	t.Run("empty input yields empty groups", func(t *testing.T) {
		t.Parallel()

		stats := hadithsearch.BuildStats(nil)

		assert.Equal(t, 0, stats.TotalHadiths)
		assert.Empty(t, stats.ByCollection)
		assert.Empty(t, stats.ByGrade)
	})
}
