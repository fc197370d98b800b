package hadithsearch

import "sort"

// Sentinel labels used when aggregating records that lack a field. They
// appear only in stats, never on the records themselves.
const (
	UnknownCollection = "Unknown"
	NotGraded         = "Not graded"
)

// GroupCount is one entry of a grouped count, ordered by descending count.
// An ordered list is used instead of a map so the ordering survives JSON
// encoding.
type GroupCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Stats summarizes a set of extracted records.
type Stats struct {
	TotalHadiths int          `json:"total_hadiths"`
	ByCollection []GroupCount `json:"by_collection"`
	ByGrade      []GroupCount `json:"by_grade"`
}

// BuildStats reduces records into grouped counts by collection and by
// English grade. Groups are sorted by descending count; ties keep
// first-seen insertion order.
func BuildStats(hadiths []*Hadith) Stats {
	collections := newGrouping()
	grades := newGrouping()

	for _, h := range hadiths {
		collections.add(orLabel(h.Collection, UnknownCollection))
		grades.add(orLabel(h.GradeEnglish, NotGraded))
	}

	return Stats{
		TotalHadiths: len(hadiths),
		ByCollection: collections.sorted(),
		ByGrade:      grades.sorted(),
	}
}

func orLabel(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// grouping counts labels while remembering first-seen order.
type grouping struct {
	index  map[string]int
	counts []GroupCount
}

func newGrouping() *grouping {
	return &grouping{index: make(map[string]int)}
}

func (g *grouping) add(label string) {
	if i, ok := g.index[label]; ok {
		g.counts[i].Count++
		return
	}
	g.index[label] = len(g.counts)
	g.counts = append(g.counts, GroupCount{Label: label, Count: 1})
}

func (g *grouping) sorted() []GroupCount {
	out := make([]GroupCount, len(g.counts))
	copy(out, g.counts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
