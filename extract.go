package hadithsearch

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	urnRe        = regexp.MustCompile(`URN \[en\] (\d+)`)
	hadithHrefRe = regexp.MustCompile(`/[a-z]+:\d+`)
	narratedRe   = regexp.MustCompile(`^Narrated\s+`)
	refValueRe   = regexp.MustCompile(`^\s*:\s*`)
)

// ExtractHadith reconstructs a single record from one result block,
// resolving extracted hrefs against base. Every step is independently
// guarded: a missing sub-element leaves its field unset rather than
// aborting the rest of the extraction, because some record types lack
// Arabic text, grading, or cross-reference tables entirely.
func ExtractHadith(block Node, base *url.URL) *Hadith {
	h := &Hadith{}

	// The record identifier lives in an HTML comment, not an element.
	if s, ok := block.FindString(urnRe); ok {
		if m := urnRe.FindStringSubmatch(s); m != nil {
			h.URN = m[1]
		}
	}

	if bc, ok := block.FindFirst(Matcher{Tag: "div", Class: "bc_search"}); ok {
		links := bc.FindAll(Matcher{Tag: "a", Class: "nounderline"})
		if len(links) >= 1 {
			h.Collection = links[0].Text()
			h.CollectionURL = resolveHref(base, links[0])
		}
		if len(links) >= 2 {
			book := links[1].Text()
			if i := strings.Index(book, " - "); i >= 0 {
				book = strings.TrimSpace(book[:i])
			}
			h.Book = book
			h.BookURL = resolveHref(base, links[1])
		}
	}

	if ref, ok := block.FindFirst(Matcher{Tag: "div", Class: "hadith_reference_sticky"}); ok {
		h.Reference = ref.Text()
	}

	if link, ok := block.FindFirst(Matcher{Tag: "a", Attr: "href", AttrPattern: hadithHrefRe}); ok {
		h.HadithURL = resolveHref(base, link)
	}

	if anchor, ok := block.FindFirst(Matcher{Tag: "a", Attr: "name"}); ok {
		h.AnchorName, _ = anchor.Attr("name")
	}

	if nar, ok := block.FindFirst(Matcher{Tag: "div", Class: "hadith_narrated"}); ok {
		text := narratedRe.ReplaceAllString(nar.Text(), "")
		h.Narrator = strings.TrimSuffix(text, ":")
	}

	if details, ok := block.FindFirst(Matcher{Tag: "div", Class: "text_details"}); ok {
		var parts []string
		for _, child := range details.ChildElements() {
			if child.TagName() != "p" && child.TagName() != "div" {
				continue
			}
			if child.HasClass("hadith_narrated") {
				continue
			}
			if t := child.Text(); t != "" {
				parts = append(parts, t)
			}
		}
		h.EnglishText = strings.Join(parts, " ")
	}

	if arabic, ok := block.FindFirst(Matcher{Tag: "div", Class: "arabic_hadith_full"}); ok {
		if sanad, ok := arabic.FindFirst(Matcher{Tag: "span", Class: "arabic_sanad"}); ok {
			h.ArabicSanad = sanad.Text()
		}
		if body, ok := arabic.FindFirst(Matcher{Tag: "span", Class: "arabic_text_details"}); ok {
			h.ArabicText = body.Text()
		}
	}

	if table, ok := block.FindFirst(Matcher{Tag: "table", Class: "gradetable"}); ok {
		for _, td := range table.FindAll(Matcher{Tag: "td"}) {
			switch {
			case td.HasClass("english_grade"):
				// "Grade:" is the column heading, not a value.
				if t := td.Text(); t != "" && t != "Grade:" {
					h.GradeEnglish = t
				}
			case td.HasClass("arabic_grade"):
				// Cells containing the Arabic word for "ruling" are
				// headings, not values.
				if t := td.Text(); t != "" && !strings.Contains(t, "حكم") {
					h.GradeArabic = t
				}
			}
		}
	}

	if table, ok := block.FindFirst(Matcher{Tag: "table", Class: "hadith_reference"}); ok {
		for _, row := range table.FindAll(Matcher{Tag: "tr"}) {
			tds := row.FindAll(Matcher{Tag: "td"})
			if len(tds) < 2 {
				continue
			}
			label := strings.ToLower(tds[0].Text())
			value := refValueRe.ReplaceAllString(tds[1].Text(), "")
			switch {
			case strings.Contains(label, "in-book"):
				h.InBookReference = value
			case strings.Contains(label, "english translation"):
				h.EnglishTranslationReference = value
			case strings.Contains(label, "usc-msa"):
				h.USCMSAReference = value
				if strings.Contains(strings.ToLower(row.Text()), "deprecated") {
					h.DeprecatedNumbering = true
				}
			}
		}
	}

	return h
}

// resolveHref resolves a link's href against the base URL. An unparseable
// href yields the base itself, mirroring the upstream site's behavior of
// concatenating the base with whatever the attribute holds.
func resolveHref(base *url.URL, link Node) string {
	href, _ := link.Attr("href")
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return base.String()
	}
	return base.ResolveReference(ref).String()
}
