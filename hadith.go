package hadithsearch

// Hadith is one extracted citation record. Fields are best-effort: the
// upstream markup is inconsistently populated across collections, so any
// field other than Reference may be empty without that being an error.
// Records are constructed once per result block and never merged.
type Hadith struct {
	URN                         string `json:"urn,omitempty"`
	Collection                  string `json:"collection,omitempty"`
	CollectionURL               string `json:"collection_url,omitempty"`
	Book                        string `json:"book,omitempty"`
	BookURL                     string `json:"book_url,omitempty"`
	Reference                   string `json:"reference"`
	HadithURL                   string `json:"hadith_url,omitempty"`
	AnchorName                  string `json:"anchor_name,omitempty"`
	Narrator                    string `json:"narrator,omitempty"`
	EnglishText                 string `json:"english_text,omitempty"`
	ArabicSanad                 string `json:"arabic_sanad,omitempty"`
	ArabicText                  string `json:"arabic_text,omitempty"`
	GradeEnglish                string `json:"grade_english,omitempty"`
	GradeArabic                 string `json:"grade_arabic,omitempty"`
	InBookReference             string `json:"in_book_reference,omitempty"`
	EnglishTranslationReference string `json:"english_translation_reference,omitempty"`
	USCMSAReference             string `json:"usc_msa_reference,omitempty"`
	DeprecatedNumbering         bool   `json:"is_deprecated_numbering"`

	// Page is the result page the record was found on.
	Page int `json:"page,omitempty"`
}

// HasReference reports whether the record carries the canonical reference
// string that gates inclusion in search output.
func (h *Hadith) HasReference() bool {
	return h.Reference != ""
}
