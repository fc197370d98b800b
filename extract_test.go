package hadithsearch_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x7007x/hadithsearch"
	"github.com/x7007x/hadithsearch/goquery"
)

// parseBlock parses markup and returns the first result block in it.
func parseBlock(t *testing.T, markup string) hadithsearch.Node {
	t.Helper()

	doc, err := goquery.NewParser().Parse(markup)
	require.NoError(t, err)

	block, ok := doc.FindFirst(hadithsearch.Matcher{Tag: "div", Class: "boh"})
	require.True(t, ok, "markup should contain a result block")
	return block
}

func sunnahBase(t *testing.T) *url.URL {
	t.Helper()

	base, err := url.Parse("https://sunnah.com")
	require.NoError(t, err)
	return base
}

const fullBlock = `<html><body><div class="boh">
<!-- URN [en] 44180 -->
<div class="bc_search">
  <a class="nounderline" href="/bukhari">Sahih al-Bukhari</a>
  <a class="nounderline" href="/bukhari/2">Belief - كتاب الإيمان</a>
</div>
<div class="hadith_reference_sticky">Sahih al-Bukhari 52</div>
<a name="52"></a>
<a href="/bukhari:52">full hadith</a>
<div class="text_details">
  <div class="hadith_narrated">Narrated Abu Huraira:</div>
  <p>Religion is very easy and whoever overburdens himself will not be able to continue.</p>
  <div>So be moderate and receive good tidings.</div>
</div>
<div class="arabic_hadith_full">
  <span class="arabic_sanad">حدثنا عبد السلام بن مطهر</span>
  <span class="arabic_text_details">إن الدين يسر</span>
</div>
<table class="gradetable">
  <tr>
    <td class="english_grade">Grade:</td>
    <td class="english_grade">Sahih</td>
    <td class="arabic_grade">حكم :</td>
    <td class="arabic_grade">صحيح</td>
  </tr>
</table>
<table class="hadith_reference">
  <tr><td>Reference</td><td>: Sahih al-Bukhari 52</td></tr>
  <tr><td>In-book reference</td><td>: Book 2, Hadith 45</td></tr>
  <tr><td>English translation</td><td>: Vol. 1, Book 2, Hadith 39</td></tr>
  <tr><td>USC-MSA web (English) reference</td><td>: Vol. 1, Book 2, Hadith 38 (deprecated numbering scheme)</td></tr>
</table>
</div></body></html>`

func TestExtractHadith(t *testing.T) {
	t.Parallel()

	t.Run("extracts all fields from complete block", func(t *testing.T) {
		t.Parallel()

		h := hadithsearch.ExtractHadith(parseBlock(t, fullBlock), sunnahBase(t))

		assert.Equal(t, "44180", h.URN)
		assert.Equal(t, "Sahih al-Bukhari", h.Collection)
		assert.Equal(t, "https://sunnah.com/bukhari", h.CollectionURL)
		assert.Equal(t, "Belief", h.Book)
		assert.Equal(t, "https://sunnah.com/bukhari/2", h.BookURL)
		assert.Equal(t, "Sahih al-Bukhari 52", h.Reference)
		assert.Equal(t, "https://sunnah.com/bukhari:52", h.HadithURL)
		assert.Equal(t, "52", h.AnchorName)
		assert.Equal(t, "Abu Huraira", h.Narrator)
		assert.Equal(t, "Religion is very easy and whoever overburdens himself will not be able to continue. So be moderate and receive good tidings.", h.EnglishText)
		assert.Equal(t, "حدثنا عبد السلام بن مطهر", h.ArabicSanad)
		assert.Equal(t, "إن الدين يسر", h.ArabicText)
		assert.Equal(t, "Sahih", h.GradeEnglish)
		assert.Equal(t, "صحيح", h.GradeArabic)
		assert.Equal(t, "Book 2, Hadith 45", h.InBookReference)
		assert.Equal(t, "Vol. 1, Book 2, Hadith 39", h.EnglishTranslationReference)
		assert.Equal(t, "Vol. 1, Book 2, Hadith 38 (deprecated numbering scheme)", h.USCMSAReference)
		assert.True(t, h.DeprecatedNumbering)
	})

	t.Run("strips narrator prefix and trailing colon", func(t *testing.T) {
		t.Parallel()

		block := parseBlock(t, `<div class="boh"><div class="hadith_narrated">Narrated Abu Huraira:</div></div>`)

		h := hadithsearch.ExtractHadith(block, sunnahBase(t))

		assert.Equal(t, "Abu Huraira", h.Narrator)
	})

	t.Run("leaves grade unset for placeholder cell", func(t *testing.T) {
		t.Parallel()

		block := parseBlock(t, `<div class="boh"><table class="gradetable"><tr>
			<td class="english_grade">Grade:</td>
			<td class="arabic_grade">حكم :</td>
		</tr></table></div>`)

		h := hadithsearch.ExtractHadith(block, sunnahBase(t))

		assert.Empty(t, h.GradeEnglish)
		assert.Empty(t, h.GradeArabic)
	})

	t.Run("keeps full book text without separator", func(t *testing.T) {
		t.Parallel()

		block := parseBlock(t, `<div class="boh"><div class="bc_search">
			<a class="nounderline" href="/nawawi40">40 Hadith Nawawi</a>
			<a class="nounderline" href="/nawawi40/1">Introduction</a>
		</div></div>`)

		h := hadithsearch.ExtractHadith(block, sunnahBase(t))

		assert.Equal(t, "Introduction", h.Book)
	})

	t.Run("missing sub-elements yield partial record", func(t *testing.T) {
		t.Parallel()

		block := parseBlock(t, `<div class="boh">
			<div class="hadith_reference_sticky">Sunan Abi Dawud 10</div>
		</div>`)

		h := hadithsearch.ExtractHadith(block, sunnahBase(t))

		assert.Equal(t, "Sunan Abi Dawud 10", h.Reference)
		assert.True(t, h.HasReference())
		assert.Empty(t, h.URN)
		assert.Empty(t, h.Collection)
		assert.Empty(t, h.Narrator)
		assert.Empty(t, h.EnglishText)
		assert.Empty(t, h.ArabicText)
		assert.Empty(t, h.GradeEnglish)
		assert.False(t, h.DeprecatedNumbering)
	})

	t.Run("block without reference fails the inclusion gate", func(t *testing.T) {
		t.Parallel()

		block := parseBlock(t, `<div class="boh"><div class="hadith_narrated">Narrated someone:</div></div>`)

		h := hadithsearch.ExtractHadith(block, sunnahBase(t))

		assert.False(t, h.HasReference())
	})

	t.Run("no deprecated flag without the marker", func(t *testing.T) {
		t.Parallel()

		block := parseBlock(t, `<div class="boh"><table class="hadith_reference">
			<tr><td>USC-MSA web (English) reference</td><td>: Vol. 1, Book 2, Hadith 38</td></tr>
		</table></div>`)

		h := hadithsearch.ExtractHadith(block, sunnahBase(t))

		assert.Equal(t, "Vol. 1, Book 2, Hadith 38", h.USCMSAReference)
		assert.False(t, h.DeprecatedNumbering)
	})
}
