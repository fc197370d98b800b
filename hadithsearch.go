// Package hadithsearch provides search over sunnah.com hadith citations.
// It crawls search result pages, extracts one normalized record per cited
// hadith from the site's semi-structured markup, deduplicates records
// across pages, and aggregates summary statistics.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, gin/).
package hadithsearch
