package cards

import (
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/five82/backyard/internal/ebird"
)

// InvalidDate is rendered for observation timestamps that cannot be parsed.
const InvalidDate = "Invalid Date"

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en-US"

// isoDateLayout is the fallback for locales without a known short form.
const isoDateLayout = "2006-01-02"

// shortDateLayouts maps supported locales to their short numeric date form.
// The first entry is the fallback used when nothing matches.
var shortDateLayouts = []struct {
	tag    language.Tag
	layout string
}{
	{language.Und, isoDateLayout},
	{language.AmericanEnglish, "1/2/2006"},
	{language.BritishEnglish, "02/01/2006"},
	{language.German, "2.1.2006"},
	{language.French, "02/01/2006"},
	{language.Spanish, "02/01/2006"},
	{language.Italian, "02/01/2006"},
	{language.Dutch, "2-1-2006"},
	{language.Japanese, "2006/1/2"},
	{language.Chinese, "2006/1/2"},
}

var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(shortDateLayouts))
	for i, entry := range shortDateLayouts {
		tags[i] = entry.tag
	}
	return language.NewMatcher(tags)
}()

// DateFormatter renders observation dates for one locale and time zone. It is
// immutable and safe to share.
type DateFormatter struct {
	layout   string
	location *time.Location
}

// NewDateFormatter resolves locale (a BCP 47 tag such as "en-GB") to a short
// date layout. An empty or malformed locale uses DefaultLocale; a nil location
// uses time.Local.
func NewDateFormatter(locale string, loc *time.Location) DateFormatter {
	if loc == nil {
		loc = time.Local
	}
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil || tag == language.Und {
		tag = language.MustParse(DefaultLocale)
	}

	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No || idx < 0 || idx >= len(shortDateLayouts) {
		idx = 0
	}
	return DateFormatter{
		layout:   shortDateLayouts[idx].layout,
		location: loc,
	}
}

// Layout returns the Go time layout used for dates.
func (f DateFormatter) Layout() string {
	if f.layout == "" {
		return isoDateLayout
	}
	return f.layout
}

// Date renders an eBird obsDt value as a short local date.
func (f DateFormatter) Date(obsDt string) string {
	t, ok := ebird.Observation{ObsDt: obsDt}.ParsedObsDt(f.location)
	if !ok {
		return InvalidDate
	}
	return t.Format(f.Layout())
}
