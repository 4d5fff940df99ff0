/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package segmenter slices a Magyar Közlöny issue's consolidated pages
// into one ActRawText per contained Act, bounded by the "II. Törvények"
// / "III. ..." section markers.
package segmenter

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/badicsalex/hunlaw/identifier"
)

// publicationDateRe matches the gazette cover page's date line, e.g.
// "2011. június 28., kedd". Only the year/month/day are captured; the
// trailing day-of-week name is ignored.
var publicationDateRe = regexp.MustCompile(`^(\d{4})\. ([a-záéíóöőúüű]+) (\d{1,2})\.,?`)

// ParseHungarianDate parses the gazette's "YYYY. <hungarian-month> D."
// publication-date format.
func ParseHungarianDate(s string) (time.Time, error) {
	m := publicationDateRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fmt.Errorf("could not parse publication date from %q", s)
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year in publication date %q: %w", s, err)
	}
	month, err := identifier.HungarianMonth(m[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month in publication date %q: %w", s, err)
	}
	day, err := strconv.Atoi(m[3])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day in publication date %q: %w", s, err)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}
