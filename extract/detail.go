package extract

import (
	"strings"

	"github.com/fwojciec/fbmarket"
)

const (
	// detailWindowSize is how many lines after the "Details" marker the
	// windowed scan inspects.
	detailWindowSize = 20

	// locationLookback is how many lines before a "Location is approximate"
	// marker are searched for the location value.
	locationLookback = 4
)

// windowState is the state of the windowed scan below the "Details" marker.
type windowState int

const (
	seekingConditionMarker windowState = iota
	awaitingConditionValue
	seekingTitle
	accumulatingDescription
)

// Detail extracts a single listing detail record from the visible text of
// one item page. The identifier and canonical URL come from the caller,
// not from the page.
//
// Extraction is layered: a global marker scan over all lines fills price,
// listed date, condition, and location; a windowed scan anchored at the
// "Details" marker then fills condition, title, and description. Fields
// already set by a scan are not revisited within it, but the windowed
// scan's condition deliberately overwrites the global scan's. A record
// with empty optional fields is a valid result.
func Detail(listingID, url, pageText string) *fbmarket.ListingDetail {
	lines := Lines(pageText)

	detail := &fbmarket.ListingDetail{
		ListingID: listingID,
		URL:       url,
	}

	scanMarkers(lines, detail)
	scanDetailsWindow(lines, detail)

	if detail.Title == "" {
		detail.Title = fallbackTitle(lines)
	}

	return detail
}

// scanMarkers is the global scan: a single left-to-right pass over all
// lines looking for structural markers.
func scanMarkers(lines []string, detail *fbmarket.ListingDetail) {
	for i, line := range lines {
		// Price: the first line that is a price and nothing else.
		if detail.Price == "" && (exactPricePattern.MatchString(line) || strings.EqualFold(line, "free")) {
			detail.Price = line
		}

		// Listed date: "Listed 3 days ago", "Listed a week ago in London".
		if detail.ListedDate == nil && strings.HasPrefix(line, "Listed ") &&
			(strings.Contains(line, "ago") || strings.Contains(line, "in ")) {
			v := line
			detail.ListedDate = &v
		}

		// Condition: the line after each "Condition" marker. Last marker
		// wins; repeated markers refine rather than repeat.
		if line == "Condition" && i+1 < len(lines) {
			v := lines[i+1]
			detail.Condition = &v
		}

		// Location: the closest plausible line above the approximation
		// notice, looking back at most locationLookback lines.
		if strings.Contains(line, "Location is approximate") && i > 0 {
			for j := i - 1; j >= 1 && j >= i-locationLookback; j-- {
				if !strings.HasPrefix(lines[j], "Listed") && runeLen(lines[j]) > 3 {
					detail.Location = lines[j]
					break
				}
			}
		}
	}
}

// scanDetailsWindow is the windowed scan: a bounded forward walk below the
// first line exactly equal to "Details". Without that marker the window
// scan is skipped entirely and the global scan's findings stand.
func scanDetailsWindow(lines []string, detail *fbmarket.ListingDetail) {
	marker := -1
	for i, line := range lines {
		if line == "Details" {
			marker = i
			break
		}
	}
	if marker < 0 {
		return
	}

	state := seekingConditionMarker
	var desc []string

	end := min(marker+1+detailWindowSize, len(lines))
	for i := marker + 1; i < end; i++ {
		line := lines[i]

		// The marker itself never contributes text.
		if line == "Condition" {
			if state == seekingConditionMarker {
				state = awaitingConditionValue
			}
			continue
		}

		// The line after the marker is the condition value, even when it
		// reads like a terminator. Overwrites the global scan's condition.
		if state == awaitingConditionValue {
			v := line
			detail.Condition = &v
			state = seekingTitle
			continue
		}

		if isWindowTerminator(line) {
			break
		}

		switch state {
		case seekingTitle:
			if detail.Title == "" && runeLen(line) > 5 && !currencyPrefixPattern.MatchString(line) {
				detail.Title = line
				state = accumulatingDescription
			}
		case accumulatingDescription:
			if line != detail.Title && runeLen(line) > 2 &&
				(detail.Condition == nil || line != *detail.Condition) {
				desc = append(desc, line)
			}
		}
	}

	detail.Description = strings.Join(desc, "\n")
}

// isWindowTerminator reports whether a line ends the windowed scan: UI
// chrome that marks the end of the details section.
func isWindowTerminator(line string) bool {
	switch line {
	case "Message", "Save", "Share", "Location is approximate":
		return true
	}
	return false
}

// fallbackTitle picks the first substantial line as title when neither
// scan produced one. An empty result leaves the title empty, which is
// still a valid partial record.
func fallbackTitle(lines []string) string {
	for _, line := range lines {
		if runeLen(line) > 10 && !currencyPrefixPattern.MatchString(line) &&
			!strings.Contains(line, "Facebook") {
			return line
		}
	}
	return ""
}
