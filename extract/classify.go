package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// symbolPricePattern matches currency-symbol-first prices: "£45", "$1,200.50 ono".
	symbolPricePattern = regexp.MustCompile(`^[\$£€][\d,\.]+`)

	// numberPricePattern matches number-first prices: "45 €".
	numberPricePattern = regexp.MustCompile(`^[\d,\.]+\s*[\$£€]`)

	// exactPricePattern matches lines that are a price and nothing else.
	exactPricePattern = regexp.MustCompile(`^[\$£€][\d,\.]+$`)

	// currencyPrefixPattern matches any line starting with a currency symbol.
	currencyPrefixPattern = regexp.MustCompile(`^[\$£€]`)

	// bareNumberPattern matches lines consisting only of digits.
	bareNumberPattern = regexp.MustCompile(`^\d+$`)
)

// IsPrice reports whether a line reads as a price: a currency-symbol-led
// number, a number followed by a currency symbol, or a bare "Free".
func IsPrice(line string) bool {
	return symbolPricePattern.MatchString(line) ||
		numberPricePattern.MatchString(line) ||
		strings.EqualFold(line, "free")
}

// IsBareNumber reports whether a line consists only of digits. Such lines
// are rejected as title candidates (they are usually counts or badges).
func IsBareNumber(line string) bool {
	return bareNumberPattern.MatchString(line)
}

// LooksLikeTitle reports whether a line could serve as a listing title.
// The predicate only says what a line could be; role assignment is
// positional and depends on which roles are already filled.
func LooksLikeTitle(line string) bool {
	return !IsPrice(line) && !IsBareNumber(line) && runeLen(line) > 2
}

// LooksLikeLocation reports whether a line could serve as a location.
// Deliberately loose: the location is whatever plausible text follows
// once the title is locked in.
func LooksLikeLocation(line string) bool {
	return runeLen(line) > 2
}

// runeLen returns the length of a line in runes. Length thresholds count
// characters, not bytes, so currency symbols and accents don't skew them.
func runeLen(line string) int {
	return utf8.RuneCountInString(line)
}
