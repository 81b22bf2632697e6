package format

import "strings"

const (
	// DefaultPrefixLength is the number of leading characters kept by ShortenAddress.
	DefaultPrefixLength = 32

	// DefaultSuffixLength is the number of trailing characters kept by ShortenAddress.
	DefaultSuffixLength = 6

	// DefaultDelimiter joins the kept ends of a shortened address.
	DefaultDelimiter = "..."

	ellipsis = "…"
)

// ShortenAddress shortens a bech32 address using the default lengths and delimiter.
func ShortenAddress(address string) string {
	return ShortenAddressWith(address, DefaultPrefixLength, DefaultSuffixLength, DefaultDelimiter)
}

// ShortenAddressWith keeps the first prefixLength and the last suffixLength
// characters of address, joined by delimiter. Addresses shorter than
// prefixLength+suffixLength are returned untouched.
func ShortenAddressWith(address string, prefixLength, suffixLength int, delimiter string) string {
	if prefixLength < 0 || suffixLength < 0 || len(address) < prefixLength+suffixLength {
		return address
	}

	var b strings.Builder
	b.Grow(prefixLength + len(delimiter) + suffixLength)
	b.WriteString(address[:prefixLength])
	b.WriteString(delimiter)
	b.WriteString(address[len(address)-suffixLength:])
	return b.String()
}

// TruncateInMiddle keeps firstCharCount runes from the start and endCharCount
// runes from the end of s, separated by an ellipsis.
func TruncateInMiddle(s string, firstCharCount, endCharCount int) string {
	runes := []rune(s)
	firstCharCount = clamp(firstCharCount, 0, len(runes))
	endCharCount = clamp(endCharCount, 0, len(runes)-firstCharCount)

	return string(runes[:firstCharCount]) + ellipsis + string(runes[len(runes)-endCharCount:])
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
