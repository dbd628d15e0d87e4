package text

import "strings"

// lineSeparator is the single separator character recognized by SplitLines
// and emitted by JoinLines. Carriage returns are content, not separators.
const lineSeparator = "\n"

// JoinLines concatenates lines with a line feed between consecutive
// entries. Zero lines produce the empty text value; one line is returned
// unchanged with no trailing separator.
func JoinLines(lines []string) string {
	return strings.Join(lines, lineSeparator)
}

// SplitLines splits s strictly on the line feed character. The empty text
// value yields a single empty line, not zero lines.
func SplitLines(s string) []string {
	return strings.Split(s, lineSeparator)
}
