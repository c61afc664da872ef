/* Package ucdparse provides a parser for Unicode Character Database files.

Package ucdparse provides a parser for Unicode Character Database files, the
format of which is defined in http://www.unicode.org/reports/tr44/. See
http://www.unicode.org/Public/UCD/latest/ucd/ for example files.

Data lines look like

    0028; 0029; o # LEFT PARENTHESIS
    000E..001F;CM # Cc    [18] <control-000E>..<control-001F>

i.e., a code-point or a range of code-points, followed by ';'-separated
fields and an optional comment. Empty lines and comment lines are skipped.
*/
package ucdparse

import "fmt"

// Token holds the content of a single data line.
type Token struct {
	LineNo   int      // line number, starting at 1
	runeFrom rune     // first/single rune
	runeTo   rune     // final rune of range (may be identical to runeFrom)
	Fields   []string // fields of the data line following the code-point(s), trimmed
	Comment  string   // rest-of-line comment of data item lines
	Error    error    // error condition, if any
}

func (token *Token) String() string {
	return fmt.Sprintf("token[line %d %#U..%#U %#v]", token.LineNo,
		token.runeFrom, token.runeTo, token.Fields)
}

// Field gets field #i (1…n) from the current data item. Field 0 would be
// the code-point range, use Range for it.
func (token *Token) Field(i int) string {
	if i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Range gets the character range from the current data item.
func (token *Token) Range() (from, to rune) {
	return token.runeFrom, token.runeTo
}
