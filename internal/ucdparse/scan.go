package ucdparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// --- Line level scanner ----------------------------------------------------

// Scanner is a line-level scanner for UCD files.
//
// It will operate by calling scanning steps in a chain. Each step function
// consumes part of the line and then possibly branches out to a subsequent
// step function.
type Scanner struct {
	lines     *bufio.Scanner
	lineNo    int
	text      string // remainder of the current line
	LastError error  // last error, if any
	Token     *Token // last token produced by scanner
}

// A scanner step will return the next step in the chain, or nil to stop/accept.
type scannerStep func(*Token) (*Token, scannerStep)

// New creates a scanner for an input reader.
func New(inputReader io.Reader) (*Scanner, error) {
	if inputReader == nil {
		return nil, errors.New("no input present")
	}
	return &Scanner{lines: bufio.NewScanner(inputReader)}, nil
}

// Parse iterates over each data line of a UCD file and calls callback f on it.
func Parse(r io.Reader, f func(token *Token)) error {
	sc, err := New(r)
	if err != nil {
		return err
	}
	for sc.Next() {
		f(sc.Token)
	}
	return sc.LastError
}

// Next reads the next data line. It returns false at the end of input or
// if a line could not be parsed. In the latter case LastError is set.
func (sc *Scanner) Next() bool {
	for sc.lines.Scan() {
		sc.lineNo++
		sc.text = strings.TrimSpace(sc.lines.Text())
		if sc.text == "" || sc.text[0] == '#' {
			continue
		}
		token := &Token{LineNo: sc.lineNo}
		var step scannerStep = sc.scanRuneRange
		for step != nil {
			token, step = step(token)
		}
		sc.Token = token
		if token.Error != nil {
			sc.LastError = token.Error
			return false
		}
		return true
	}
	sc.LastError = sc.lines.Err()
	return false
}

// scanRuneRange reads 'XXXX' or 'XXXX..YYYY' up to the first ';'.
func (sc *Scanner) scanRuneRange(token *Token) (*Token, scannerStep) {
	field := sc.text
	if i := strings.IndexByte(field, ';'); i >= 0 {
		field, sc.text = field[:i], field[i+1:]
	} else {
		token.Error = fmt.Errorf("line %d: missing ';' after code-point", token.LineNo)
		return token, nil
	}
	from, to := strings.TrimSpace(field), ""
	if i := strings.Index(from, ".."); i >= 0 {
		from, to = from[:i], from[i+2:]
	}
	var err error
	if token.runeFrom, err = parseHexRune(from); err != nil {
		token.Error = fmt.Errorf("line %d: %w", token.LineNo, err)
		return token, nil
	}
	token.runeTo = token.runeFrom
	if to != "" {
		if token.runeTo, err = parseHexRune(to); err != nil {
			token.Error = fmt.Errorf("line %d: %w", token.LineNo, err)
			return token, nil
		}
	}
	return token, sc.scanItemBody
}

// scanItemBody splits the rest of the line into fields and comment.
func (sc *Scanner) scanItemBody(token *Token) (*Token, scannerStep) {
	body := sc.text
	if i := strings.IndexByte(body, '#'); i >= 0 {
		token.Comment = strings.TrimSpace(body[i+1:])
		body = body[:i]
	}
	for _, f := range strings.Split(body, ";") {
		token.Fields = append(token.Fields, strings.TrimSpace(f))
	}
	return token, nil
}

// ParseHexRune reads a code-point in hexadecimal notation, as used
// throughout UCD files.
func ParseHexRune(s string) (rune, error) {
	return parseHexRune(strings.TrimSpace(s))
}

func parseHexRune(hex string) (rune, error) {
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("hex decoding error: %w", err)
	}
	return rune(n), nil
}
