package asm

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ezrec/uasm/object"
)

// MaxLabelLength is the longest accepted label name, in runes.
const MaxLabelLength = 32

// stripComment removes a trailing ; comment. A semicolon inside a
// double-quoted string does not start a comment.
func stripComment(line string) string {
	quoted := false
	for n, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
		case r == ';' && !quoted:
			return line[:n]
		}
	}

	return line
}

// splitLabel splits an optional leading `label:` prefix from a statement.
// The prefix must precede any whitespace or quote.
func splitLabel(statement string) (label, rest string) {
	rest = statement

	n := strings.IndexByte(statement, ':')
	if n <= 0 || strings.ContainsAny(statement[:n], " \t\"") {
		return
	}

	label = statement[:n]
	rest = strings.TrimSpace(statement[n+1:])
	return
}

// firstToken returns the first whitespace-delimited token of a statement.
func firstToken(statement string) string {
	fields := strings.Fields(statement)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}

// splitStatement splits a statement into its leading keyword and the
// remaining operand text.
func splitStatement(statement string) (keyword, operands string) {
	statement = strings.TrimSpace(statement)

	n := strings.IndexFunc(statement, unicode.IsSpace)
	if n < 0 {
		keyword = statement
		return
	}

	keyword = statement[:n]
	operands = strings.TrimSpace(statement[n:])
	return
}

// splitOperands splits operand text into tokens at commas and whitespace.
func splitOperands(operands string) []string {
	return strings.FieldsFunc(operands, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// parseValue parses a signed decimal integer that must fit a word payload.
func parseValue(token string) (value int, err error) {
	v, perr := strconv.ParseInt(token, 10, 64)
	if perr != nil {
		err = ErrBadInteger(token)
		return
	}

	if v < object.MinValue || v > object.MaxValue {
		err = ErrValueRange(v)
		return
	}

	value = int(v)
	return
}

// parseDataValues parses the comma-separated value list of a .data
// directive.
func parseDataValues(operands string) (values []int, err error) {
	tokens := splitOperands(operands)
	if len(tokens) == 0 {
		err = ErrOperandMissing
		return
	}

	for _, token := range tokens {
		var value int
		value, err = parseValue(token)
		if err != nil {
			return
		}
		values = append(values, value)
	}

	return
}

// extractString returns the text between the first and last double quote
// of a .string directive's operand.
func extractString(operands string) (s string, err error) {
	first := strings.IndexByte(operands, '"')
	last := strings.LastIndexByte(operands, '"')
	if first < 0 || last <= first {
		err = ErrStringSyntax
		return
	}

	s = operands[first+1 : last]
	return
}

// stringWords parses a .string operand into character ordinals, without
// the terminating zero word.
func stringWords(operands string) (ordinals []int, err error) {
	content, err := extractString(operands)
	if err != nil {
		return
	}

	for _, r := range content {
		if int(r) > object.MaxOrdinal {
			err = ErrValueRange(r)
			return
		}
		ordinals = append(ordinals, int(r))
	}

	return
}

/// validLabel reports whether name can be bound as a label: a leading
// letter, alphanumerics after, bounded length, and not part of the
// language vocabulary.
func validLabel(name string) bool {
	if name == "" || utf8.RuneCountInString(name) > MaxLabelLength {
		return false
	}

	for n, r := range name {
		if n == 0 && !unicode.IsLetter(r) {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}

	return !reservedWord(name)
}
