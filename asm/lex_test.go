package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripComment(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		want string
	}){
		{"", ""},
		{"inc r1", "inc r1"},
		{"inc r1 ; bump", "inc r1 "},
		{"; whole line", ""},
		{`.string "a;b"`, `.string "a;b"`},
		{`.string "a;b" ; trailing`, `.string "a;b" `},
		{`.string "a;b`, `.string "a;b`},
	}

	for _, entry := range table {
		assert.Equal(entry.want, stripComment(entry.line), entry.line)
	}
}

func TestSplitLabel(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		statement string
		label     string
		rest      string
	}){
		{"inc r1", "", "inc r1"},
		{"LOOP: inc r1", "LOOP", "inc r1"},
		{"LOOP:", "LOOP", ""},
		{"LOOP:inc r1", "LOOP", "inc r1"},
		{": inc r1", "", ": inc r1"},
		{`.string "a:b"`, "", `.string "a:b"`},
		{"a b: c", "", "a b: c"},
	}

	for _, entry := range table {
		label, rest := splitLabel(entry.statement)
		assert.Equal(entry.label, label, entry.statement)
		assert.Equal(entry.rest, rest, entry.statement)
	}
}

func TestSplitStatement(t *testing.T) {
	assert := assert.New(t)

	keyword, operands := splitStatement("mov r1, r2")
	assert.Equal("mov", keyword)
	assert.Equal("r1, r2", operands)

	keyword, operands = splitStatement("rts")
	assert.Equal("rts", keyword)
	assert.Equal("", operands)

	keyword, operands = splitStatement("  .data   1, 2 ")
	assert.Equal(".data", keyword)
	assert.Equal("1, 2", operands)
}

func TestSplitOperands(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{"r1", "r2"}, splitOperands("r1, r2"))
	assert.Equal([]string{"r1", "r2"}, splitOperands("r1 r2"))
	assert.Equal([]string{"#-1", "LEN"}, splitOperands(" #-1 ,  LEN "))
	assert.Empty(splitOperands(""))
}

func TestParseValue(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		token string
		value int
		err   error
	}){
		{"0", 0, nil},
		{"42", 42, nil},
		{"-5", -5, nil},
		{"+7", 7, nil},
		{"2047", 2047, nil},
		{"-2048", -2048, nil},
		{"2048", 0, ErrValueRange(2048)},
		{"-2049", 0, ErrValueRange(-2049)},
		{"five", 0, ErrBadInteger("five")},
		{"0x10", 0, ErrBadInteger("0x10")},
		{"", 0, ErrBadInteger("")},
	}

	for _, entry := range table {
		value, err := parseValue(entry.token)
		assert.Equal(entry.err, err, entry.token)
		assert.Equal(entry.value, value, entry.token)
	}
}

func TestParseDataValues(t *testing.T) {
	assert := assert.New(t)

	values, err := parseDataValues("1, 2, 3")
	assert.NoError(err)
	assert.Equal([]int{1, 2, 3}, values)

	values, err = parseDataValues("7")
	assert.NoError(err)
	assert.Equal([]int{7}, values)

	_, err = parseDataValues("")
	assert.Equal(ErrOperandMissing, err)

	_, err = parseDataValues("1, none")
	assert.Equal(ErrBadInteger("none"), err)
}

func TestStringWords(t *testing.T) {
	assert := assert.New(t)

	ordinals, err := stringWords(`"AB"`)
	assert.NoError(err)
	assert.Equal([]int{'A', 'B'}, ordinals)

	ordinals, err = stringWords(`"a;b"`)
	assert.NoError(err)
	assert.Equal([]int{'a', ';', 'b'}, ordinals)

	ordinals, err = stringWords(`""`)
	assert.NoError(err)
	assert.Nil(ordinals)

	_, err = stringWords(`AB`)
	assert.Equal(ErrStringSyntax, err)

	_, err = stringWords(`"AB`)
	assert.Equal(ErrStringSyntax, err)
}

func TestValidLabel(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		ok   bool
	}){
		{"LOOP", true},
		{"x", true},
		{"Label9", true},
		{"", false},
		{"9lives", false},
		{"with space", false},
		{"da-sh", false},
		{"mov", false},
		{"r7", false},
		{"r9", true},
		{".data", false},
		{"mcro", false},
		{"endmacr", false},
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", true},
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", false},
	}

	for _, entry := range table {
		assert.Equal(entry.ok, validLabel(entry.name), entry.name)
	}
}
