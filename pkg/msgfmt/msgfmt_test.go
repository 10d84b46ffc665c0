package msgfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	msg := Format("Hi {first_name}, greetings from {company}!", map[string]string{
		"first_name": "Ana",
		"company":    "Initech",
	})
	assert.Equal(t, "Hi Ana, greetings from Initech!", msg)
}

func TestFormat__Missing_Field(t *testing.T) {
	msg := Format("Hi {first_name}{last_name}", map[string]string{
		"first_name": "Ana",
	})
	assert.Equal(t, "Hi Ana", msg)
}

func TestFormat__Nil_Fields(t *testing.T) {
	assert.Equal(t, "Hi ", Format("Hi {first_name}", nil))
}

func TestFormat__Unrecognized_Syntax_Passed_Through(t *testing.T) {
	fields := map[string]string{"name": "Ana"}

	assert.Equal(t, "braces {} stay", Format("braces {} stay", fields))
	assert.Equal(t, "a {b c} d", Format("a {b c} d", fields))
	assert.Equal(t, "open { brace", Format("open { brace", fields))
	assert.Equal(t, "{Ana", Format("{{name}", fields))
}

func TestFormat__No_Placeholders(t *testing.T) {
	assert.Equal(t, "plain text", Format("plain text", map[string]string{"a": "b"}))
}
