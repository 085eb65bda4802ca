package cmdtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignature_Summary(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected string
	}{
		{"empty", "", ""},
		{"single line", "Open a URL.", "Open a URL"},
		{"no trailing period", "Open a URL", "Open a URL"},
		{"only first line", "Open a URL.\n\nLonger explanation here.", "Open a URL"},
		{"surrounding whitespace", "  Open a URL.  \nmore", "Open a URL"},
		{"single period stripped", "Wait...", "Wait.."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := Signature{Doc: tt.doc}
			assert.Equal(t, tt.expected, sig.Summary())
		})
	}
}

func TestSignature_HasCount(t *testing.T) {
	withCount := Signature{Params: []Param{{Name: "url"}, {Name: "count", HasDefault: true}}}
	assert.True(t, withCount.HasCount())

	without := Signature{Params: []Param{{Name: "url"}}}
	assert.False(t, without.HasCount())

	// A receiver named count is not a count parameter.
	receiverOnly := Signature{Receiver: true, Params: []Param{{Name: "count"}}}
	assert.False(t, receiverOnly.HasCount())
}

func TestSignature_CommandName(t *testing.T) {
	assert.Equal(t, "openview", Signature{Name: "OpenView"}.CommandName())
	assert.Equal(t, "", Signature{}.CommandName())
}

func TestCommand_AllNames(t *testing.T) {
	cmd := Command{Name: "q", Aliases: []string{"quit", "exit"}}
	assert.Equal(t, []string{"q", "quit", "exit"}, cmd.AllNames())

	solo := Command{Name: "open"}
	assert.Equal(t, []string{"open"}, solo.AllNames())
}
