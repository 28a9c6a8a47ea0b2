package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text unchanged",
			in:   `{"plan": []}`,
			want: `{"plan": []}`,
		},
		{
			name: "bare fence",
			in:   "```\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "json language token",
			in:   "```json\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "python language token",
			in:   "```python\nimport bpy\n```",
			want: "import bpy",
		},
		{
			name: "surrounding whitespace",
			in:   "  \n```json\n[1, 2]\n```\n  ",
			want: "[1, 2]",
		},
		{
			name: "unclosed fence still unwraps",
			in:   "```json\n{\"a\": 1}",
			want: `{"a": 1}`,
		},
		{
			name: "fence markers inside plain text are kept",
			in:   "use ``` to fence code",
			want: "use ``` to fence code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFences(tt.in))
		})
	}
}

func TestNewClientUnknownProvider(t *testing.T) {
	_, err := NewClient(ProviderConfig{Provider: "parrot", APIKey: "k", Model: "m"})
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestNewClientAnthropicRequiresKeyAndModel(t *testing.T) {
	_, err := NewClient(ProviderConfig{Provider: "anthropic", Model: "claude-sonnet-4-5"})
	require.Error(t, err)

	_, err = NewClient(ProviderConfig{Provider: "anthropic", APIKey: "k"})
	require.Error(t, err)

	c, err := NewClient(ProviderConfig{Provider: "anthropic", APIKey: "k", Model: "claude-sonnet-4-5"})
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestMessageConstructors(t *testing.T) {
	assert.Equal(t, RoleSystem, SystemMsg("s").Role)
	assert.Equal(t, RoleUser, UserMsg("u").Role)
	assert.Equal(t, RoleAssistant, AssistantMsg("a").Role)
}
