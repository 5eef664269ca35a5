package prompt_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todonotes/shared/failure"
	"todonotes/shared/prompt"
)

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("closed")
}

func TestReader_Line(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "trims whitespace",
			input:    "  Buy milk  \n\t2 liters\r\n",
			expected: []string{"Buy milk", "2 liters"},
		},
		{
			name:     "last line without newline",
			input:    "Buy milk\n2 liters",
			expected: []string{"Buy milk", "2 liters"},
		},
		{
			name:     "empty line is a valid answer",
			input:    "\n\n",
			expected: []string{"", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			reader := prompt.New(strings.NewReader(tt.input), &out)

			for _, want := range tt.expected {
				got, err := reader.Line("Title: ")
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}

			assert.Equal(t, strings.Repeat("Title: ", len(tt.expected)), out.String())
		})
	}
}

func TestReader_Line_NoInput(t *testing.T) {
	reader := prompt.New(strings.NewReader("only\n"), &bytes.Buffer{})

	_, err := reader.Line("Title: ")
	require.NoError(t, err)

	_, err = reader.Line("Description: ")
	assert.ErrorIs(t, err, prompt.ErrNoInput)
	assert.Equal(t, failure.ExitDataErr, failure.GetCode(err))
}

func TestReader_Line_WriteError(t *testing.T) {
	reader := prompt.New(strings.NewReader("x\n"), failingWriter{})

	_, err := reader.Line("Title: ")
	assert.Error(t, err)
}
