package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todonotes/internal/domains/note/model/dto"
	"todonotes/shared/failure"
)

func TestAddNoteRequest_ToModel(t *testing.T) {
	req := dto.AddNoteRequest{Title: "Buy milk", Description: "2 liters"}

	note := req.ToModel(4)

	assert.Equal(t, int64(4), note.ID)
	assert.Equal(t, "Buy milk", note.Title)
	assert.Equal(t, "2 liters", note.Description)
	assert.False(t, note.Completed)
	assert.False(t, note.CreatedOn.IsZero())
}

func TestChangeResult_Found(t *testing.T) {
	assert.True(t, dto.ChangeResult{ID: 1, Count: 1}.Found())
	assert.False(t, dto.ChangeResult{ID: 1}.Found())
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "positive", input: "3", want: 3},
		{name: "zero", input: "0", want: 0},
		{name: "negative", input: "-2", want: -2},
		{name: "letters", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "decimal", input: "1.5", wantErr: true},
		{name: "overflow", input: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dto.ParseID(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, failure.ExitDataErr, failure.GetCode(err))
				assert.Contains(t, err.Error(), "invalid note id")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
