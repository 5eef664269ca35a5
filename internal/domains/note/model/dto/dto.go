package dto

import (
	"fmt"
	"strconv"
	"todonotes/internal/domains/note/model"
	"todonotes/shared/failure"
)

type AddNoteRequest struct {
	Title       string
	Description string
}

func (r *AddNoteRequest) ToModel(id int64) model.Note {
	return model.New().
		WithID(id).
		WithTitle(r.Title).
		WithDescription(r.Description)
}

// ChangeResult reports how many notes a mark or delete touched.
type ChangeResult struct {
	ID    int64
	Count int64
}

func (r ChangeResult) Found() bool {
	return r.Count > 0
}

// ParseID converts user input into a note id.
func ParseID(input string) (int64, error) {
	id, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return 0, failure.InvalidInputFromString(fmt.Sprintf("invalid note id %q: must be an integer", input))
	}

	return id, nil
}
