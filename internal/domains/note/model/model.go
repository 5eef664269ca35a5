package model

import (
	"fmt"
	"time"
	"todonotes/shared/constant"
	"todonotes/shared/timezone"
)

const (
	EntityName = "note"
)

type Note struct {
	ID          int64     `bson:"_id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Completed   bool      `bson:"completed" json:"completed"`
	CreatedOn   time.Time `bson:"created_on" json:"created_on"`
}

// New returns a pending note stamped with the current application time.
func New() Note {
	return Note{
		CreatedOn: timezone.Now(),
	}
}

func (n Note) WithID(id int64) Note {
	n.ID = id
	return n
}

func (n Note) WithTitle(title string) Note {
	n.Title = title
	return n
}

func (n Note) WithDescription(description string) Note {
	n.Description = description
	return n
}

func (n Note) Status() string {
	if n.Completed {
		return constant.StatusCompleted
	}

	return constant.StatusPending
}

func (n Note) Summarize() string {
	return fmt.Sprintf(
		"ID: %d\nTitle: %s\nDescription: %s\n[Status: %s]\n(Created on: %s)",
		n.ID,
		n.Title,
		n.Description,
		n.Status(),
		timezone.Format(n.CreatedOn, constant.NoteTimeFormat),
	)
}
