package constant

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelSequenceScopeName   = "sequence"

	OtelQueryAttributeKey  = "query"
	OtelNoteIDAttributeKey = "note.id"
)

const (
	FieldID        = "_id"
	FieldCompleted = "completed"
	FieldSeq       = "seq"
)

const (
	// NoteTimeFormat is how a note's creation time is shown to the user.
	NoteTimeFormat = "02/01/2006 @ 03:04:05 PM"
)

const (
	CommandAdd  = "add"
	CommandMark = "mark"
	CommandDel  = "del"
)

const (
	PromptTitle       = "Title: "
	PromptDescription = "Description: "
	PromptMarkID      = "Enter note ID to mark as completed: "
	PromptDeleteID    = "Enter note ID to delete: "
)

const (
	MessageAdded    = "Note added."
	MessageMarked   = "Note marked as completed."
	MessageDeleted  = "Note deleted."
	MessageSummary  = "Summary of saved notes:"
	MessageUsage    = "Usage: notes <add|mark|del>"
	StatusCompleted = "Completed"
	StatusPending   = "Pending"
)
