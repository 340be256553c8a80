package domain

// AttendantAuthor is the author name recorded on attendant replies.
const AttendantAuthor = "Atendente"

// Interaction is one entry in a ticket thread. Threads are append-only.
type Interaction struct {
	Author    string
	Message   string
	Timestamp string
}

// FromAttendant reports whether the entry was written by an attendant.
func (i Interaction) FromAttendant() bool {
	return i.Author == AttendantAuthor
}
