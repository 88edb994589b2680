package activity

// Status is the lifecycle state of an activity. The literals are the values
// the database check constraint enforces, not display strings.
type Status string

const (
	StatusOpen    Status = "Abierta"
	StatusClosed  Status = "Cerrada"
	StatusLate    Status = "Atrasada"
	StatusBlocked Status = "Bloqueado"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusClosed, StatusLate, StatusBlocked:
		return true
	}
	return false
}

// Terminal reports whether the state closes the business lifecycle. Closed
// records are still only deleted by explicit administrative action.
func (s Status) Terminal() bool {
	return s == StatusClosed
}
