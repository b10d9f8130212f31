package libdiff

const (
	EqualPrefix  = " "
	InsertPrefix = "+"
	DeletePrefix = "-"
)
