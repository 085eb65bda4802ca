package cmdtypes

// Mode identifies an operational mode of the shell. Commands may be
// restricted to an allow-list of modes or excluded from a deny-list;
// enforcement happens in the dispatcher, not here.
type Mode string

const (
	ModeNormal      Mode = "normal"
	ModeInsert      Mode = "insert"
	ModeCommand     Mode = "command"
	ModeHint        Mode = "hint"
	ModePassthrough Mode = "passthrough"
)
