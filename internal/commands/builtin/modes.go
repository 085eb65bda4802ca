package builtin

import (
	"modshell/internal/commands"
	"modshell/internal/logger"
	"modshell/pkg/cmdtypes"
)

func enterInsert(args []string, count int) error {
	logger.CommandInvocation("enter-insert", args, count)
	return nil
}

func leaveMode(args []string, count int) error {
	logger.CommandInvocation("leave-mode", args, count)
	return nil
}

func init() {
	commands.MustRegister(cmdtypes.Signature{
		Name: "enterinsert",
		Doc:  "Enter insert mode.",
	}, enterInsert,
		commands.WithName("enter-insert"),
		commands.InModes(cmdtypes.ModeNormal),
	)

	// Bound to key mappings only, hence hidden from listings.
	commands.MustRegister(cmdtypes.Signature{
		Name: "leavemode",
		Doc:  "Leave the current non-normal mode.",
	}, leaveMode,
		commands.WithName("leave-mode"),
		commands.Hidden(),
		commands.NotInModes(cmdtypes.ModeNormal),
	)
}
