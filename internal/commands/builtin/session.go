package builtin

import (
	"modshell/internal/commands"
	"modshell/internal/logger"
	"modshell/pkg/cmdtypes"
)

func quit(args []string, count int) error {
	logger.CommandInvocation("quit", args, count)
	return nil
}

func saveSession(args []string, count int) error {
	logger.CommandInvocation("session-save", args, count)
	return nil
}

func init() {
	commands.MustRegister(cmdtypes.Signature{
		Name: "quit",
		Doc:  "Quit modshell.",
	}, quit, commands.WithName("q", "quit"))

	commands.MustRegister(cmdtypes.Signature{
		Name: "sessionsave",
		Doc:  "Save the current session under a name.",
		Params: []cmdtypes.Param{
			{Name: "name", HasDefault: true},
		},
	}, saveSession,
		commands.WithName("session-save"),
		commands.WithCompletion("session"),
	)
}
