// Package builtin declares the built-in command surface of modshell.
// Every command registers itself with the global registry at import
// time; execution and argument parsing live outside this module, so
// the handlers here only record their invocation.
package builtin

import (
	"modshell/internal/commands"
	"modshell/internal/logger"
	"modshell/pkg/cmdtypes"
)

func openView(args []string, count int) error {
	logger.CommandInvocation("open", args, count)
	return nil
}

func reloadView(args []string, count int) error {
	logger.CommandInvocation("reload", args, count)
	return nil
}

func back(args []string, count int) error {
	logger.CommandInvocation("back", args, count)
	return nil
}

func forward(args []string, count int) error {
	logger.CommandInvocation("forward", args, count)
	return nil
}

func init() {
	commands.MustRegister(cmdtypes.Signature{
		Name: "open",
		Doc:  "Open a URL in the current view.",
		Params: []cmdtypes.Param{
			{Name: "url"},
			{Name: "count", HasDefault: true},
		},
	}, openView,
		commands.WithMaxSplit(cmdtypes.NoSplit),
		commands.WithCompletion("url"),
	)

	commands.MustRegister(cmdtypes.Signature{
		Name: "reload",
		Doc:  "Reload the current view.",
		Params: []cmdtypes.Param{
			{Name: "force", HasDefault: true},
		},
	}, reloadView)

	commands.MustRegister(cmdtypes.Signature{
		Name: "back",
		Doc:  "Go back in history.",
		Params: []cmdtypes.Param{
			{Name: "count", HasDefault: true},
		},
	}, back)

	commands.MustRegister(cmdtypes.Signature{
		Name: "forward",
		Doc:  "Go forward in history.",
		Params: []cmdtypes.Param{
			{Name: "count", HasDefault: true},
		},
	}, forward)
}
