package builtin

import (
	"modshell/internal/commands"
	"modshell/internal/logger"
	"modshell/pkg/cmdtypes"
)

func tabFocus(args []string, count int) error {
	logger.CommandInvocation("tab-focus", args, count)
	return nil
}

func tabClose(args []string, count int) error {
	logger.CommandInvocation("tab-close", args, count)
	return nil
}

func search(args []string, count int) error {
	logger.CommandInvocation("search", args, count)
	return nil
}

func init() {
	// Tab handlers run on the tab manager, resolved at dispatch time.
	commands.MustRegister(cmdtypes.Signature{
		Name:     "tabfocus",
		Doc:      "Focus a tab by index.",
		Receiver: true,
		Params: []cmdtypes.Param{
			{Name: "self"},
			{Name: "index", HasDefault: true},
			{Name: "count", HasDefault: true},
		},
	}, tabFocus,
		commands.WithName("tab-focus"),
		commands.WithInstance("tabs.current"),
		commands.WithNArgsShorthand("?"),
	)

	commands.MustRegister(cmdtypes.Signature{
		Name:     "tabclose",
		Doc:      "Close the current tab.",
		Receiver: true,
		Params: []cmdtypes.Param{
			{Name: "self"},
			{Name: "count", HasDefault: true},
		},
	}, tabClose,
		commands.WithName("tab-close"),
		commands.WithInstance("tabs.current"),
	)

	commands.MustRegister(cmdtypes.Signature{
		Name: "search",
		Doc:  "Search for text in the current view.",
		Params: []cmdtypes.Param{
			{Name: "text", HasDefault: true},
		},
	}, search, commands.WithMaxSplit(cmdtypes.NoSplit))
}
