package builtin

import (
	"modshell/internal/commands"
	"modshell/internal/logger"
	"modshell/pkg/cmdtypes"
)

func scroll(args []string, count int) error {
	logger.CommandInvocation("scroll", args, count)
	return nil
}

func scrollPx(args []string, count int) error {
	logger.CommandInvocation("scroll-px", args, count)
	return nil
}

func init() {
	commands.MustRegister(cmdtypes.Signature{
		Name:     "scroll",
		Doc:      "Scroll the view in the given directions.",
		Params:   []cmdtypes.Param{{Name: "directions"}},
		Variadic: true,
	}, scroll)

	commands.MustRegister(cmdtypes.Signature{
		Name: "scrollpx",
		Doc:  "Scroll the view by a pixel offset.",
		Params: []cmdtypes.Param{
			{Name: "dx"},
			{Name: "dy"},
			{Name: "count", HasDefault: true},
		},
	}, scrollPx, commands.WithName("scroll-px"))
}
