package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"modshell/internal/commands"
	"modshell/pkg/cmdtypes"
)

var (
	listAll    bool
	listFormat string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered commands",
	Long:  `List the commands in the registration table with their argument bounds.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmds := commands.GlobalRegistry.Visible()
		if listAll {
			cmds = commands.GlobalRegistry.All()
		}

		switch listFormat {
		case "yaml":
			out, err := marshalCommands(cmds)
			if err != nil {
				return err
			}
			cmd.Print(out)
		case "plain":
			cmd.Print(renderList(cmds, styledOutput()))
		default:
			return fmt.Errorf("unknown format %q (want plain or yaml)", listFormat)
		}
		return nil
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe <command>",
	Short: "Show one command in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		record, ok := commands.GlobalRegistry.Get(args[0])
		if !ok {
			return fmt.Errorf("unknown command: %s", args[0])
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			return fmt.Errorf("failed to create renderer: %w", err)
		}
		out, err := renderer.Render(describeMarkdown(record))
		if err != nil {
			return fmt.Errorf("failed to render command help: %w", err)
		}
		cmd.Print(out)
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listAll, "all", false, "Include hidden commands")
	listCmd.Flags().StringVar(&listFormat, "format", "plain", "Output format (plain|yaml)")
}

// styledOutput reports whether the terminal supports styling.
func styledOutput() bool {
	return termenv.EnvColorProfile() != termenv.Ascii
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	hiddenStyle = lipgloss.NewStyle().Faint(true)
)

// renderList formats the command table, one row per record.
func renderList(cmds []*cmdtypes.Command, styled bool) string {
	var b strings.Builder

	nameWidth := len("command")
	arityWidth := len("args")
	for _, c := range cmds {
		if w := len(strings.Join(c.AllNames(), ", ")); w > nameWidth {
			nameWidth = w
		}
		if w := len(formatArity(c)); w > arityWidth {
			arityWidth = w
		}
	}

	header := fmt.Sprintf("%-*s  %-*s  %s", nameWidth, "command", arityWidth, "args", "description")
	if styled {
		header = headerStyle.Render(header)
	}
	b.WriteString(header + "\n")

	for _, c := range cmds {
		names := strings.Join(c.AllNames(), ", ")
		paddedNames := fmt.Sprintf("%-*s", nameWidth, names)
		if styled {
			if c.Hidden {
				paddedNames = hiddenStyle.Render(paddedNames)
			} else {
				paddedNames = nameStyle.Render(paddedNames)
			}
		}
		b.WriteString(fmt.Sprintf("%s  %-*s  %s\n", paddedNames, arityWidth, formatArity(c), c.Description))
	}
	return b.String()
}

// describeMarkdown builds the markdown help page for one record.
func describeMarkdown(c *cmdtypes.Command) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", c.Name)
	if c.Description != "" {
		fmt.Fprintf(&b, "%s.\n\n", c.Description)
	}
	if len(c.Aliases) > 0 {
		fmt.Fprintf(&b, "**Aliases:** %s\n\n", strings.Join(c.Aliases, ", "))
	}
	fmt.Fprintf(&b, "**Arguments:** %s\n\n", formatArity(c))
	if c.SupportsCount {
		b.WriteString("**Count:** supported\n\n")
	}
	fmt.Fprintf(&b, "**Max split:** %s\n\n", formatMaxSplit(c.MaxSplit))
	if len(c.Completion) > 0 {
		fmt.Fprintf(&b, "**Completion:** %s\n\n", strings.Join(c.Completion, ", "))
	}
	if len(c.Modes) > 0 {
		fmt.Fprintf(&b, "**Only in modes:** %s\n\n", joinModes(c.Modes))
	}
	if len(c.NotModes) > 0 {
		fmt.Fprintf(&b, "**Not in modes:** %s\n\n", joinModes(c.NotModes))
	}
	if c.Instance != "" {
		fmt.Fprintf(&b, "**Bound to:** `%s`\n\n", c.Instance)
	}
	if c.Hidden {
		b.WriteString("*Hidden from listings.*\n")
	}
	return b.String()
}

func formatArity(c *cmdtypes.Command) string {
	switch {
	case c.MaxArgs == cmdtypes.Unbounded && c.MinArgs == 0:
		return "any"
	case c.MaxArgs == cmdtypes.Unbounded:
		return fmt.Sprintf("%d+", c.MinArgs)
	case c.MinArgs == c.MaxArgs:
		return strconv.Itoa(c.MinArgs)
	default:
		return fmt.Sprintf("%d-%d", c.MinArgs, c.MaxArgs)
	}
}

func formatMaxSplit(n int) string {
	switch n {
	case cmdtypes.SplitAll:
		return "unlimited"
	case cmdtypes.NoSplit:
		return "none"
	default:
		return strconv.Itoa(n)
	}
}

func joinModes(modes []cmdtypes.Mode) string {
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

func marshalCommands(cmds []*cmdtypes.Command) (string, error) {
	out, err := yaml.Marshal(cmds)
	if err != nil {
		return "", fmt.Errorf("failed to marshal commands: %w", err)
	}
	return string(out), nil
}
