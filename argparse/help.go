package argparse

import (
	"strings"
)

// Help returns the usage text: a banner, the optional description and one
// line per argument in registration order.
func (p *Parser) Help() string {
	var b strings.Builder

	b.WriteString("Usage: ")
	b.WriteString(p.program)
	b.WriteString(" [OPTIONS]\n")

	if p.description != "" {
		b.WriteString("\n")
		b.WriteString(p.description)
		b.WriteString("\n")
	}

	b.WriteString("\nOptions:\n")

	// Calculate max display width for alignment
	maxWidth := 0
	for _, arg := range p.args {
		maxWidth = max(maxWidth, len(argumentLabel(arg)))
	}

	for _, arg := range p.args {
		label := argumentLabel(arg)
		b.WriteString(label)

		details := argumentDetails(arg)
		if details != "" {
			// Add padding to align descriptions
			b.WriteString(strings.Repeat(" ", maxWidth-len(label)))
			b.WriteString("\t")
			b.WriteString(details)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// argumentLabel renders "  --name, -alias" for one argument
func argumentLabel(arg *Argument) string {
	var b strings.Builder
	b.WriteString("  --")
	b.WriteString(arg.name)
	for _, alias := range arg.aliases {
		b.WriteString(", -")
		b.WriteString(alias)
	}
	return b.String()
}

// argumentDetails renders the help text followed by default, choices and
// required markers
func argumentDetails(arg *Argument) string {
	parts := make([]string, 0, 4)

	if arg.help != "" {
		parts = append(parts, arg.help)
	}

	if arg.defaultSet || arg.flag {
		parts = append(parts, "[default: "+arg.defaultVal.String()+"]")
	}

	if len(arg.choices) > 0 {
		parts = append(parts, "(choices: "+strings.Join(arg.choices, ", ")+")")
	}

	if arg.required {
		parts = append(parts, "(required)")
	}

	return strings.Join(parts, " ")
}
