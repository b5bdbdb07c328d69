package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const bannerTitle = "SpiderMonkey Interactive JavaScript Shell (Demo Mode)"

// styles are bound to the session's writer, so non-terminal output stays plain.
type styles struct {
	// title for the banner heading
	title lipgloss.Style

	// dim for muted notes
	dim lipgloss.Style

	// heading for help sections
	heading lipgloss.Style

	// errorLabel for the "Error:" prefix
	errorLabel lipgloss.Style

	// name for variable names in listings
	name lipgloss.Style
}

func newStyles(w io.Writer, noColor bool) styles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208")),
		dim: r.NewStyle().
			Foreground(lipgloss.Color("240")),
		heading: r.NewStyle().
			Bold(true),
		errorLabel: r.NewStyle().
			Foreground(lipgloss.Color("196")),
		name: r.NewStyle().
			Foreground(lipgloss.Color("81")),
	}
}

// formatBanner renders the startup banner
func formatBanner(w io.Writer, st styles) {
	fmt.Fprintln(w, st.title.Render(bannerTitle))
	fmt.Fprintln(w, strings.Repeat("=", len(bannerTitle)))
	fmt.Fprintln(w, "Type expressions to evaluate. Use 'help' for commands.")
	fmt.Fprintln(w, st.dim.Render("Note: This is a demonstration - install SpiderMonkey for full JS support."))
	fmt.Fprintln(w)
}

// formatPrompt returns the prompt for line n, without a newline
func formatPrompt(n int) string {
	return fmt.Sprintf("js:%d> ", n)
}

// formatHelp renders the command list and expression examples
func formatHelp(w io.Writer, st styles) {
	fmt.Fprintln(w, st.heading.Render("Interactive Shell Commands:"))
	fmt.Fprintln(w, "  help - Show this help message")
	fmt.Fprintln(w, "  clear - Clear the screen")
	fmt.Fprintln(w, "  vars - Show defined variables")
	fmt.Fprintln(w, "  version - Show SpiderMonkey version")
	fmt.Fprintln(w, "  gc - Force garbage collection (simulated)")
	fmt.Fprintln(w, "  exit, quit - Exit the shell")
	fmt.Fprintln(w)
	fmt.Fprintln(w, st.heading.Render("Expression Examples (Demo Mode):"))
	for _, ex := range []string{
		"2 + 3",
		"2 + 3 * 4",
		"Math.PI",
		"Math.sqrt(16)",
		"Math.pow(2, 8)",
		"x = 42",
		"x",
	} {
		fmt.Fprintf(w, "  %s\n", ex)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, st.dim.Render("Note: This is a demonstration shell."))
	fmt.Fprintln(w, st.dim.Render("Install SpiderMonkey library for full JavaScript support."))
}

// FormatVariables writes the vars listing without styling
func FormatVariables(w io.Writer, vars []Variable) {
	formatVariables(w, newStyles(w, true), vars)
}

func formatVariables(w io.Writer, st styles, vars []Variable) {
	if len(vars) == 0 {
		fmt.Fprintln(w, NoVariables)
		return
	}

	fmt.Fprintln(w, "Defined variables:")
	for _, v := range vars {
		fmt.Fprintf(w, "  %s = %s\n", st.name.Render(v.Name), FormatNumber(v.Value))
	}
}

// formatEvalError writes the recognition failure diagnostic
func formatEvalError(w io.Writer, st styles) {
	fmt.Fprintf(w, "%s Cannot evaluate expression\n", st.errorLabel.Render("Error:"))
}
