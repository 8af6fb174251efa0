// apps/go-solver/internal/ui/terminal.go
//
// Line-oriented terminal front end for a solver session.
// Renders the key once, then per round the number of remaining candidates
// and either every candidate (10 or fewer) or just the next guess.
// Feedback codes are drawn as coloured tiles with lipgloss. Styles are bound
// to a renderer for the terminal's own writer, so colours are dropped
// whenever that writer is not a terminal.

package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// listLimit is the candidate count at or below which every candidate is shown.
const listLimit = 10

// styles is the palette for one output.
type styles struct {
	title lipgloss.Style
	err   lipgloss.Style
	tiles map[rune]lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	tile := r.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF"))
	return styles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		err:   r.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		tiles: map[rune]lipgloss.Style{
			'G': tile.Background(lipgloss.Color("#538D4E")),
			'Y': tile.Background(lipgloss.Color("#B59F3B")),
			'R': tile.Background(lipgloss.Color("#9B3B3B")),
			'_': tile.Background(lipgloss.Color("#3A3A3C")),
		},
	}
}

// Terminal reads feedback lines from in and writes everything to out.
type Terminal struct {
	in    *bufio.Reader
	out   io.Writer
	style styles
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out, style: newStyles(lipgloss.NewRenderer(out))}
}

// Tiles renders a feedback code as coloured tiles. Unknown characters are
// printed as they are.
func (t *Terminal) Tiles(code string) string {
	parts := make([]string, 0, len(code))
	for _, c := range code {
		if st, ok := t.style.tiles[c]; ok {
			parts = append(parts, st.Render(string(c)))
		} else {
			parts = append(parts, string(c))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Key prints the legend of feedback codes.
func (t *Terminal) Key() {
	rows := []struct{ code, meaning string }{
		{"GGGGG", "Complete"},
		{"__GR_", "Letter 4 repeats an already scored letter (e.g. 'green')"},
		{"__G__", "Letter 3 is correct"},
		{"__Y__", "Letter 3 is in the word but in the wrong place"},
		{"_____", "All letters incorrect"},
	}
	fmt.Fprintln(t.out, t.style.title.Render("===== Key ====="))
	for _, r := range rows {
		fmt.Fprintf(t.out, "%s => %s\n", t.Tiles(r.code), r.meaning)
	}
	fmt.Fprintf(t.out, "ERROR => Word suggestion invalid\n")
}

// Present prints the remaining count and the candidates or the next guess.
func (t *Terminal) Present(guess string, candidates []string) {
	fmt.Fprintf(t.out, "Possibilities: %d\n", len(candidates))
	if len(candidates) <= listLimit {
		fmt.Fprintf(t.out, "[%s]\n", strings.Join(candidates, ", "))
	}
	fmt.Fprintf(t.out, "Guess: %s\n", guess)
}

// Feedback reads one line. A final line without a newline is still returned;
// io.EOF is returned only when nothing was read.
func (t *Terminal) Feedback() (string, error) {
	fmt.Fprint(t.out, "> ")
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

// Reject reports feedback that could not be applied.
func (t *Terminal) Reject(err error) {
	fmt.Fprintln(t.out, t.style.err.Render("Could not read feedback: "+err.Error()))
}

// Round prints one refereed round (used by self-play).
func (t *Terminal) Round(n int, guess, code string, remaining int) {
	fmt.Fprintf(t.out, "%2d. %s %s  (%d left)\n", n, strings.ToUpper(guess), t.Tiles(code), remaining)
}

// Solved announces the answer.
func (t *Terminal) Solved(word string) {
	fmt.Fprintf(t.out, "Solved: %s\n", word)
}

// Exhausted reports that no dictionary word fits the feedback.
func (t *Terminal) Exhausted() {
	fmt.Fprintln(t.out, "Word list exhausted. No dictionary word matches the feedback.")
}
