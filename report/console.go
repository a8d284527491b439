package report

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Field names a part of a console line, for coloring.
type Field int

// Fields of a console line.
const (
	WordField Field = iota
	CountField
	PeopleField
)

// Config holds parameters for console output.
type Config struct {
	LineWidth int            // lines are cut to this many en, people lists are elided
	Context   *uax11.Context // context for display widths; defaults to uax11.LatinContext
}

// Console prints records with one line per word, like
//
//	cat    (2 people, 3 occurrences): Aaron Berta
//
// The word column is padded to the widest word, measured in display width,
// so CJK or emoji words line up with Latin ones.
type Console struct {
	Out    io.Writer
	config *Config
	colors map[Field]*color.Color
}

var setupGraphemes sync.Once

// NewConsole creates a console printer writing to out. If config is nil, a
// config is derived from the terminal properties. colors maps fields to
// colors and may be nil for a default palette.
func NewConsole(out io.Writer, config *Config, colors map[Field]*color.Color) *Console {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if out == nil {
		out = os.Stdout
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	if colors == nil {
		colors = makeDefaultPalette()
	}
	return &Console{Out: out, config: config, colors: colors}
}

func makeDefaultPalette() map[Field]*color.Color {
	return map[Field]*color.Color{
		WordField:  color.New(color.FgBlue, color.Bold),
		CountField: color.New(color.FgRed),
	}
}

// Print outputs all records.
func (c *Console) Print(records []Record) error {
	wordwidth := 0
	for _, r := range records {
		wordwidth = max(wordwidth, c.width(displayWord(r)))
	}
	for _, r := range records {
		if err := c.printLine(r, wordwidth); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) printLine(r Record, wordwidth int) error {
	word := displayWord(r)
	pad := strings.Repeat(" ", wordwidth-c.width(word))
	counts := fmt.Sprintf("(%d %s, %d %s):", r.NumPeople, plural(r.NumPeople, "person", "people"),
		r.Count, plural(r.Count, "occurrence", "occurrences"))
	people := strings.Join(r.People, " ")
	if c.config.LineWidth > 0 {
		used := wordwidth + 1 + c.width(counts) + 1
		people = c.elide(r.People, c.config.LineWidth-used)
	}
	var err error
	write := func(f Field, s string) {
		if err != nil {
			return
		}
		if col, ok := c.colors[f]; ok {
			_, err = col.Fprint(c.Out, s)
			return
		}
		_, err = io.WriteString(c.Out, s)
	}
	write(WordField, word)
	write(-1, pad+" ")
	write(CountField, counts)
	if people != "" {
		write(-1, " ")
		write(PeopleField, people)
	}
	write(-1, "\n")
	return err
}

// elide joins names until room (in en) is used up, then appends "…".
// With no room left, only "…" remains.
func (c *Console) elide(names []string, room int) string {
	var b strings.Builder
	used := 0
	for i, name := range names {
		w := c.width(name)
		if i > 0 {
			w++
		}
		if used+w > room {
			if i == 0 {
				return "…"
			}
			b.WriteString(" …")
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(name)
		used += w
	}
	return b.String()
}

// width is the display width of s in en. ASCII runs are one en per byte;
// uax11 would measure digits as wide in some contexts.
func (c *Console) width(s string) int {
	w, start := 0, -1
	for i := 0; i < len(s); i++ {
		if s[i] < utf8.RuneSelf {
			if start >= 0 {
				w += c.wideWidth(s[start:i])
				start = -1
			}
			w++
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		w += c.wideWidth(s[start:])
	}
	return w
}

func (c *Console) wideWidth(s string) int {
	return uax11.StringWidth(grapheme.StringFromString(s), c.config.Context)
}

// displayWord quotes phrases, i.e. words containing a space.
func displayWord(r Record) string {
	if strings.ContainsRune(r.Word, ' ') {
		return "\"" + r.Word + "\""
	}
	return r.Word
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a console Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. A line width of 0
// disables eliding.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 80
		} else if w > 30 {
			config.LineWidth = w - 2
		} else {
			config.LineWidth = 30
		}
	}
	config.Context = uax11.ContextFromEnvironment()
	tracer().P("report", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
