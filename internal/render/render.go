package render

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/Zuo-Peng/launcher-plugins/internal/item"
)

const (
	colorReset   = "\033[0m"
	colorTitle   = "\033[1;34m" // bold blue
	colorAction  = "\033[1;32m" // bold green
	colorAttr    = "\033[2;3m"  // dim italic for grammar annotations
	colorDim     = "\033[2m"
	colorBoldRed = "\033[1;31m" // bold red for keyword highlights
)

type Options struct {
	Width int    // wrap width (0 = no wrap)
	Query string // text to highlight
}

var tagRe = regexp.MustCompile(`<[^>]+>`)

// Plain drops the rich-text markup items carry, e.g. "Hund <small><i>{m}</i></small>" -> "Hund {m}".
func Plain(s string) string {
	return strings.TrimSpace(tagRe.ReplaceAllString(s, ""))
}

// ANSI turns item markup into terminal colors.
func ANSI(s string) string {
	s = strings.ReplaceAll(s, "<small><i>", colorAttr)
	s = strings.ReplaceAll(s, "</i></small>", colorReset)
	return tagRe.ReplaceAllString(s, "")
}

var ansiRe = regexp.MustCompile(`\033\[[0-9;]*m`)

// highlightKeywords wraps case-insensitive matches of query terms in bold red ANSI codes.
// Existing escape sequences are left untouched.
func highlightKeywords(text, query string) string {
	if strings.TrimSpace(query) == "" {
		return text
	}
	var b strings.Builder
	last := 0
	for _, loc := range ansiRe.FindAllStringIndex(text, -1) {
		b.WriteString(highlightPlain(text[last:loc[0]], query))
		b.WriteString(text[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(highlightPlain(text[last:], query))
	return b.String()
}

func highlightPlain(text, query string) string {
	for _, term := range strings.Fields(query) {
		lower := strings.ToLower(term)
		i := 0
		for i < len(text) {
			idx := strings.Index(strings.ToLower(text[i:]), lower)
			if idx < 0 {
				break
			}
			pos := i + idx
			// ToLower may change byte lengths for some runes; stay in bounds
			end := pos + len(term)
			if end > len(text) {
				break
			}
			replacement := colorBoldRed + text[pos:end] + colorReset
			text = text[:pos] + replacement + text[end:]
			i = pos + len(replacement)
		}
	}
	return text
}

// wrapLine breaks a single line into multiple lines that fit within maxWidth
// visible columns, correctly skipping ANSI escape sequences when measuring width.
func wrapLine(line string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{line}
	}

	var result []string
	var cur strings.Builder
	visW := 0

	i := 0
	for i < len(line) {
		// check for ANSI escape sequence: ESC[ ... m
		if i+1 < len(line) && line[i] == '\033' && line[i+1] == '[' {
			j := i + 2
			for j < len(line) && line[j] != 'm' {
				j++
			}
			if j < len(line) {
				j++ // include 'm'
			}
			cur.WriteString(line[i:j])
			i = j
			continue
		}

		r, size := utf8.DecodeRuneInString(line[i:])
		rw := runewidth.RuneWidth(r)

		if visW+rw > maxWidth {
			result = append(result, cur.String())
			cur.Reset()
			visW = 0
		}

		cur.WriteRune(r)
		visW += rw
		i += size
	}

	if cur.Len() > 0 {
		result = append(result, cur.String())
	}

	if len(result) == 0 {
		return []string{""}
	}
	return result
}

// Item renders the detail view of one result: texts, icon, completion and actions.
func Item(it item.Item, opts Options) string {
	var b strings.Builder
	writeLine := func(s string) {
		for _, wl := range wrapLine(s, opts.Width) {
			b.WriteString(wl)
			b.WriteString("\n")
		}
	}

	writeLine(colorTitle + highlightKeywords(ANSI(it.Text), opts.Query) + colorReset)
	if it.Subtext != "" {
		writeLine("  " + highlightKeywords(ANSI(it.Subtext), opts.Query))
	}
	writeLine("")

	if it.Icon != "" {
		writeLine(fmt.Sprintf("%sicon%s        %s", colorDim, colorReset, it.Icon))
	}
	if it.Completion != "" {
		writeLine(fmt.Sprintf("%scompletion%s  %s", colorDim, colorReset, it.Completion))
	}

	if len(it.Actions) == 0 {
		return b.String()
	}
	writeLine("")
	for i, a := range it.Actions {
		writeLine(fmt.Sprintf("%s[%d] %s%s", colorAction, i, a.Label, colorReset))
		writeLine(fmt.Sprintf("    %s%s: %s%s", colorDim, a.Kind, a.Payload(), colorReset))
	}
	return b.String()
}
