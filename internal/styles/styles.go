// Package styles parses the per-family style listing files shipped alongside
// the workflow JSON. A listing is a plain text "ZCONFIG" document: it carries a
// "#!ZCONFIG" marker line, variable actions of the form "{#NAME}", and style
// actions of the form ">>STYLE NAME", each followed by the (possibly
// multi-line) content it binds.
package styles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"zpack/pkg/types"
)

// Marker identifies a text file as a ZCONFIG style listing.
const Marker = "#!ZCONFIG"

// Listing is the parsed form of one style listing file.
type Listing struct {
	// Vars maps variable names (including their leading '#', e.g. "#OUTPUT")
	// to their expanded content.
	Vars map[string]string
	// Styles in declaration order.
	Styles []types.Style
}

// StyleNames returns the declared style names in order.
func (l *Listing) StyleNames() []string {
	names := make([]string, 0, len(l.Styles))
	for _, s := range l.Styles {
		names = append(names, s.Name)
	}
	return names
}

// Parse reads a ZCONFIG document. It fails if the marker line is absent.
func Parse(r io.Reader) (*Listing, error) {
	l := &Listing{Vars: map[string]string{}}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var action string
	var content strings.Builder
	sawMarker := false

	flush := func() {
		if action != "" {
			l.apply(action, strings.TrimSpace(content.String()))
		}
		// content preceding any action (e.g. after the marker line) is dropped
		action = ""
		content.Reset()
	}

	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "#!"):
			flush()
			if strings.HasPrefix(trimmed, Marker) {
				sawMarker = true
			}
		case strings.HasPrefix(trimmed, "{#") || strings.HasPrefix(trimmed, ">>"):
			flush()
			action = trimmed
		default:
			content.WriteString(strings.TrimRight(line, " \t"))
			content.WriteString("\n")
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read style listing: %w", err)
	}
	flush()

	if !sawMarker {
		return nil, fmt.Errorf("not a ZCONFIG document (missing %s marker)", Marker)
	}
	return l, nil
}

// ParseFile parses the style listing at path.
func ParseFile(path string) (*Listing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	l, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return l, nil
}

func (l *Listing) apply(action, content string) {
	content = l.expand(content)
	switch {
	case strings.HasPrefix(action, "{#"):
		// "{#NAME}" binds a variable; the stored key keeps the '#'.
		name := strings.TrimSuffix(strings.TrimPrefix(action, "{"), "}")
		l.Vars[strings.TrimSpace(name)] = content
	case strings.HasPrefix(action, ">>"):
		name := strings.TrimSpace(strings.TrimPrefix(action, ">>"))
		l.Styles = append(l.Styles, types.Style{Name: name, Prompt: content})
	}
}

// expand substitutes previously bound "{#NAME}" placeholders in content.
func (l *Listing) expand(content string) string {
	if !strings.Contains(content, "{#") {
		return content
	}
	for name, val := range l.Vars {
		content = strings.ReplaceAll(content, "{"+name+"}", val)
	}
	return content
}
