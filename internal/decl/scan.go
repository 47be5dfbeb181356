package decl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	classPattern  = regexp.MustCompile(`^\s*public (static |)(abstract |)class\s+(\S+)\s+.*`)
	memberPattern = regexp.MustCompile(`^\s*(public|private)\s+(\S+)\s+(\S+);.*`)
)

// Scan reads r line by line and collects the class name and fields.
// Member lines are checked first; when several class lines are present the
// last one wins. Lines have no length limit.
func Scan(r io.Reader) (*Declaration, error) {
	d := &Declaration{}
	br := bufio.NewReader(r)

	for {
		line, err := br.ReadString('\n')
		if line != "" {
			d.scanLine(strings.TrimRight(line, "\r\n"))
		}

		if errors.Is(err, io.EOF) {
			return d, nil
		}

		if err != nil {
			return nil, fmt.Errorf("reading declaration: %w", err)
		}
	}
}

func (d *Declaration) scanLine(line string) {
	if f, ok := ParseField(line); ok {
		d.Fields = append(d.Fields, f)
		return
	}

	if name, ok := ParseClassName(line); ok {
		d.ClassName = name
	}
}

// ParseField matches a "visibility type name;" line.
func ParseField(line string) (Field, bool) {
	m := memberPattern.FindStringSubmatch(line)
	if m == nil {
		return Field{}, false
	}

	return Field{Type: m[2], Name: m[3]}, true
}

// ParseClassName matches a public class declaration line.
func ParseClassName(line string) (string, bool) {
	m := classPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}

	return m[3], true
}
