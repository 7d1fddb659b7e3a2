package newick

import (
	"strconv"
	"strings"

	"github.com/treegraft/treegraft/pkg/forest"
)

// Write serializes a rooted tree to Newick text, terminated by a
// semicolon. Returns ErrUnrooted if no root is declared.
func Write(t *forest.Tree[Label]) (string, error) {
	if !t.IsRooted() {
		return "", ErrUnrooted
	}
	var b strings.Builder
	w := t.Walk()
	for w.Next() {
		v := w.Node()
		if t.IsLeaf(v) {
			// A leaf surfaces all three phases back to back; its single
			// between-children phase is where the label goes.
			if w.Phase() == forest.Between {
				writeLabel(&b, t.Value(v))
			}
			continue
		}
		switch w.Phase() {
		case forest.Enter:
			b.WriteByte('(')
		case forest.Between:
			b.WriteByte(',')
		case forest.Exit:
			b.WriteByte(')')
			writeLabel(&b, t.Value(v))
		}
	}
	b.WriteByte(';')
	return b.String(), nil
}

func writeLabel(b *strings.Builder, l Label) {
	b.WriteString(quoteName(l.Name))
	if l.HasLength {
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(l.Length, 'g', -1, 64))
	}
}

// quoteName wraps a name in single quotes when it contains structural
// characters or whitespace, doubling embedded quotes.
func quoteName(name string) string {
	if !strings.ContainsAny(name, "(),:;' \t\r\n") {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
