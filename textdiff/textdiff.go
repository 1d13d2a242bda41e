// Package textdiff compares renderings of two versions of a tree.
package textdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int8

const (
	Equal Op = iota
	Delete
	Insert
)

func (op Op) String() string {
	switch op {
	case Equal:
		return "="
	case Delete:
		return "-"
	case Insert:
		return "+"
	}
	return fmt.Sprintf("Op(%d)", int8(op))
}

// Edit is one run of a diff.
type Edit struct {
	Op   Op
	Text string
}

// Diff returns the character level edits turning a into b, cleaned up to
// align with word boundaries where possible.
func Diff(a, b string) []Edit {
	dmp := diffpatch.New()
	multiLine := strings.Contains(a, "\n") && strings.Contains(b, "\n")
	diffs := dmp.DiffMain(a, b, multiLine)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return edits(diffs)
}

// Lines returns the line level edits turning a into b.
func Lines(a, b string) []Edit {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(ca, cb, false)
	return edits(dmp.DiffCharsToLines(diffs, lines))
}

func edits(diffs []diffpatch.Diff) []Edit {
	res := make([]Edit, 0, len(diffs))
	for i := range diffs {
		diff := &diffs[i]
		var op Op
		switch diff.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		default:
			op = Equal
		}
		res = append(res, Edit{Op: op, Text: diff.Text})
	}
	return res
}

// Changed reports whether any edit is not Equal.
func Changed(es []Edit) bool {
	for _, e := range es {
		if e.Op != Equal {
			return true
		}
	}
	return false
}

// Write writes a line diff of a and b to w: unchanged lines are prefixed
// with a space, removed ones with "-" and added ones with "+". With
// colors, removed lines are red and added ones green.
func Write(w io.Writer, a, b string, colors bool) error {
	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	if colors {
		del.EnableColor()
		ins.EnableColor()
	} else {
		del.DisableColor()
		ins.DisableColor()
	}
	for _, e := range Lines(a, b) {
		for _, line := range splitLines(e.Text) {
			var err error
			switch e.Op {
			case Delete:
				_, err = del.Fprintf(w, "-%s", line)
			case Insert:
				_, err = ins.Fprintf(w, "+%s", line)
			default:
				_, err = fmt.Fprintf(w, " %s", line)
			}
			if err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// splitLines splits s into lines without their terminating newlines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
