package encode

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/signadot/syntree/format"
	"github.com/signadot/syntree/parse"
	"github.com/signadot/syntree/red"
)

func mustRoot(t *testing.T, in string) *red.Node {
	t.Helper()
	g, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	return red.NewRoot(g)
}

func TestEncodeText(t *testing.T) {
	root := mustRoot(t, "{a: 1}")
	var buf bytes.Buffer
	if err := Encode(root, &buf); err != nil {
		t.Fatal(err)
	}
	want := `Document@0..6
  Object@0..6
    LCurl@0..1 "{"
    Field@1..5
      Literal@1..2 "a"
      Colon@2..3 ":"
      Whitespace@3..4 " "
      Number@4..5 "1"
    RCurl@5..6 "}"
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("text dump (-want +got):\n%s", diff)
	}
}

func TestEncodeDepthAndTrivia(t *testing.T) {
	root := mustRoot(t, "[x y]")
	var buf bytes.Buffer
	if err := Encode(root, &buf, EncodeDepth(1)); err != nil {
		t.Fatal(err)
	}
	if want := "Document@0..5\n  Array@0..5\n"; buf.String() != want {
		t.Errorf("depth 1 dump = %q, want %q", buf.String(), want)
	}
	buf.Reset()
	if err := Encode(root, &buf, EncodeTrivia(false)); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "Whitespace") {
		t.Errorf("trivia dumped:\n%s", buf.String())
	}
}

func TestEncodeJSON(t *testing.T) {
	root := mustRoot(t, "[x]")
	var buf bytes.Buffer
	if err := Encode(root, &buf, EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	var got Dump
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	str := func(s string) *string { return &s }
	want := Dump{Kind: "Document", Start: 0, End: 3, Children: []*Dump{
		{Kind: "Array", Start: 0, End: 3, Children: []*Dump{
			{Kind: "LSquare", Start: 0, End: 1, Text: str("[")},
			{Kind: "Literal", Start: 1, End: 2, Text: str("x")},
			{Kind: "RSquare", Start: 2, End: 3, Text: str("]")},
		}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("json dump (-want +got):\n%s", diff)
	}
}

func TestEncodeYAML(t *testing.T) {
	root := mustRoot(t, "a")
	var buf bytes.Buffer
	if err := Encode(root, &buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"kind: Document", "kind: Literal", "text: a", "end: 1"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("yaml dump missing %q:\n%s", want, buf.String())
		}
	}
}

func TestEncodeColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	root := mustRoot(t, `"%d"`)
	var buf bytes.Buffer
	if err := Encode(root, &buf, EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("no color escapes in %q", buf.String())
	}
	if !strings.Contains(buf.String(), `%d`) {
		t.Errorf("percent verb mangled in %q", buf.String())
	}
}
