package jsx

import (
	"errors"
	"testing"

	"github.com/recera/reactgen/pkg/tree"
)

func TestInlineStyle(t *testing.T) {
	tests := []struct {
		name      string
		rules     []string
		camelCase bool
		want      string
	}{
		{
			name:  "well formed rules keep order",
			rules: []string{"color: red", "margin: 0"},
			want:  "{'color': 'red', 'margin': '0'}",
		},
		{
			name:  "split on first colon only",
			rules: []string{"background: url(http://x/y.png)"},
			want:  "{'background': 'url(http://x/y.png)'}",
		},
		{
			name:  "malformed rules are dropped",
			rules: []string{"invalid", "color:blue"},
			want:  "{'color': 'blue'}",
		},
		{
			name:  "all malformed",
			rules: []string{"invalid"},
			want:  "{}",
		},
		{
			name:  "empty",
			rules: nil,
			want:  "{}",
		},
		{
			name:      "camel case keys",
			rules:     []string{"background-color: #fff"},
			camelCase: true,
			want:      "{'backgroundColor': '#fff'}",
		},
		{
			name:  "hyphenated keys kept by default",
			rules: []string{"  font-size :  12px  "},
			want:  "{'font-size': '12px'}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InlineStyle(tt.rules, tt.camelCase); got != tt.want {
				t.Errorf("InlineStyle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStylesheet(t *testing.T) {
	got := Stylesheet("Foo", []string{"color: red", "margin: 0"})
	want := ".Foo {\n  color: red;\n  margin: 0;\n}"
	if got != want {
		t.Errorf("Stylesheet() = %q, want %q", got, want)
	}

	// Malformed rules are written verbatim
	got = Stylesheet("Card", []string{"invalid"})
	want = ".Card {\n  invalid;\n}"
	if got != want {
		t.Errorf("Stylesheet() = %q, want %q", got, want)
	}

	got = Stylesheet("Empty", nil)
	if got != ".Empty {\n}" {
		t.Errorf("Stylesheet() with no rules = %q", got)
	}
}

func TestCheckRules(t *testing.T) {
	if err := CheckRules([]string{"color: red"}, "pages[0].contents[0]"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := CheckRules([]string{"color: red", "bogus"}, "pages[0].contents[0]")
	var malformed *tree.MalformedStyleError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedStyleError, got %v", err)
	}
	if malformed.Rule != "bogus" || malformed.Path != "pages[0].contents[0]" {
		t.Errorf("unexpected error fields: %+v", malformed)
	}
}
