package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		opts Options
		want []string
	}{
		{
			name: "empty string",
			raw:  "",
			opts: DefaultOptions(),
			want: nil,
		},
		{
			name: "blank line of spaces",
			raw:  "   ",
			opts: DefaultOptions(),
			want: nil,
		},
		{
			name: "string without the delimiter",
			raw:  "1\t2\t3",
			opts: DefaultOptions(),
			want: []string{"1\t2\t3"},
		},
		{
			name: "plain fields",
			raw:  "1,2,3",
			opts: DefaultOptions(),
			want: []string{"1", "2", "3"},
		},
		{
			name: "tab delimiter",
			raw:  "1\t2\t3",
			opts: Options{Delimiter: '\t', Quote: '"'},
			want: []string{"1", "2", "3"},
		},
		{
			name: "quoted values",
			raw:  `"John Doe","23","10,000"`,
			opts: DefaultOptions(),
			want: []string{"John Doe", "23", "10,000"},
		},
		{
			name: "mixed quoted and unquoted",
			raw:  `John Doe,23,"10,000"`,
			opts: DefaultOptions(),
			want: []string{"John Doe", "23", "10,000"},
		},
		{
			name: "doubled quote is a literal quote",
			raw:  `"say ""hi""",2`,
			opts: DefaultOptions(),
			want: []string{`say "hi"`, "2"},
		},
		{
			name: "surrounding spaces trimmed",
			raw:  "  1 , John Doe ,3",
			opts: DefaultOptions(),
			want: []string{"1", "John Doe", "3"},
		},
		{
			name: "trailing carriage return stripped",
			raw:  "1,2\r",
			opts: DefaultOptions(),
			want: []string{"1", "2"},
		},
		{
			name: "trailing delimiter yields empty field",
			raw:  "1,",
			opts: DefaultOptions(),
			want: []string{"1", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.raw, tt.opts)
			if err != nil {
				t.Fatalf("Split() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplit_UnterminatedQuote(t *testing.T) {
	_, err := Split(`1,"John Doe`, DefaultOptions())
	if !errors.Is(err, ErrUnterminatedQuote) {
		t.Errorf("Split() error = %v, want ErrUnterminatedQuote", err)
	}
}

// A delimiter appearing only inside quoted spans never splits a field.
func TestSplit_DelimiterInsideQuotes(t *testing.T) {
	inputs := []string{
		`"10,000"`,
		`"a,b,c"`,
		`"one,","two"`,
		`x,"1,2,3",y`,
	}

	for _, raw := range inputs {
		fields, err := Split(raw, DefaultOptions())
		if err != nil {
			t.Fatalf("Split(%q) error = %v", raw, err)
		}
		for _, field := range fields {
			if strings.HasPrefix(field, `"`) || strings.HasSuffix(field, `"`) {
				t.Errorf("Split(%q) kept quote characters in field %q", raw, field)
			}
		}
	}

	fields, err := Split(`x,"1,2,3",y`, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"x", "1,2,3", "y"}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Errorf("Split() mismatch (-want +got):\n%s", diff)
	}
}
