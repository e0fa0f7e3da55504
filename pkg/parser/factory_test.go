package parser

import (
	"errors"
	"testing"
)

func TestDefaultFactory_Create(t *testing.T) {
	path := writeFile(t, "input.csv", "ID,Name,Age,Salary\n1,Kirsty Jacobson,23,\"10,000\"\n")

	fileParser, err := DefaultFactory{}.Create(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	parsers := fileParser.LineParser().ValueParsers()
	if len(parsers) != 4 {
		t.Fatalf("sniffed %d columns, want 4", len(parsers))
	}

	wantNumber := []bool{true, false, true, true}
	for i, vp := range parsers {
		_, isNumber := vp.(*NumberParser)
		if isNumber != wantNumber[i] {
			t.Errorf("column %d: number = %v, want %v", i+1, isNumber, wantNumber[i])
		}
	}
}

func TestDefaultFactory_Create_NoDataLine(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "header only", content: "ID,Name\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "input.csv", tt.content)
			_, err := DefaultFactory{}.Create(path, DefaultOptions())
			if !errors.Is(err, ErrNoColumns) {
				t.Errorf("Create() error = %v, want ErrNoColumns", err)
			}
		})
	}
}

func TestSniffValueParsers_BlankFirstLine(t *testing.T) {
	if parsers := SniffValueParsers(nil); len(parsers) != 0 {
		t.Errorf("SniffValueParsers(nil) = %d parsers, want 0", len(parsers))
	}
}
