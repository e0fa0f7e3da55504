package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csvmend/csvmend/pkg/parser"
)

// NewSniffCommand creates the sniff command.
func NewSniffCommand() *cobra.Command {
	var (
		delimiter   string
		quote       string
		headerLines int
	)

	cmd := &cobra.Command{
		Use:   "sniff <csv-file>",
		Short: "Infer the column layout of a CSV file",
		Long: `Infer column types from the first data line of a CSV file.

This is the layout the default parser factory would use when processing
the file without a declared column schema.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := parser.DefaultOptions()
			opts.HeaderLines = headerLines
			if delimiter != "" {
				opts.Delimiter = []rune(delimiter)[0]
			}
			if quote != "" {
				opts.Quote = []rune(quote)[0]
			}
			return runSniff(args[0], opts)
		},
	}

	cmd.Flags().StringVar(&delimiter, "delimiter", ",", "Character separating fields")
	cmd.Flags().StringVar(&quote, "quote", `"`, "Character enclosing fields")
	cmd.Flags().IntVar(&headerLines, "header-lines", 1, "Number of header lines to skip")

	return cmd
}

func runSniff(path string, opts parser.Options) error {
	fileParser, err := parser.DefaultFactory{}.Create(path, opts)
	if err != nil {
		return err
	}

	valueParsers := fileParser.LineParser().ValueParsers()

	fmt.Printf("%s: %d column(s)\n", path, len(valueParsers))
	for i, vp := range valueParsers {
		fmt.Printf("  %d. %s\n", i+1, columnType(vp))
	}

	return nil
}

func columnType(vp parser.ValueParser) string {
	switch vp.(type) {
	case *parser.NumberParser:
		return "number"
	case *parser.DateParser:
		return "date"
	case *parser.StringParser:
		return "string"
	default:
		return "echo"
	}
}
