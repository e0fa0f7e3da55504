package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csvmend/csvmend/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate an options file",
		Long: `Validate a csvmend YAML options file without processing anything.

Checks:
  - YAML syntax
  - Delimiter and quote characters
  - Column type declarations
  - Numeric pattern validity`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]

	fmt.Printf("Validating %s...\n", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("\nConfiguration valid!\n")
	fmt.Printf("  Delimiter:    %q\n", cfg.Delimiter)
	fmt.Printf("  Quote:        %q\n", cfg.Quote)
	fmt.Printf("  Header lines: %d\n", cfg.HeaderLines)
	fmt.Printf("  Skip policy:  %v\n", cfg.SkipIncorrectLines)

	if len(cfg.Columns) == 0 {
		fmt.Printf("\nNo columns declared; the layout will be sniffed from input files.\n")
		return nil
	}

	fmt.Printf("\nColumns:\n")
	for i, col := range cfg.Columns {
		colType := col.Type
		if colType == "" {
			colType = config.ColumnString
		}
		name := col.Name
		if name == "" {
			name = fmt.Sprintf("column %d", i+1)
		}
		fmt.Printf("  %d. [%s] %s\n", i+1, colType, name)
	}

	return nil
}
