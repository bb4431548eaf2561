package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-hsc/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	showPos  bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a script file or expression",
	Long: `Tokenize (lex) a script source and print the resulting tokens.

This command is useful for debugging the tokenizer and understanding how
source code is split into tokens.

Examples:
  # Tokenize a script file
  hsc lex mission.hsc

  # Tokenize an inline expression
  hsc lex -e "(global short x 5)"

  # Show token positions
  hsc lex --show-pos mission.hsc`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
}

func lexScript(cmd *cobra.Command, args []string) error {
	var input []byte
	var filename string

	if evalExpr != "" {
		input = []byte(evalExpr)
		filename = "<eval>"
	} else if len(args) == 1 {
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = content
	} else {
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	verbose, _ := cmd.Flags().GetBool("verbose")

	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	tokens, lexErr := lexer.Tokenize(input, 0)
	if lexErr != nil {
		lexErr.File = filename
		fmt.Fprintln(os.Stderr, lexErr.Format(string(input), true))
		return fmt.Errorf("tokenization failed")
	}

	for _, tok := range tokens {
		printToken(tok)
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", len(tokens))
	}

	return nil
}

func printToken(tok lexer.Token) {
	var output string

	switch tok.Parenthesis {
	case 1:
		output = "[open ] ("
	case -1:
		output = "[close] )"
	default:
		output = fmt.Sprintf("[word ] %q", tok.Value)
	}

	if showPos {
		output += fmt.Sprintf(" @%d:%d", tok.Line, tok.Column)
	}

	fmt.Println(output)
}
