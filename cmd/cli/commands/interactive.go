package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// InteractiveCmd creates the interactive command
func InteractiveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Start an interactive session (load config and connect once, run multiple commands)",
		Long: `Start an interactive session where you can run multiple commands against the same store.
Google Sheets commands authenticate on first use and reuse the token for the rest of the session.
The session will keep running until you type 'exit' or 'quit'.

Type 'help' to see available commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("\n🚀 Starting interactive session...")
			fmt.Println("Type 'help' for available commands, 'exit' or 'quit' to leave")

			return runSession(cmd.Parent(), os.Stdin)
		},
	}
}

// runSession reads commands line by line and runs the matching sibling command
func runSession(rootCmd *cobra.Command, in io.Reader) error {
	commands := sessionCommands(rootCmd)
	scanner := bufio.NewScanner(in)

	for {
		fmt.Print("> ")

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts, err := parseCommandLine(line)
		if err != nil {
			fmt.Printf("❌ Error parsing command: %v\n\n", err)
			continue
		}
		if len(parts) == 0 {
			continue
		}
		cmdName, cmdArgs := parts[0], parts[1:]

		switch cmdName {
		case "exit", "quit":
			fmt.Println("👋 Goodbye!")
			return nil
		case "help":
			printInteractiveHelp(commands)
			continue
		}

		targetCmd, exists := commands[cmdName]
		if !exists {
			fmt.Printf("❌ Unknown command: %s (type 'help' for available commands)\n\n", cmdName)
			continue
		}

		if err := runSessionCommand(targetCmd, cmdArgs); err != nil {
			fmt.Printf("❌ Error: %v\n\n", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	return nil
}

func sessionCommands(rootCmd *cobra.Command) map[string]*cobra.Command {
	commands := make(map[string]*cobra.Command)
	for _, subCmd := range rootCmd.Commands() {
		switch subCmd.Name() {
		case "interactive", "completion", "help":
			continue
		}
		commands[subCmd.Name()] = subCmd
	}
	return commands
}

// runSessionCommand calls the command's RunE directly so the root PersistentPreRunE
// (config, logger and store setup) is not repeated
func runSessionCommand(targetCmd *cobra.Command, args []string) error {
	targetCmd.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
		_ = flag.Value.Set(flag.DefValue)
	})

	if err := targetCmd.ParseFlags(args); err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}

	args = targetCmd.Flags().Args()
	if targetCmd.Args != nil {
		if err := targetCmd.Args(targetCmd, args); err != nil {
			return err
		}
	}

	if targetCmd.RunE != nil {
		return targetCmd.RunE(targetCmd, args)
	}
	if targetCmd.Run != nil {
		targetCmd.Run(targetCmd, args)
	}
	return nil
}

func printInteractiveHelp(commands map[string]*cobra.Command) {
	fmt.Println("\nAvailable commands:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		cmd := commands[name]
		fmt.Printf("  %-40s %s\n", cmd.Use, cmd.Short)
	}

	fmt.Printf("\n  %-40s %s\n", "help", "Show this help message")
	fmt.Printf("  %-40s %s\n\n", "exit, quit", "Exit the interactive session")
}

// parseCommandLine splits a command line into arguments, respecting single and double quotes
func parseCommandLine(line string) ([]string, error) {
	var args []string
	var current strings.Builder
	var inQuote rune
	quoted := false

	for _, r := range line {
		switch {
		case inQuote != 0:
			if r == inQuote {
				inQuote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			inQuote = r
			quoted = true
		case unicode.IsSpace(r):
			if current.Len() > 0 || quoted {
				args = append(args, current.String())
				current.Reset()
				quoted = false
			}
		default:
			current.WriteRune(r)
		}
	}

	if inQuote != 0 {
		return nil, fmt.Errorf("unclosed quote: %c", inQuote)
	}

	if current.Len() > 0 || quoted {
		args = append(args, current.String())
	}

	return args, nil
}
