package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var addr string

func init() {
	// A missing .env file is fine; the server address has a default.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd.PersistentFlags().StringVar(&addr, "addr", "http://localhost:4000", "base URL of the whodunit server")
	rootCmd.AddCommand(newCaseCmd)
	rootCmd.AddCommand(charactersCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(accuseCmd)
}

var rootCmd = &cobra.Command{
	Use:  "whodunit-cli",
	Long: `Command line client for the whodunit mystery server https://github.com/myrjola/whodunit`,
}

var newCaseCmd = &cobra.Command{
	Use:   "newcase",
	Short: "Generate a fresh mystery case",
	RunE: func(cmd *cobra.Command, _ []string) error {
		kase, err := newClient(addr).generateCase()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "Case: %s\n\nCharacters:\n", kase.Description)
		for _, c := range kase.Characters {
			_, _ = fmt.Fprintf(out, "  %s (%s) - %s\n", c.Name, c.Role, strings.Join(c.Personality, ", "))
		}
		return nil
	},
}

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "List the characters of the active case",
	RunE: func(cmd *cobra.Command, _ []string) error {
		characters, err := newClient(addr).characters()
		if err != nil {
			return err
		}
		for _, c := range characters {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n  Testimony: %s\n", c.Name, c.Role, c.Testimony)
		}
		return nil
	},
}

var askCmd = &cobra.Command{
	Use:   "ask <character> <message...>",
	Short: "Question a character",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		character := args[0]
		message := strings.Join(args[1:], " ")
		reply, err := newClient(addr).converse(character, message)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", character, reply)
		return nil
	},
}

var accuseCmd = &cobra.Command{
	Use:   "accuse <name>",
	Short: "Submit your final suspect guess",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newClient(addr).submitSuspect(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if result.Correct {
			_, _ = fmt.Fprintf(out, "Correct! The suspect was %s.\n", result.ActualSuspect)
			if result.Truth != nil {
				_, _ = fmt.Fprintf(out, "The truth: %s\n", *result.Truth)
			}
			return nil
		}
		_, _ = fmt.Fprintf(out, "Wrong. %s has an alibi that holds up. Keep investigating.\n", result.Guessed)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
