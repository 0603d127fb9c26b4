package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"passforge/pkg/config"
	"passforge/pkg/generator"
	"passforge/pkg/logging"
	"passforge/pkg/passlog"
)

var (
	success = color.New(color.FgGreen).SprintFunc()
	fail    = color.New(color.FgRed).SprintFunc()
	info    = color.New(color.FgCyan).SprintFunc()
)

const stressCount = 1000

func buildGenerator(cfg config.Config) (*generator.Generator, error) {
	return generator.New(generator.Config{
		WordlistPath:  cfg.WordlistPath,
		WordlistLimit: cfg.WordlistLimit,
		MemorableLog:  passlog.New(cfg.MemorableLogPath()),
		RandomLog:     passlog.New(cfg.RandomLogPath()),
	})
}

func runMemorable(cfg config.Config, nWords int, caseMode string, noDigit bool) error {
	mode, err := generator.ParseCase(caseMode)
	if err != nil {
		return err
	}

	gen, err := buildGenerator(cfg)
	if err != nil {
		return err
	}

	pwd, err := gen.Memorable(generator.MemorableOptions{
		Words:     nWords,
		Case:      mode,
		AddDigits: !noDigit,
	})
	if err != nil {
		return err
	}

	fmt.Println(pwd)
	return nil
}

func runRandom(cfg config.Config, length int, noPunct bool, forbidden string) error {
	gen, err := buildGenerator(cfg)
	if err != nil {
		return err
	}

	pwd, err := gen.Random(generator.RandomOptions{
		Length:       length,
		IncludePunct: !noPunct,
		Forbidden:    forbidden,
	})
	if err != nil {
		return err
	}

	fmt.Println(pwd)
	return nil
}

func runStress(cfg config.Config) error {
	gen, err := buildGenerator(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("%s Starting stress run...\n", info("🚀"))

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = fmt.Sprintf(" Generating %d mixed passwords...", stressCount)
	s.Start()
	counts, err := gen.Mixed(stressCount)
	s.Stop()
	if err != nil {
		fmt.Printf("%s Stress run failed after %d passwords\n", fail("❌"), counts.Memorable+counts.Random)
		return err
	}

	fmt.Printf("%s Generated %d passwords (%d memorable, %d random)\n",
		success("✓"), counts.Memorable+counts.Random, counts.Memorable, counts.Random)
	return nil
}

// promptMode asks for a mode when the program is started without a
// subcommand, defaulting to memorable with its default parameters.
func promptMode(cfg config.Config) error {
	fmt.Print("Choose mode [memorable/random/stress] (default: memorable): ")

	// On EOF the partial line still counts as the answer.
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')

	choice := strings.ToLower(strings.TrimSpace(line))
	if choice == "" {
		choice = "memorable"
	}

	switch choice {
	case "memorable":
		return runMemorable(cfg, 4, "lower", false)
	case "random":
		return runRandom(cfg, 16, false, "")
	case "stress":
		return runStress(cfg)
	default:
		return fmt.Errorf("invalid choice %q", choice)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logging.New(cfg.LogLevel))

	var (
		nWords    int
		caseMode  string
		noDigit   bool
		length    int
		noPunct   bool
		forbidden string
	)

	rootCmd := &cobra.Command{
		Use:           "passforge",
		Short:         "Generate memorable or random passwords, logged with a timestamp",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return promptMode(cfg)
		},
	}

	memorableCmd := &cobra.Command{
		Use:   "memorable",
		Short: "Generate a password from dictionary words",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMemorable(cfg, nWords, caseMode, noDigit)
		},
	}
	memorableCmd.Flags().IntVar(&nWords, "n_words", 4, "number of words")
	memorableCmd.Flags().StringVar(&caseMode, "case", "lower", "letter case: lower, upper, title, or mixed")
	memorableCmd.Flags().BoolVar(&noDigit, "no_digit", false, "do not append a digit to each word")

	randomCmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a password from random characters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRandom(cfg, length, noPunct, forbidden)
		},
	}
	randomCmd.Flags().IntVar(&length, "length", 16, "length of the password")
	randomCmd.Flags().BoolVar(&noPunct, "no_punct", false, "do not include punctuation characters")
	randomCmd.Flags().StringVar(&forbidden, "forbidden", "", `characters to exclude, e.g. "O0Il|"`)

	stressCmd := &cobra.Command{
		Use:   "stress",
		Short: fmt.Sprintf("Generate %d mixed passwords", stressCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStress(cfg)
		},
	}

	rootCmd.AddCommand(memorableCmd, randomCmd, stressCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
