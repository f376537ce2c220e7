package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/razorlex/internal/logging"
	"github.com/yaklabco/razorlex/internal/ui/pretty"
	"github.com/yaklabco/razorlex/pkg/segment"
)

const (
	replPrompt      = "razorlex> "
	replHistoryFile = ".razorlex_history"
)

const replHelp = `Each line is tokenized with the current language.
Commands:
  :lang html|javascript   switch the tokenizer
  :mode symbols|tree      print symbols or the syntax tree
  :help                   show this help
  :quit                   leave the session
`

// lineReader is the part of liner.State the session uses.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

// scanReader reads lines from a non-terminal input.
type scanReader struct {
	scanner *bufio.Scanner
}

func (r *scanReader) Prompt(string) (string, error) {
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (r *scanReader) AppendHistory(string) {}
func (r *scanReader) Close() error         { return nil }

// replSession holds the state of an interactive session.
type replSession struct {
	out           io.Writer
	styles        *pretty.Styles
	engine        segment.Engine
	validateRegex bool
	tree          bool
}

func newReplCommand() *cobra.Command {
	flags := &languageFlags{}

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Tokenize lines interactively",
		Long: `Start an interactive session that tokenizes each line you type.

Line editing and history are available when stdin is a terminal. Otherwise
lines are read from stdin without prompts.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRepl(cmd, flags)
		},
	}

	addLanguageFlags(cmd, flags)

	return cmd
}

func runRepl(cmd *cobra.Command, flags *languageFlags) error {
	cfg, err := loadConfig(cmd, flags.cliConfig(cmd))
	if err != nil {
		return err
	}

	lang := string(cfg.Language)
	if lang == "" || lang == "auto" {
		lang = segment.LanguageHTML
	}
	engine, err := segment.ForLanguage(lang, cfg.ShouldValidateRegex())
	if err != nil {
		return withExitCode(ExitInvalidUsage, err)
	}

	session := &replSession{
		out:           cmd.OutOrStdout(),
		styles:        stylesFor(cmd),
		engine:        engine,
		validateRegex: cfg.ShouldValidateRegex(),
	}

	reader, interactive := openLineReader(cmd.InOrStdin())
	defer reader.Close()

	prompt := ""
	if interactive {
		prompt = replPrompt
		fmt.Fprintf(session.out, "razorlex %s session; :help for commands\n", engine.Language())
	}

	return session.loop(cmd, reader, prompt)
}

// openLineReader returns a line editor when in is a terminal.
func openLineReader(in io.Reader) (lineReader, bool) {
	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		state := liner.NewLiner()
		state.SetCtrlCAborts(true)
		loadHistory(state)
		return &historyReader{State: state}, true
	}
	return &scanReader{scanner: bufio.NewScanner(in)}, false
}

// historyReader saves the history when the session ends.
type historyReader struct {
	*liner.State
}

func (r *historyReader) Close() error {
	if path := historyPath(); path != "" {
		if f, err := os.Create(path); err == nil {
			_, _ = r.WriteHistory(f)
			_ = f.Close()
		}
	}
	return r.State.Close()
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, replHistoryFile)
}

func loadHistory(state *liner.State) {
	path := historyPath()
	if path == "" {
		return
	}
	if f, err := os.Open(path); err == nil {
		_, _ = state.ReadHistory(f)
		_ = f.Close()
	}
}

func (s *replSession) loop(cmd *cobra.Command, reader lineReader, prompt string) error {
	logger := logging.FromContext(commandContext(cmd))

	for {
		line, err := reader.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil
		}
		if err != nil {
			return withExitCode(ExitIOError, fmt.Errorf("read line: %w", err))
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		reader.AppendHistory(line)

		if strings.HasPrefix(trimmed, ":") {
			if quit := s.command(trimmed); quit {
				return nil
			}
			continue
		}

		s.evaluate(line)
		logger.Debug("evaluated line", logging.FieldLanguage, s.engine.Language())
	}
}

// command runs a session command and reports whether the session ends.
func (s *replSession) command(line string) bool {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case ":quit", ":q", ":exit":
		return true
	case ":help":
		fmt.Fprint(s.out, replHelp)
	case ":lang":
		engine, err := segment.ForLanguage(arg, s.validateRegex)
		if err != nil {
			fmt.Fprintln(s.out, s.styles.Error.Render(err.Error()))
			return false
		}
		s.engine = engine
		fmt.Fprintf(s.out, "language: %s\n", engine.Language())
	case ":mode":
		switch arg {
		case "symbols":
			s.tree = false
		case "tree":
			s.tree = true
		default:
			fmt.Fprintln(s.out, s.styles.Error.Render(fmt.Sprintf("unknown mode %q", arg)))
			return false
		}
		fmt.Fprintf(s.out, "mode: %s\n", arg)
	default:
		fmt.Fprintln(s.out, s.styles.Error.Render(fmt.Sprintf("unknown command %q; :help lists commands", name)))
	}
	return false
}

func (s *replSession) evaluate(line string) {
	if s.tree {
		doc := segment.Parse(s.engine, line)
		fmt.Fprint(s.out, s.styles.FormatTree(doc.Root))
		for _, err := range doc.Errors.Errors() {
			fmt.Fprint(s.out, s.styles.FormatError("input", err, true, line))
		}
		return
	}
	fmt.Fprint(s.out, s.styles.FormatSymbols(s.engine.Tokenize(line), s.engine.Classify))
}
