package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"github.com/anyproto/anytype-push-shell/credstore"
	"github.com/anyproto/anytype-push-shell/domain"
	"github.com/anyproto/anytype-push-shell/session"
	"github.com/anyproto/anytype-push-shell/tokenalias"
)

const CName = "push.shell"

var log = logger.NewNamed(CName)

const clearScreen = "\u001B[2J\u001B[0;0f"

var (
	ErrUsage          = errors.New("usage")
	ErrUnknownCommand = errors.New("unknown command")
)

// LineReader supplies one line of input at a time. *readline.Instance satisfies it.
// Close must unblock a pending Readline.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

func New() Shell {
	return NewWithOutput(os.Stdout)
}

func NewWithOutput(w io.Writer) Shell {
	return &shell{out: w}
}

type Shell interface {
	// Serve reads and executes lines until exit, EOF or ctx cancellation.
	Serve(ctx context.Context, rl LineReader) error
	// Exec runs a single line. exit reports that the operator asked to quit.
	Exec(ctx context.Context, line string) (exit bool, err error)
	Prompt() string
	Completer() readline.AutoCompleter
	app.Component
}

type shell struct {
	session      session.Manager
	credStore    credstore.CredStore
	aliases      tokenalias.Registry
	promptPrefix string
	out          io.Writer
	style        styles
	commands     map[string]command
}

func (s *shell) Init(a *app.App) (err error) {
	s.session = a.MustComponent(session.CName).(session.Manager)
	s.credStore = a.MustComponent(credstore.CName).(credstore.CredStore)
	s.aliases = a.MustComponent(tokenalias.CName).(tokenalias.Registry)
	s.promptPrefix = a.MustComponent("config").(configSource).GetShell().PromptPrefix
	if s.promptPrefix == "" {
		s.promptPrefix = DefaultPromptPrefix
	}
	s.style = newStyles(s.out)
	s.commands = s.buildCommands()
	return
}

func (s *shell) Name() (name string) {
	return CName
}

func (s *shell) Prompt() string {
	return fmt.Sprintf("%s:%s> ", s.promptPrefix, s.session.CurrentProjectId())
}

func (s *shell) Serve(ctx context.Context, rl LineReader) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			if err := rl.Close(); err != nil {
				log.Warn("close line reader error", zap.Error(err))
			}
		case <-done:
		}
	}()
	for {
		rl.SetPrompt(s.Prompt())
		if ctx.Err() != nil {
			return nil
		}
		line, err := rl.Readline()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		exit, err := s.Exec(ctx, line)
		if err != nil {
			s.printErr(err)
		}
		if exit {
			return nil
		}
	}
}

func (s *shell) Exec(ctx context.Context, line string) (exit bool, err error) {
	segments, err := splitSegments(line)
	if err != nil {
		return false, fmt.Errorf("parse: %w", err)
	}
	words := segments[0]
	if len(words) == 0 {
		if len(segments) > 1 {
			return false, fmt.Errorf("%w: line starts with '%c'", ErrUsage, stepSeparator)
		}
		return false, nil
	}
	name := strings.ToLower(words[0])
	if name == "exit" || name == "quit" {
		return true, nil
	}
	cmd, ok := s.commands[name]
	if !ok {
		return false, fmt.Errorf("%w '%s', try 'help'", ErrUnknownCommand, words[0])
	}
	log.Debug("exec", zap.String("command", name), zap.Int("args", len(words)-1), zap.Int("steps", len(segments)))
	if cmd.runSteps != nil {
		steps := append([][]string{words[1:]}, segments[1:]...)
		return false, cmd.runSteps(ctx, steps)
	}
	if len(segments) > 1 {
		return false, fmt.Errorf("%w: '%c' separates compose steps, quote it to pass it as a value", ErrUsage, stepSeparator)
	}
	return false, cmd.run(ctx, words[1:])
}

func (s *shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *shell) printErr(err error) {
	var tErr *domain.TransportError
	if errors.As(err, &tErr) {
		log.Debug("transport failure", zap.String("op", tErr.Op), zap.Error(tErr.Err))
	}
	s.printf("%s\n", s.style.err.Render("error: "+err.Error()))
}
