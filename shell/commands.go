package shell

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/anyproto/anytype-push-shell/compose"
	"github.com/anyproto/anytype-push-shell/domain"
)

type command struct {
	usage string
	help  string
	run   func(ctx context.Context, args []string) error
	// runSteps replaces run for commands taking "|" separated steps
	runSteps func(ctx context.Context, steps [][]string) error
}

func (c command) usageErr() error {
	return fmt.Errorf("%w: %s", ErrUsage, c.usage)
}

func (s *shell) buildCommands() map[string]command {
	return map[string]command{
		"clear":    {usage: "clear", help: "clear the screen", run: s.clear},
		"accounts": {usage: "accounts", help: "list loaded accounts, * marks the active one", run: s.listAccounts},
		"use":      {usage: "use <alias|projectId>", help: "switch the active account", run: s.use},
		"project":  {usage: "project", help: "print the active project id", run: s.project},
		"alias":    {usage: "alias [<name> <token>]", help: "register a device token under a short name, or list aliases", run: s.alias},
		"unalias":  {usage: "unalias <name>", help: "forget a token alias", run: s.unalias},
		"test":     {usage: "test <token|@alias>", help: "send a test notification to a device", run: s.test},
		"send": {
			usage: "send <token|alias|topic|condition> <target> [title] [body] [imageUrl]",
			help:  "send a notification in one step",
			run:   s.send,
		},
		"compose": {
			usage: "compose <step> | <step> ... [| send]",
			help: "build and send a message, steps: " + strings.Join(stepUsages, "; ") +
				`. Quote values containing "|"`,
			runSteps: s.compose,
		},
		"stats": {usage: "stats", help: "print send counters", run: s.stats},
		"help":  {usage: "help", help: "show this help", run: s.help},
	}
}

func (s *shell) usageErr(name string) error {
	return s.commands[name].usageErr()
}

func (s *shell) help(_ context.Context, _ []string) error {
	names := make([]string, 0, len(s.commands)+1)
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cmd := s.commands[name]
		s.printf("  %-40s %s\n", cmd.usage, s.style.dim.Render(cmd.help))
	}
	s.printf("  %-40s %s\n", "exit", s.style.dim.Render("leave the shell"))
	return nil
}

func (s *shell) clear(_ context.Context, _ []string) error {
	s.printf("%s", clearScreen)
	return nil
}

func (s *shell) listAccounts(_ context.Context, _ []string) error {
	active, hasActive := s.session.Account()
	for _, acc := range s.credStore.Accounts() {
		line := fmt.Sprintf("%-16s %-32s %s", acc.Alias, acc.ProjectId, acc.ClientEmail)
		if hasActive && acc.Path == active.Path {
			s.printf("* %s\n", s.style.active.Render(line))
		} else {
			s.printf("  %s\n", line)
		}
	}
	return nil
}

func (s *shell) use(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return s.usageErr("use")
	}
	ok, err := s.session.Switch(ctx, args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: '%s'", domain.ErrAccountNotFound, args[0])
	}
	s.printf("%s\n", s.style.ok.Render("switched to "+s.session.CurrentProjectId()))
	return nil
}

func (s *shell) project(_ context.Context, _ []string) error {
	s.printf("%s\n", s.session.CurrentProjectId())
	return nil
}

func (s *shell) alias(_ context.Context, args []string) error {
	switch len(args) {
	case 0:
		for _, a := range s.aliases.List() {
			s.printf("  %-16s %s\n", a.Alias, a.Token)
		}
		return nil
	case 2:
		return s.aliases.Set(args[0], args[1])
	default:
		return s.usageErr("alias")
	}
}

func (s *shell) unalias(_ context.Context, args []string) error {
	if len(args) != 1 {
		return s.usageErr("unalias")
	}
	return s.aliases.Remove(args[0])
}

func (s *shell) test(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return s.usageErr("test")
	}
	token := args[0]
	if alias, ok := strings.CutPrefix(token, "@"); ok {
		var err error
		if token, err = s.aliases.Resolve(alias); err != nil {
			return err
		}
	}
	return s.deliver(ctx, compose.Test(s.session, token))
}

func (s *shell) send(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 5 {
		return s.usageErr("send")
	}
	b, err := s.withRecipient(compose.New(s.session, s.aliases), args[0], args[1])
	if err != nil {
		return err
	}
	if len(args) > 2 {
		content := pad(args[2:], 3)
		b = b.SetNotification(content[0], content[1], content[2])
	}
	return s.deliver(ctx, b)
}

func (s *shell) compose(ctx context.Context, steps [][]string) error {
	steps = dropEmpty(steps)
	if len(steps) == 0 {
		return s.usageErr("compose")
	}
	b := compose.New(s.session, s.aliases)
	for i, step := range steps {
		if step[0] == "send" {
			if i != len(steps)-1 || len(step) != 1 {
				return fmt.Errorf("%w: 'send' takes no arguments and must be the last step", ErrUsage)
			}
			break
		}
		var err error
		if b, err = s.applyStep(b, step); err != nil {
			return err
		}
	}
	return s.deliver(ctx, b)
}

func (s *shell) stats(_ context.Context, _ []string) error {
	families, err := s.session.Registry().Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetGauge() != nil:
				s.printf("  %-40s %v\n", mf.GetName(), m.GetGauge().GetValue())
			case m.GetSummary() != nil:
				s.printf("  %-40s count=%d sum=%.3fs\n", mf.GetName(), m.GetSummary().GetSampleCount(), m.GetSummary().GetSampleSum())
			}
		}
	}
	return nil
}

func (s *shell) deliver(ctx context.Context, b compose.Builder) error {
	messageId, err := b.Send(ctx)
	if err != nil {
		return err
	}
	s.printf("%s\n", s.style.ok.Render("sent "+messageId))
	return nil
}
