package shell

import (
	"fmt"
	"strings"

	"github.com/anyproto/anytype-push-shell/compose"
	"github.com/anyproto/anytype-push-shell/domain"
)

var stepUsages = []string{
	"token <token>",
	"alias <name>",
	"topic <topic>",
	"condition <expr>",
	"notification <title> [body] [imageUrl]",
	"locale title=<key> [title-args=a,b] body=<key> [body-args=a,b]",
	"data <key> <value>",
	"send",
}

// dropEmpty removes steps left empty by leading, trailing or doubled separators.
func dropEmpty(steps [][]string) [][]string {
	res := steps[:0]
	for _, step := range steps {
		if len(step) > 0 {
			res = append(res, step)
		}
	}
	return res
}

func stepErr(step string) error {
	for _, u := range stepUsages {
		if strings.HasPrefix(u, step+" ") || u == step {
			return fmt.Errorf("%w: %s", ErrUsage, u)
		}
	}
	return fmt.Errorf("%w: unknown step '%s', steps: %s", ErrUsage, step, strings.Join(stepUsages, ", "))
}

func (s *shell) withRecipient(b compose.Builder, kind, target string) (compose.Builder, error) {
	switch kind {
	case "token":
		b = b.ToToken(target)
	case "alias":
		b = b.ToAlias(target)
	case "topic":
		b = b.ToTopic(target)
	case "condition":
		b = b.ToCondition(target)
	default:
		return b, fmt.Errorf("%w: recipient must be one of token, alias, topic, condition", ErrUsage)
	}
	return b, b.Err()
}

func (s *shell) applyStep(b compose.Builder, step []string) (compose.Builder, error) {
	name, args := step[0], step[1:]
	switch name {
	case "token", "alias", "topic", "condition":
		if len(args) != 1 {
			return b, stepErr(name)
		}
		return s.withRecipient(b, name, args[0])
	case "notification":
		if len(args) < 1 || len(args) > 3 {
			return b, stepErr(name)
		}
		content := pad(args, 3)
		return b.SetNotification(content[0], content[1], content[2]), nil
	case "locale":
		locale, err := parseLocale(args)
		if err != nil {
			return b, err
		}
		return b.SetLocaleData(locale), nil
	case "data":
		if len(args) != 2 {
			return b, stepErr(name)
		}
		return b.AddData(args[0], args[1]), nil
	default:
		return b, stepErr(name)
	}
}

func parseLocale(args []string) (locale domain.LocaleContent, err error) {
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return locale, stepErr("locale")
		}
		switch key {
		case "title":
			locale.TitleKey = value
		case "title-args":
			locale.TitleArgs = splitArgs(value)
		case "body":
			locale.BodyKey = value
		case "body-args":
			locale.BodyArgs = splitArgs(value)
		default:
			return locale, stepErr("locale")
		}
	}
	if locale.TitleKey == "" && locale.BodyKey == "" {
		return locale, stepErr("locale")
	}
	return
}

func splitArgs(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, ",")
}

// pad returns a copy of args extended with empty strings up to n elements.
func pad(args []string, n int) []string {
	res := make([]string, max(n, len(args)))
	copy(res, args)
	return res
}
