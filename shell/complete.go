package shell

import (
	"sort"

	"github.com/chzyer/readline"
)

// Completer completes command names, account ids after "use" and token aliases.
func (s *shell) Completer() readline.AutoCompleter {
	accounts := readline.PcItemDynamic(func(string) []string {
		return s.credStore.Keys()
	})
	aliases := readline.PcItemDynamic(func(string) []string {
		list := s.aliases.List()
		names := make([]string, 0, len(list))
		for _, a := range list {
			names = append(names, a.Alias)
		}
		return names
	})
	recipients := []readline.PrefixCompleterInterface{
		readline.PcItem("token"),
		readline.PcItem("alias", aliases),
		readline.PcItem("topic"),
		readline.PcItem("condition"),
	}
	names := make([]string, 0, len(s.commands)+2)
	for name := range s.commands {
		names = append(names, name)
	}
	names = append(names, "exit", "quit")
	sort.Strings(names)

	items := make([]readline.PrefixCompleterInterface, 0, len(names))
	for _, name := range names {
		switch name {
		case "use":
			items = append(items, readline.PcItem(name, accounts))
		case "unalias":
			items = append(items, readline.PcItem(name, aliases))
		case "send", "compose":
			items = append(items, readline.PcItem(name, recipients...))
		default:
			items = append(items, readline.PcItem(name))
		}
	}
	return readline.NewPrefixCompleter(items...)
}
