package bot

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

type MenuEntry struct {
	Label   string
	Handler Handler
}

// CommandEntry registers a /command by name, without the prefix.
type CommandEntry struct {
	Name    string
	Handler Handler
}

// Menu is the immutable label table. Labels match by exact string equality;
// commands match by name with an optional @mention of this bot.
type Menu struct {
	botUsername string
	entries     []MenuEntry
	labels      map[string]Handler
	commands    map[string]Handler
}

func NewMenu(botUsername string, entries []MenuEntry, commands []CommandEntry) (*Menu, error) {
	m := &Menu{
		botUsername: botUsername,
		entries:     make([]MenuEntry, 0, len(entries)),
		labels:      make(map[string]Handler, len(entries)),
		commands:    make(map[string]Handler, len(commands)),
	}

	for _, e := range entries {
		switch {
		case e.Label == "":
			return nil, errors.New("menu: empty label")
		case strings.HasPrefix(e.Label, CommandPrefix):
			return nil, fmt.Errorf("menu: label %q starts with command prefix", e.Label)
		case e.Handler == nil:
			return nil, fmt.Errorf("menu: nil handler for %q", e.Label)
		}
		if _, exists := m.labels[e.Label]; exists {
			return nil, fmt.Errorf("menu: duplicate label %q", e.Label)
		}
		m.labels[e.Label] = e.Handler
		m.entries = append(m.entries, e)
	}

	for _, c := range commands {
		if c.Name == "" || c.Handler == nil || strings.ContainsAny(c.Name, " @/") {
			return nil, fmt.Errorf("menu: invalid command %q", c.Name)
		}
		if _, exists := m.commands[c.Name]; exists {
			return nil, fmt.Errorf("menu: duplicate command %q", c.Name)
		}
		m.commands[c.Name] = c.Handler
	}

	return m, nil
}

// Lookup finds the handler for text. No trimming or case folding is applied
// to labels.
func (m *Menu) Lookup(text string) (Handler, string, bool) {
	if h, ok := m.labels[text]; ok {
		return h, text, true
	}

	name, mention, ok := parseCommand(text)
	if !ok {
		return nil, "", false
	}
	if mention != "" && !strings.EqualFold(mention, m.botUsername) {
		return nil, "", false
	}
	h, ok := m.commands[name]
	if !ok {
		return nil, "", false
	}
	return h, CommandPrefix + name, true
}

// Labels returns the labels in registration order.
func (m *Menu) Labels() []string {
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Label
	}
	return out
}

// parseCommand splits "/name@bot args" into name and mention.
func parseCommand(text string) (name, mention string, ok bool) {
	if !strings.HasPrefix(text, CommandPrefix) {
		return "", "", false
	}
	token := text[len(CommandPrefix):]
	if i := strings.IndexFunc(token, unicode.IsSpace); i >= 0 {
		token = token[:i]
	}
	name, mention, _ = strings.Cut(token, "@")
	return name, mention, name != ""
}
