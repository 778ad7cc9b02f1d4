// Package keymap expands the configured key bindings and workspace groups
// into the flat binding table the window manager registers.
package keymap

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/example/wmstatus/internal/config"
)

// Binding is one chord and the window manager command it runs.
type Binding struct {
	Chord  Chord    `json:"chord"`
	Action string   `json:"action"`
	Args   []string `json:"args,omitempty"`
	Desc   string   `json:"desc"`
}

// Chord is a key plus its modifiers, normalized so that equal chords
// compare equal.
type Chord struct {
	Mods []string `json:"mods"`
	Key  string   `json:"key"`
}

func (c Chord) String() string {
	if len(c.Mods) == 0 {
		return c.Key
	}
	return strings.Join(c.Mods, "+") + "+" + c.Key
}

// ConflictError reports two bindings on the same chord.
type ConflictError struct {
	Chord  Chord
	First  string
	Second string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("chord %s is bound twice: %q and %q", e.Chord, e.First, e.Second)
}

// NewChord resolves the "mod" placeholder to mod, lower-cases, de-duplicates
// and sorts the modifiers. The key is kept as written.
func NewChord(mod string, mods []string, key string) Chord {
	set := make(map[string]bool, len(mods))
	for _, m := range mods {
		m = strings.ToLower(strings.TrimSpace(m))
		if m == "mod" {
			m = strings.ToLower(mod)
		}
		set[m] = true
	}
	out := make([]string, 0, len(set))
	for m := range set {
		out = append(out, m)
	}
	sort.Strings(out)
	return Chord{Mods: out, Key: key}
}

// Build returns the static bindings followed by two bindings per group:
// mod+letter switches to the group and mod+shift+letter moves the focused
// window there and follows it.
func Build(cfg *config.Config) ([]Binding, error) {
	keys := cfg.Keys
	letters := []rune(keys.GroupLetters)
	if len(letters) < len(cfg.Groups) {
		return nil, fmt.Errorf("keys.group_letters has %d letters for %d groups", len(letters), len(cfg.Groups))
	}

	bindings := make([]Binding, 0, len(keys.Bindings)+2*len(cfg.Groups))
	for _, k := range keys.Bindings {
		args := k.Args
		if k.Action == "spawn" && len(args) == 0 {
			args = []string{keys.Terminal}
		}
		bindings = append(bindings, Binding{
			Chord:  NewChord(keys.Mod, k.Mods, k.Key),
			Action: k.Action,
			Args:   args,
			Desc:   k.Desc,
		})
	}

	for i, name := range cfg.Groups {
		letter := string(letters[i])
		bindings = append(bindings,
			Binding{
				Chord:  NewChord(keys.Mod, []string{"mod"}, letter),
				Action: "group.toscreen",
				Args:   []string{name},
				Desc:   fmt.Sprintf("Switch to group %s", name),
			},
			Binding{
				Chord:  NewChord(keys.Mod, []string{"mod", "shift"}, letter),
				Action: "window.togroup",
				Args:   []string{name, "switch_group"},
				Desc:   fmt.Sprintf("Switch to & move focused window to group %s", name),
			},
		)
	}

	seen := make(map[string]string, len(bindings))
	for _, b := range bindings {
		id := b.Chord.String()
		if prev, ok := seen[id]; ok {
			return nil, &ConflictError{Chord: b.Chord, First: prev, Second: b.Desc}
		}
		seen[id] = b.Desc
	}
	return bindings, nil
}

// Format renders bindings as an aligned three-column table.
func Format(bindings []Binding) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CHORD\tACTION\tDESCRIPTION")
	for _, b := range bindings {
		action := b.Action
		if len(b.Args) > 0 {
			action += " " + strings.Join(b.Args, " ")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", b.Chord, action, b.Desc)
	}
	w.Flush()
	return sb.String()
}
