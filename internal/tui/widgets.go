package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gdamasio/peticao/internal/form"
)

// control is one focusable widget of a wizard step, bound to a form
// state key. Controls load their value from the store when built and
// sync it back on every update.
type control interface {
	key() string
	focus()
	blur()
	// update handles input while the control is focused and reports
	// whether it consumed the message.
	update(msg tea.Msg) (tea.Cmd, bool)
	view(focused bool, width int) string
	sync(store *form.Store)
	load(store *form.Store)
}

// --- single-line text ---

type textControl struct {
	k     string
	label string
	help  string
	mask  func(string) string
	input textinput.Model
}

func newTextControl(stateKey, label, help string, mask func(string) string) *textControl {
	input := textinput.New()
	input.CharLimit = 300
	input.Width = 52
	return &textControl{k: stateKey, label: label, help: help, mask: mask, input: input}
}

func (c *textControl) key() string { return c.k }
func (c *textControl) focus()      { c.input.Focus() }
func (c *textControl) blur()       { c.input.Blur() }

func (c *textControl) update(msg tea.Msg) (tea.Cmd, bool) {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	if c.mask != nil {
		if masked := c.mask(c.input.Value()); masked != c.input.Value() {
			c.input.SetValue(masked)
			c.input.CursorEnd()
		}
	}
	return cmd, true
}

func (c *textControl) view(focused bool, width int) string {
	var b strings.Builder
	b.WriteString(labelLine(c.label, focused))
	b.WriteString("  " + c.input.View())
	if c.help != "" && focused {
		b.WriteString("\n  " + styleHelp.Render(c.help))
	}
	return b.String()
}

func (c *textControl) sync(store *form.Store) {
	store.Set(c.k, form.String(c.input.Value()))
}

func (c *textControl) load(store *form.Store) {
	if v := store.Str(c.k); v != "" {
		c.input.SetValue(v)
		c.input.CursorEnd()
	}
}

// --- multi-line text ---

type textareaControl struct {
	k     string
	label string
	help  string
	ta    textarea.Model
}

func newTextareaControl(stateKey, label, help string, rows int) *textareaControl {
	ta := textarea.New()
	ta.SetWidth(58)
	ta.SetHeight(rows)
	ta.CharLimit = 4000
	return &textareaControl{k: stateKey, label: label, help: help, ta: ta}
}

func (c *textareaControl) key() string { return c.k }
func (c *textareaControl) focus()      { c.ta.Focus() }
func (c *textareaControl) blur()       { c.ta.Blur() }

func (c *textareaControl) update(msg tea.Msg) (tea.Cmd, bool) {
	var cmd tea.Cmd
	c.ta, cmd = c.ta.Update(msg)
	return cmd, true
}

func (c *textareaControl) view(focused bool, width int) string {
	var b strings.Builder
	b.WriteString(labelLine(c.label, focused))
	b.WriteString(c.ta.View())
	if c.help != "" && focused {
		b.WriteString("\n  " + styleHelp.Render(c.help))
	}
	return b.String()
}

func (c *textareaControl) sync(store *form.Store) {
	store.Set(c.k, form.String(c.ta.Value()))
}

func (c *textareaControl) load(store *form.Store) {
	if v := store.Str(c.k); v != "" {
		c.ta.SetValue(v)
	}
}

// --- single select ---

type selectControl struct {
	k       string
	label   string
	options []string
	cursor  int // -1 while nothing was chosen yet
	custom  textinput.Model
	free    bool // accepts free text besides the listed options
}

func newSelectControl(stateKey, label string, options []string, free bool) *selectControl {
	custom := textinput.New()
	custom.Placeholder = "digite outro valor..."
	custom.CharLimit = 200
	custom.Width = 40
	return &selectControl{
		k:       stateKey,
		label:   label,
		options: options,
		cursor:  -1,
		custom:  custom,
		free:    free,
	}
}

func (c *selectControl) key() string { return c.k }

// rows counts the selectable rows, including the free-text row.
func (c *selectControl) rows() int {
	if c.free {
		return len(c.options) + 1
	}
	return len(c.options)
}

func (c *selectControl) onCustomRow() bool {
	return c.free && c.cursor == len(c.options)
}

func (c *selectControl) focus() {
	if c.onCustomRow() {
		c.custom.Focus()
	}
}

func (c *selectControl) blur() { c.custom.Blur() }

func (c *selectControl) update(msg tea.Msg) (tea.Cmd, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up":
			if c.cursor > 0 {
				c.cursor--
			} else if c.cursor < 0 {
				c.cursor = 0
			}
			c.syncCustomFocus()
			return nil, true
		case "down":
			if c.cursor < c.rows()-1 {
				c.cursor++
			}
			c.syncCustomFocus()
			return nil, true
		}
	}
	if c.onCustomRow() {
		var cmd tea.Cmd
		c.custom, cmd = c.custom.Update(msg)
		return cmd, true
	}
	return nil, false
}

func (c *selectControl) syncCustomFocus() {
	if c.onCustomRow() {
		c.custom.Focus()
	} else {
		c.custom.Blur()
	}
}

func (c *selectControl) view(focused bool, width int) string {
	var b strings.Builder
	b.WriteString(labelLine(c.label, focused))
	for i, opt := range c.options {
		b.WriteString("  " + optionLine(opt, i == c.cursor, focused) + "\n")
	}
	if c.free {
		marker := "( )"
		if c.onCustomRow() {
			marker = "(x)"
		}
		b.WriteString(fmt.Sprintf("  %s Outro: %s\n", marker, c.custom.View()))
	}
	if focused {
		b.WriteString("  " + styleHelp.Render("↑/↓ escolhe"))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (c *selectControl) sync(store *form.Store) {
	switch {
	case c.onCustomRow():
		store.Set(c.k, form.String(c.custom.Value()))
	case c.cursor >= 0 && c.cursor < len(c.options):
		store.Set(c.k, form.String(c.options[c.cursor]))
	}
}

func (c *selectControl) load(store *form.Store) {
	v := store.Str(c.k)
	if v == "" {
		return
	}
	for i, opt := range c.options {
		if opt == v {
			c.cursor = i
			return
		}
	}
	if c.free {
		c.cursor = len(c.options)
		c.custom.SetValue(v)
	}
}

// --- multi select ---

type multiControl struct {
	k       string
	label   string
	options []string
	cursor  int
	checked map[int]bool
	custom  textinput.Model
	free    bool // accepts extra comma-separated items besides the listed options
}

func newMultiControl(stateKey, label string, options []string, free bool) *multiControl {
	custom := textinput.New()
	custom.Placeholder = "outros itens, separados por vírgula..."
	custom.CharLimit = 300
	custom.Width = 44
	return &multiControl{
		k:       stateKey,
		label:   label,
		options: options,
		checked: make(map[int]bool),
		custom:  custom,
		free:    free,
	}
}

func (c *multiControl) key() string { return c.k }

func (c *multiControl) rows() int {
	if c.free {
		return len(c.options) + 1
	}
	return len(c.options)
}

func (c *multiControl) onCustomRow() bool {
	return c.free && c.cursor == len(c.options)
}

func (c *multiControl) focus() {
	if c.onCustomRow() {
		c.custom.Focus()
	}
}

func (c *multiControl) blur() { c.custom.Blur() }

func (c *multiControl) syncCustomFocus() {
	if c.onCustomRow() {
		c.custom.Focus()
	} else {
		c.custom.Blur()
	}
}

func (c *multiControl) update(msg tea.Msg) (tea.Cmd, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up":
			if c.cursor > 0 {
				c.cursor--
			}
			c.syncCustomFocus()
			return nil, true
		case "down":
			if c.cursor < c.rows()-1 {
				c.cursor++
			}
			c.syncCustomFocus()
			return nil, true
		case " ", "enter":
			if !c.onCustomRow() {
				c.checked[c.cursor] = !c.checked[c.cursor]
				return nil, true
			}
		}
	}
	if c.onCustomRow() {
		var cmd tea.Cmd
		c.custom, cmd = c.custom.Update(msg)
		return cmd, true
	}
	return nil, false
}

func (c *multiControl) view(focused bool, width int) string {
	var b strings.Builder
	b.WriteString(labelLine(c.label, focused))
	for i, opt := range c.options {
		mark := "[ ]"
		if c.checked[i] {
			mark = "[x]"
		}
		b.WriteString("  " + optionLine(mark+" "+opt, i == c.cursor, focused) + "\n")
	}
	if c.free {
		marker := "[ ]"
		if c.onCustomRow() {
			marker = "[>]"
		}
		b.WriteString(fmt.Sprintf("  %s Outros: %s\n", marker, c.custom.View()))
	}
	if focused {
		b.WriteString("  " + styleHelp.Render("↑/↓ navega, espaço marca"))
	}
	return strings.TrimRight(b.String(), "\n")
}

// customItems parses the free-text row into individual items.
func (c *multiControl) customItems() []string {
	var out []string
	for _, item := range strings.Split(c.custom.Value(), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func (c *multiControl) sync(store *form.Store) {
	var list []string
	for i, opt := range c.options {
		if c.checked[i] {
			list = append(list, opt)
		}
	}
	if c.free {
		list = append(list, c.customItems()...)
	}
	store.Set(c.k, form.StringList(list))
}

func (c *multiControl) load(store *form.Store) {
	var extras []string
	for _, v := range store.List(c.k) {
		known := false
		for i, opt := range c.options {
			if opt == v {
				c.checked[i] = true
				known = true
			}
		}
		if !known {
			extras = append(extras, v)
		}
	}
	if c.free && len(extras) > 0 {
		c.custom.SetValue(strings.Join(extras, ", "))
	}
}

// --- checkbox ---

type checkControl struct {
	k     string
	label string
	val   bool
}

func newCheckControl(stateKey, label string) *checkControl {
	return &checkControl{k: stateKey, label: label}
}

func (c *checkControl) key() string { return c.k }
func (c *checkControl) focus()      {}
func (c *checkControl) blur()       {}

func (c *checkControl) update(msg tea.Msg) (tea.Cmd, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case " ", "enter":
			c.val = !c.val
			return nil, true
		}
	}
	return nil, false
}

func (c *checkControl) view(focused bool, width int) string {
	mark := "[ ]"
	if c.val {
		mark = "[x]"
	}
	line := mark + " " + c.label
	if focused {
		return styleLabelFocused.Render("> " + line)
	}
	return styleLabel.Render("  " + line)
}

func (c *checkControl) sync(store *form.Store) {
	store.Set(c.k, form.Bool(c.val))
}

func (c *checkControl) load(store *form.Store) {
	c.val = store.Flag(c.k)
}

// --- shared rendering helpers ---

func labelLine(label string, focused bool) string {
	if focused {
		return styleLabelFocused.Render("> "+label) + "\n"
	}
	return styleLabel.Render("  "+label) + "\n"
}

func optionLine(text string, selected, focused bool) string {
	switch {
	case selected && focused:
		return styleLabelFocused.Render("> " + text)
	case selected:
		return styleLabel.Render("* " + text)
	default:
		return styleSubtitle.Render("  " + text)
	}
}
