package ui

import "charm.land/bubbles/v2/key"

// KeyMap holds the marquee viewer keybindings.
type KeyMap struct {
	Quit     key.Binding
	Pause    key.Binding
	Reverse  key.Binding
	StepBack key.Binding
	StepFwd  key.Binding
	Restart  key.Binding
	Faster   key.Binding
	Slower   key.Binding
	Copy     key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Pause: key.NewBinding(
			key.WithKeys("space"),
			key.WithHelp("space", "pause/resume"),
		),
		Reverse: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "reverse direction"),
		),
		StepBack: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "step back"),
		),
		StepFwd: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "step forward"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "slower"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy text"),
		),
	}
}

// ShortHelp lists the bindings shown in the footer, in display order.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Reverse, k.StepBack, k.StepFwd, k.Restart, k.Faster, k.Slower, k.Copy, k.Quit}
}
