package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	RandomSeed key.Binding
	MoreErrors key.Binding
	FewErrors  key.Binding
	NextRegion key.Binding
	Regenerate key.Binding
	Export     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		RandomSeed: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "random seed")),
		MoreErrors: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more errors")),
		FewErrors:  key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "fewer errors")),
		NextRegion: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "region")),
		Regenerate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "regenerate")),
		Export:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export csv")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.NextRegion, k.MoreErrors, k.FewErrors, k.RandomSeed, k.Regenerate, k.Export, k.Quit}
}
