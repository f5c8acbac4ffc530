package ui

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"stationpedia/pedia"
)

const (
	SourceStateBlank   = ""
	SourceStateMissing = "missing"
	SourceStateFound   = "found"
)

// SourceSelector is a minimal line editor for the path of the language
// export: type, press Enter to check, press Enter again to confirm.
type SourceSelector struct {
	input     string
	state     string
	confirmed bool
}

func CreateSourceSelector(initial string) SourceSelector {
	selector := SourceSelector{
		input: initial,
		state: SourceStateBlank,
	}
	if CheckSource(initial) {
		selector.state = SourceStateFound
	}
	return selector
}

func CheckSource(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func (s SourceSelector) Init() tea.Cmd {
	return nil
}

func (s SourceSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		s.confirmed = false
		return s, tea.Quit
	case tea.KeyEnter:
		if s.state == SourceStateFound {
			s.confirmed = true
			return s, tea.Quit
		}
		if CheckSource(s.input) {
			s.state = SourceStateFound
		} else {
			s.state = SourceStateMissing
		}
		return s, nil
	case tea.KeyBackspace:
		if len(s.input) > 0 {
			runes := []rune(s.input)
			s.input = string(runes[:len(runes)-1])
		}
		s.state = SourceStateBlank
		return s, nil
	case tea.KeySpace:
		s.input += " "
		s.state = SourceStateBlank
		return s, nil
	case tea.KeyRunes:
		s.input += string(keyMsg.Runes)
		s.state = SourceStateBlank
		return s, nil
	}
	return s, nil
}

func (s SourceSelector) View() string {
	output := "STATIONPEDIA\n\n"
	output += "Source export: " + s.input + "\n\n"

	switch s.state {
	case SourceStateBlank:
		output += "Type the path to the game's english.xml and press Enter to check it.\n"
		output += "A default Steam install keeps it at:\n"
		output += "  " + pedia.SteamSourcePath + "\n"
		output += "Press Esc or Ctrl+C to quit.\n"
	case SourceStateMissing:
		output += "Nothing readable there. Fix the path and press Enter again.\n"
	case SourceStateFound:
		output += "Found it. Press Enter again to generate, or keep editing.\n"
	default:
		err := fmt.Sprintf(`SourceSelector.View unreachable code: invalid source state "%s"`, s.state)
		log.Panic(err)
	}
	return output
}
