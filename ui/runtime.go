package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"stationpedia/ds"
	"stationpedia/pedia"
)

// Start runs the source picker and reports what the user settled on.
// ok is false when they quit without confirming a path.
func Start() (string, bool, error) {
	selector := CreateSourceSelector(pedia.DefaultConfig().SourcePath)
	model, err := tea.NewProgram(selector).StartReturningModel()
	if err != nil {
		err := errors.Wrap(err, "ui.Start error")
		return "", false, err
	}

	final, ok := model.(SourceSelector)
	if !ok {
		return "", false, ds.ErrUnreachableCode{Caller: "ui.Start"}
	}
	return final.input, final.confirmed, nil
}
