package cli

import (
	"strings"

	"github.com/alexanderramin/trapgrid/internal/cli/formatter"
	"github.com/alexanderramin/trapgrid/internal/script"
	tea "github.com/charmbracelet/bubbletea"
)

// boardCommands are the command-bar commands that are not script verbs.
var boardCommands = []struct {
	name, usage, desc string
}{
	{"list", "list", "Table of placed markers"},
	{"summary", "summary", "Board snapshot, mode and zoom"},
	{"help", "help", "This help"},
	{"quit", "quit", "Leave trapgrid"},
}

var verbUsage = map[script.Verb]string{
	script.VerbKey:     "key <1-5|e>",
	script.VerbPress:   "press <x> <y>",
	script.VerbRelease: "release <x> <y>",
	script.VerbClick:   "click <x> <y>",
	script.VerbRename:  "rename <x> <y> [label|!cancel]",
	script.VerbWheel:   "wheel <up|down>",
	script.VerbCancel:  "cancel",
}

var verbDesc = map[script.Verb]string{
	script.VerbKey:     "Select a tool",
	script.VerbPress:   "Primary press at pixel (x, y)",
	script.VerbRelease: "Release at pixel (x, y)",
	script.VerbClick:   "Press and release",
	script.VerbRename:  "Rename the marker under (x, y)",
	script.VerbWheel:   "Zoom one step",
	script.VerbCancel:  "Return a dragged marker",
}

// commandNames returns every command-bar command, for suggestions.
func commandNames() []string {
	names := make([]string, 0, len(boardCommands)+len(script.Verbs))
	for _, c := range boardCommands {
		names = append(names, c.name)
	}
	for _, v := range script.Verbs {
		names = append(names, string(v))
	}
	return names
}

// executeCommand runs one command-bar line against the editor.
func executeCommand(state *SharedState, input string) tea.Cmd {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil
	}
	ed := state.Editor

	switch strings.ToLower(fields[0]) {
	case "list", "ls":
		return outputCmd(formatter.FormatObjects(ed.Board().All()))
	case "summary":
		return outputCmd(formatter.FormatSummary(state.Plan, ed.Board().All(), ed.Mode(), ed.Transform().Scale()))
	case "help", "?":
		return outputCmd(commandHelp())
	case "quit", "exit", "q":
		return func() tea.Msg { return quitMsg{} }
	}

	step, ok, err := script.ParseLine(input)
	if err != nil {
		return outputCmd(formatter.StyleRed.Render("Error: ") + err.Error())
	}
	if ok {
		script.ApplyStep(ed, step)
	}
	return nil
}

func commandHelp() string {
	rows := make([][]string, 0, len(boardCommands)+len(script.Verbs))
	for _, v := range script.Verbs {
		rows = append(rows, []string{verbUsage[v], verbDesc[v]})
	}
	for _, c := range boardCommands {
		rows = append(rows, []string{c.usage, c.desc})
	}
	return formatter.Header("Commands") + "\n\n" + formatter.RenderTable([]string{"COMMAND", "DESCRIPTION"}, rows)
}
