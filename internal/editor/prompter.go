package editor

// LabelPrompter asks the user for a new label, seeded with the current one.
// ok is false when the user cancelled.
type LabelPrompter interface {
	PromptLabel(current string) (label string, ok bool)
}

// PromptFunc adapts a function to LabelPrompter.
type PromptFunc func(current string) (string, bool)

func (f PromptFunc) PromptLabel(current string) (string, bool) { return f(current) }

// FixedLabel is a prompter that always answers with its value. Front ends
// that collect the label asynchronously use it to apply the answer.
type FixedLabel string

func (l FixedLabel) PromptLabel(string) (string, bool) { return string(l), true }

// Cancelled is a prompter that always reports cancellation.
var Cancelled LabelPrompter = PromptFunc(func(string) (string, bool) { return "", false })
