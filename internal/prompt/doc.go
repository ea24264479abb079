// Package prompt asks the operator yes/no questions.
//
// Operations that need confirmation take a Prompter instead of reading the
// terminal themselves, so tests can answer deterministically:
//
//	p := prompt.NewScripted("y", "no")
//	ok, err := p.Confirm("Delete project 'alpha'?")
//
// Only an explicit affirmative ("y" or "yes", case-insensitive) confirms.
// Anything else, including an empty answer or end of input, declines.
//
// New picks the implementation: a Bubble Tea text input when the input is a
// terminal, a plain line reader otherwise. Prompts are written to the given
// output writer, which the CLI sets to stderr so that stdout stays reserved
// for signal lines.
package prompt
