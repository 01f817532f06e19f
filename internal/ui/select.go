package ui

import (
	"errors"
	"os"

	survey "github.com/AlecAivazis/survey/v2"
)

// ErrNotInteractive is returned by Confirm when stdin is not a terminal.
var ErrNotInteractive = errors.New("confirmation required but stdin is not a terminal")

// Confirm asks a yes/no question, defaulting to no.
func (l *Logger) Confirm(text string) (bool, error) {
	if !IsTerminal(os.Stdin) {
		return false, ErrNotInteractive
	}

	l.Debug("PROMPT: %s", text)

	var answer bool
	prompt := &survey.Confirm{
		Message: text,
		Default: false,
	}
	if err := survey.AskOne(prompt, &answer, survey.WithStdio(os.Stdin, os.Stdout, os.Stderr)); err != nil {
		return false, err
	}

	l.Debug("ANSWER: %v", answer)
	return answer, nil
}
