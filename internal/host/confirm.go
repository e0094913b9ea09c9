package host

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// ErrNonInteractive is returned when a question needs a terminal and none is available.
var ErrNonInteractive = errors.New("cannot prompt in non-interactive mode")

// FixedAnswer answers every replacement question the same way.
type FixedAnswer bool

func (a FixedAnswer) ConfirmReplace(string, int, int) (bool, error) {
	return bool(a), nil
}

// SurveyConfirm asks on the terminal before replacing a declaration.
type SurveyConfirm struct {
	interactive bool
	ask         func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error
}

// NewSurveyConfirm creates a terminal-backed decision delegate.
func NewSurveyConfirm(interactive bool) *SurveyConfirm {
	return &SurveyConfirm{interactive: interactive, ask: survey.AskOne}
}

var _ DecisionDelegate = (*SurveyConfirm)(nil)

func (c *SurveyConfirm) ConfirmReplace(className string, startLine, endLine int) (bool, error) {
	if !c.interactive {
		return false, ErrNonInteractive
	}

	var replace bool
	prompt := &survey.Confirm{
		Message: ReplaceMessage(className, startLine, endLine),
		Default: false,
	}
	if err := c.ask(prompt, &replace); err != nil {
		return false, fmt.Errorf("ask replace %s: %w", className, err)
	}
	return replace, nil
}

// ReplaceMessage is the question shown before replacing className.
func ReplaceMessage(className string, startLine, endLine int) string {
	return fmt.Sprintf("The class '%s' already exists in the SDK file (lines %d-%d). Replace the existing definition?",
		className, startLine, endLine)
}
