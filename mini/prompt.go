package mini

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mugiwara-cli/mugiwara/color"
	"github.com/mugiwara-cli/mugiwara/icon"
	"github.com/mugiwara-cli/mugiwara/style"
	"github.com/samber/lo"
)

const backOption = ".."

type prompter interface {
	Input(message string, suggest func(string) []string) (string, error)
	Select(message string, options []string) (int, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Input(message string, suggest func(string) []string) (string, error) {
	var response string
	err := survey.AskOne(&survey.Input{
		Message: message,
		Suggest: suggest,
	}, &response, survey.WithValidator(survey.Required))
	return strings.TrimSpace(response), err
}

func (surveyPrompter) Select(message string, options []string) (int, error) {
	var idx int
	err := survey.AskOne(&survey.Select{
		Message:  message,
		Options:  options,
		PageSize: 15,
	}, &idx)
	return idx, err
}

// menu asks for one of items. ok is false when the user goes back.
func menu[T any](m *mini, message string, items []T, describe func(T) string) (item T, ok bool, err error) {
	options := lo.Map(items, func(item T, _ int) string { return describe(item) })
	options = append(options, backOption)

	idx, err := m.prompt.Select(message, options)
	if err != nil || idx < 0 || idx >= len(items) {
		return item, false, err
	}

	return items[idx], true, nil
}

func (m *mini) progress(format string, args ...any) {
	fmt.Fprintf(m.out, "%s %s\n", icon.Get(icon.Progress), fmt.Sprintf(format, args...))
}

func (m *mini) fail(format string, args ...any) {
	fmt.Fprintf(m.out, "%s %s\n", icon.Get(icon.Fail), style.Fg(color.Red)(fmt.Sprintf(format, args...)))
}
