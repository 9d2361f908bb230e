package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"golang.org/x/term"
)

// errOverwriteDeclined is returned when the user keeps an existing file.
var errOverwriteDeclined = errors.New("existing version file kept")

// askConfirm asks a yes/no question. It is a variable so tests can answer.
var askConfirm = func(message, help string) (bool, error) {
	var result bool
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
		Help:    help,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}
	return result, nil
}

// isInteractive reports whether both stdin and stdout are terminals.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// confirmOverwrite asks before replacing an existing, different version
// file. Without a terminal the file is replaced silently.
func confirmOverwrite(path, current, next string) error {
	if !isInteractive() {
		return nil
	}
	ok, err := askConfirm(
		fmt.Sprintf("%s holds %s. Replace it with %s?", path, current, next),
		"The version file is truncated and rewritten. Use --yes to skip this question.",
	)
	if err != nil {
		return fmt.Errorf("failed to prompt for confirmation: %w", err)
	}
	if !ok {
		return errOverwriteDeclined
	}
	return nil
}
