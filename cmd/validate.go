package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shuttlehq/shuttle/internal/errors"
	"github.com/shuttlehq/shuttle/internal/settings"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a config document against the schema",
	Long: `Checks a config document and reports every violation, not just the
first, so the config can be fixed in one pass. Validates
~/.xshuttle.json when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		p, err := settings.ConfigPath()
		if err != nil {
			return errors.SettingsLoadFailed(err)
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.ExitConfigError, fmt.Sprintf("failed to read %s", path), err)
	}

	_, err = settings.ParseConfig(data)
	if err == nil {
		logSuccess("%s is valid", path)
		return nil
	}

	var verrs *settings.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(errors.ExitConfigError, fmt.Sprintf("%s is not valid JSON", path), err)
	}

	for _, ve := range verrs.Errors {
		logError("  %s", ve.String())
	}
	return errors.New(errors.ExitValidationError,
		fmt.Sprintf("%s: %d validation error(s)", path, len(verrs.Errors)))
}
