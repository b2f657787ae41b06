package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/christophe-duc/lazysdes/pkg/bruteforce"
	"github.com/christophe-duc/lazysdes/pkg/commands"
	"github.com/christophe-duc/lazysdes/pkg/config"
	"github.com/christophe-duc/lazysdes/pkg/i18n"
	"github.com/christophe-duc/lazysdes/pkg/log"
	"github.com/christophe-duc/lazysdes/pkg/presentation"
	"github.com/christophe-duc/lazysdes/pkg/sdes"
	"github.com/christophe-duc/lazysdes/pkg/tasks"
	"github.com/christophe-duc/lazysdes/pkg/utils"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// App struct
type App struct {
	closers []io.Closer

	Config          *config.AppConfig
	Log             *logrus.Entry
	Tr              *i18n.TranslationSet
	CipherCommand   *commands.CipherCommand
	CrackCommand    *commands.CrackCommand
	AnalysisCommand *commands.AnalysisCommand
	TaskManager     *tasks.TaskManager

	// Out receives results, ErrOut receives the progress spinner
	Out    io.Writer
	ErrOut io.Writer

	// ShowProgress turns on the spinner while a search runs
	ShowProgress bool
}

// NewApp bootstrap a new application
func NewApp(config *config.AppConfig) (*App, error) {
	app := &App{
		closers:      []io.Closer{},
		Config:       config,
		Out:          os.Stdout,
		ErrOut:       os.Stderr,
		ShowProgress: isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()),
	}
	var err error
	app.Log = log.NewLogger(config)
	app.Tr, err = i18n.NewTranslationSetFromConfig(app.Log, config.UserConfig.Language)
	if err != nil {
		return app, err
	}

	app.setup()
	return app, nil
}

func (app *App) setup() {
	app.CipherCommand = commands.NewCipherCommand(app.Log, app.Tr, app.Config)
	app.CrackCommand = commands.NewCrackCommand(app.Log, app.Tr, app.Config)
	app.AnalysisCommand = commands.NewAnalysisCommand(app.Log, app.Tr, app.Config)
	app.TaskManager = tasks.NewTaskManager(app.Log, app.Tr)
	app.closers = append(app.closers, app.TaskManager)
}

// Subkeys prints the round subkeys of a key
func (app *App) Subkeys(rawKey string) error {
	key, keys, err := app.CipherCommand.Subkeys(rawKey)
	if err != nil {
		return commands.WrapError(err)
	}
	output, err := presentation.RenderSubkeys(app.Tr, key, keys)
	if err != nil {
		return err
	}
	return app.print(output)
}

// Encrypt prints the encryption of input
func (app *App) Encrypt(rawKey, mode, input string) error {
	result, err := app.CipherCommand.Encrypt(rawKey, mode, input)
	if err != nil {
		return commands.WrapError(err)
	}
	return app.printCipherResult(result)
}

// Decrypt prints the decryption of input
func (app *App) Decrypt(rawKey, mode, input string) error {
	result, err := app.CipherCommand.Decrypt(rawKey, mode, input)
	if err != nil {
		return commands.WrapError(err)
	}
	return app.printCipherResult(result)
}

func (app *App) printCipherResult(result *commands.CipherResult) error {
	output, err := presentation.RenderCipherResult(app.Tr, result)
	if err != nil {
		return err
	}
	return app.print(output)
}

// Crack searches for the keys of a known pair. A search that is cut short
// still prints what it found before returning the timeout error.
func (app *App) Crack(ctx context.Context, options commands.CrackOptions) error {
	if app.ShowProgress {
		app.startSpinner(&options)
	}

	result, err := app.CrackCommand.Crack(ctx, options)

	if app.ShowProgress {
		if closeErr := app.TaskManager.Close(); closeErr != nil {
			app.Log.Error(closeErr)
		}
		fmt.Fprint(app.ErrOut, "\r\033[K")
	}

	err = commands.WrapError(err)
	if result == nil {
		return err
	}

	output, renderErr := presentation.RenderCrackResult(app.Tr, result)
	if renderErr != nil {
		return renderErr
	}
	if printErr := app.print(output); printErr != nil {
		return printErr
	}
	return err
}

func (app *App) startSpinner(options *commands.CrackOptions) {
	var checked atomic.Int64
	onProgress := options.OnProgress
	options.OnProgress = func(progress bruteforce.Progress) {
		checked.Store(int64(progress.Checked))
		if onProgress != nil {
			onProgress(progress)
		}
	}

	interval := app.Config.UserConfig.Search.ProgressInterval
	if interval <= 0 {
		interval = bruteforce.DefaultProgressInterval
	}

	app.TaskManager.NewTickerTask(interval, nil, func(stop, notifyStopped chan struct{}) {
		fmt.Fprintf(app.ErrOut, "\r%s %s %d/%d", utils.Loader(), app.Tr.Searching, checked.Load(), sdes.KeySpace)
	})
}

// Analyze prints the collision report of a plaintext
func (app *App) Analyze(rawPlaintext, mode string, width int) error {
	report, err := app.AnalysisCommand.Analyze(rawPlaintext, mode)
	if err != nil {
		return commands.WrapError(err)
	}
	output, err := presentation.RenderAnalysis(app.Config.UserConfig, app.Tr, report, width)
	if err != nil {
		return err
	}
	return app.print(output)
}

func (app *App) print(output string) error {
	if !strings.HasSuffix(output, "\n") {
		output += "\n"
	}
	_, err := fmt.Fprint(app.Out, output)
	return err
}

func (app *App) Close() error {
	return utils.CloseMany(app.closers)
}

type errorMapping struct {
	code     int
	newError string
}

// KnownError takes an error and tells us whether it's an error that we know about where we can print a nicely formatted version of it rather than panicking with a stack trace
func (app *App) KnownError(err error) (string, bool) {
	errorMessage := err.Error()

	knownErrorMessages := []string{
		app.Tr.MissingKeyError,
		app.Tr.MissingInputError,
		app.Tr.UnrecognisedCipherMode,
		app.Tr.UnrecognisedSearchMode,
	}

	for _, message := range knownErrorMessages {
		if errorMessage == message {
			return message, true
		}
	}

	if strings.HasPrefix(errorMessage, app.Tr.UnsupportedLanguageError) {
		return errorMessage, true
	}

	mappings := []errorMapping{
		{code: sdes.InvalidKeyLength, newError: app.Tr.InvalidKeyLengthError},
		{code: sdes.InvalidBlockLength, newError: app.Tr.InvalidBlockLengthError},
		{code: sdes.InvalidBitCharacter, newError: app.Tr.InvalidBitCharacterError},
		{code: sdes.SearchTimedOut, newError: app.Tr.SearchTimedOutError},
	}

	for _, mapping := range mappings {
		if sdes.HasErrorCode(err, mapping.code) {
			return fmt.Sprintf("%s (%s)", mapping.newError, errorMessage), true
		}
	}

	return "", false
}
