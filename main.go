package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/christophe-duc/lazysdes/pkg/app"
	"github.com/christophe-duc/lazysdes/pkg/commands"
	"github.com/christophe-duc/lazysdes/pkg/config"
	"github.com/go-errors/errors"
	"github.com/integrii/flaggy"
	"github.com/jesseduffield/yaml"
	"golang.org/x/term"
)

var (
	commit      string
	version     = "unversioned"
	date        string
	buildSource = "unknown"

	configFlag    = false
	debuggingFlag = false

	keyFlag        string
	modeFlag       string
	plaintextFlag  string
	ciphertextFlag string
	firstFlag      = false
	timeoutFlag    time.Duration
	workersFlag    int
	widthFlag      int
	input          string
)

func main() {
	info := fmt.Sprintf(
		"%s\nDate: %s\nBuildSource: %s\nCommit: %s\nOS: %s\nArch: %s",
		version,
		date,
		buildSource,
		commit,
		runtime.GOOS,
		runtime.GOARCH,
	)

	flaggy.SetName("lazysdes")
	flaggy.SetDescription("Encrypt, decrypt and brute force Simplified DES from your terminal")
	flaggy.DefaultParser.AdditionalHelpPrepend = "https://github.com/christophe-duc/lazysdes"

	flaggy.Bool(&configFlag, "c", "config", "Print the current default config")
	flaggy.Bool(&debuggingFlag, "d", "debug", "Write a development.log to the config directory")
	flaggy.SetVersion(info)

	subkeysCmd := flaggy.NewSubcommand("subkeys")
	subkeysCmd.Description = "Print the two round subkeys derived from a key"
	subkeysCmd.String(&keyFlag, "k", "key", "10-bit key, e.g. 1010000010")
	flaggy.AttachSubcommand(subkeysCmd, 1)

	encryptCmd := flaggy.NewSubcommand("encrypt")
	encryptCmd.Description = "Encrypt a binary message, or text in ascii mode"
	encryptCmd.String(&keyFlag, "k", "key", "10-bit key, e.g. 1010000010")
	encryptCmd.String(&modeFlag, "m", "mode", "binary or ascii")
	encryptCmd.AddPositionalValue(&input, "input", 1, true, "The message to encrypt")
	flaggy.AttachSubcommand(encryptCmd, 1)

	decryptCmd := flaggy.NewSubcommand("decrypt")
	decryptCmd.Description = "Decrypt a binary message, reading the result as text in ascii mode"
	decryptCmd.String(&keyFlag, "k", "key", "10-bit key, e.g. 1010000010")
	decryptCmd.String(&modeFlag, "m", "mode", "binary or ascii")
	decryptCmd.AddPositionalValue(&input, "input", 1, true, "The binary ciphertext to decrypt")
	flaggy.AttachSubcommand(decryptCmd, 1)

	crackCmd := flaggy.NewSubcommand("crack")
	crackCmd.Description = "Find every key that maps a known plaintext block to a known ciphertext block"
	crackCmd.String(&plaintextFlag, "p", "plaintext", "8-bit plaintext, or a single character in ascii mode")
	crackCmd.String(&ciphertextFlag, "", "ciphertext", "8-bit ciphertext")
	crackCmd.String(&modeFlag, "m", "mode", "binary or ascii, applies to the plaintext")
	crackCmd.Bool(&firstFlag, "f", "first", "Stop at the first matching key")
	crackCmd.Duration(&timeoutFlag, "t", "timeout", "Give up after this long, e.g. 30s")
	crackCmd.Int(&workersFlag, "w", "workers", "Number of workers, defaults to one per CPU")
	flaggy.AttachSubcommand(crackCmd, 1)

	analyzeCmd := flaggy.NewSubcommand("analyze")
	analyzeCmd.Description = "Graph how many keys produce each ciphertext for a plaintext block"
	analyzeCmd.String(&plaintextFlag, "p", "plaintext", "8-bit plaintext, or a single character in ascii mode")
	analyzeCmd.String(&modeFlag, "m", "mode", "binary or ascii")
	analyzeCmd.Int(&widthFlag, "", "width", "Graph width in columns, defaults to the terminal width")
	flaggy.AttachSubcommand(analyzeCmd, 1)

	flaggy.Parse()

	if configFlag {
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		err := encoder.Encode(config.GetDefaultConfig())
		if err != nil {
			log.Fatal(err.Error())
		}
		fmt.Printf("%v\n", buf.String())
		os.Exit(0)
	}

	if !subkeysCmd.Used && !encryptCmd.Used && !decryptCmd.Used && !crackCmd.Used && !analyzeCmd.Used {
		flaggy.ShowHelpAndExit("")
	}

	appConfig, err := config.NewAppConfig("lazysdes", version, commit, date, buildSource, debuggingFlag)
	if err != nil {
		log.Fatal(err.Error())
	}

	app, err := app.NewApp(appConfig)
	if err == nil {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		switch {
		case subkeysCmd.Used:
			err = app.Subkeys(keyFlag)
		case encryptCmd.Used:
			err = app.Encrypt(keyFlag, modeFlag, input)
		case decryptCmd.Used:
			err = app.Decrypt(keyFlag, modeFlag, input)
		case crackCmd.Used:
			err = app.Crack(ctx, crackOptions())
		case analyzeCmd.Used:
			err = app.Analyze(plaintextFlag, modeFlag, graphWidth())
		}

		if closeErr := app.Close(); err == nil {
			err = closeErr
		}
	}

	if err != nil {
		if errMessage, known := app.KnownError(err); known {
			log.Println(errMessage)
			os.Exit(1)
		}

		newErr := errors.Wrap(err, 0)
		stackTrace := newErr.ErrorStack()
		app.Log.Error(stackTrace)

		log.Fatal(fmt.Sprintf("%s\n\n%s", app.Tr.ErrorOccurred, stackTrace))
	}
}

func crackOptions() commands.CrackOptions {
	searchMode := ""
	if firstFlag {
		searchMode = config.SearchModeFirst
	}
	return commands.CrackOptions{
		Plaintext:  plaintextFlag,
		Ciphertext: ciphertextFlag,
		InputMode:  modeFlag,
		SearchMode: searchMode,
		Timeout:    timeoutFlag,
		Workers:    workersFlag,
	}
}

func graphWidth() int {
	if widthFlag > 0 {
		return widthFlag
	}
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}
