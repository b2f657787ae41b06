package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/OpenPeeDeeP/xdg"
	yaml "github.com/jesseduffield/yaml"
)

// AppConfig contains the base configuration fields required for lazysdes.
type AppConfig struct {
	Debug       bool   `long:"debug" env:"DEBUG" default:"false"`
	Version     string `long:"version" env:"VERSION" default:"unversioned"`
	Commit      string `long:"commit" env:"COMMIT"`
	BuildDate   string `long:"build-date" env:"BUILD_DATE"`
	Name        string `long:"name" env:"NAME" default:"lazysdes"`
	BuildSource string `long:"build-source" env:"BUILD_SOURCE" default:""`
	UserConfig  *UserConfig
	ConfigDir   string
}

// UserConfig holds all of the user-configurable options. The fields here are all in PascalCase but in your actual config.yml they'll be in camelCase. You can view the default config with `lazysdes --config`.
type UserConfig struct {
	// Language is one of "auto", "en" or "zh". auto picks the language from your environment
	Language string `yaml:"language,omitempty"`

	// Search configures the brute force key search
	Search SearchConfig `yaml:"search,omitempty"`

	// Cipher configures the encrypt and decrypt commands
	Cipher CipherConfig `yaml:"cipher,omitempty"`

	// Analysis configures the graphs drawn by the analyze command
	Analysis AnalysisConfig `yaml:"analysis,omitempty"`
}

// SearchConfig configures the brute force key search
type SearchConfig struct {
	// Timeout is how long a search may run before giving up. A search that gives up reports that it timed out rather than reporting that no keys were found
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// Workers is the size of the worker pool. 0 means one worker per CPU
	Workers int `yaml:"workers,omitempty"`

	// BatchSize is how many candidate keys a worker takes at a time
	BatchSize int `yaml:"batchSize,omitempty"`

	// Mode is either "all", which tests every key and returns every match, or "first", which stops at the first match. Because many keys collide on a single plaintext/ciphertext pair, "first" may well return a key other than the one you used
	Mode string `yaml:"mode,omitempty"`

	// ProgressInterval is how often the progress spinner is refreshed
	ProgressInterval time.Duration `yaml:"progressInterval,omitempty"`
}

// CipherConfig configures the encrypt and decrypt commands
type CipherConfig struct {
	// Mode is "binary" (input and output are strings of 0s and 1s) or "ascii" (the plaintext is text, one character per block)
	Mode string `yaml:"mode,omitempty"`

	// DefaultKey is used when no key is passed on the command line. Leave blank to always require one
	DefaultKey string `yaml:"defaultKey,omitempty"`
}

// AnalysisConfig contains the stuff relating to the collision graphs
type AnalysisConfig struct {
	// Graphs contains the configuration for the graphs we want to show
	Graphs []GraphConfig `yaml:"graphs,omitempty"`
}

// GraphConfig specifies how to make a graph of a collision report
type GraphConfig struct {
	// Min sets the minimum value that you want to display. If you want to set this, you should also set MinType to "static".
	Min float64 `yaml:"min,omitempty"`

	// Max sets the maximum value that you want to display. If you want to set this, you should also set MaxType to "static".
	Max float64 `yaml:"max,omitempty"`

	// Height sets the height of the graph in ascii characters
	Height int `yaml:"height,omitempty"`

	// Caption sets the caption of the graph
	Caption string `yaml:"caption,omitempty"`

	// StatPath is the path to the series you want to display, based on the Report struct in the analysis package, e.g. "KeysPerCiphertext"
	StatPath string `yaml:"statPath,omitempty"`

	// Color determines the color of the graph. This can be any color attribute, e.g. 'blue', 'green'
	Color string `yaml:"color,omitempty"`

	// MinType and MaxType are each one of "", "static". blank means the min/max of the data set will be used. "static" means the min/max specified will be used
	MinType string `yaml:"minType,omitempty"`

	// MaxType is just like MinType but for the max value
	MaxType string `yaml:"maxType,omitempty"`
}

const (
	SearchModeAll   = "all"
	SearchModeFirst = "first"

	CipherModeBinary = "binary"
	CipherModeASCII  = "ascii"
)

// GetDefaultConfig returns the application default configuration
// NOTE (to contributors, not users): do not default a boolean to true, because false is the boolean zero value and this will be ignored when parsing the user's config
func GetDefaultConfig() UserConfig {
	return UserConfig{
		Language: "auto",
		Search: SearchConfig{
			Timeout:          time.Minute,
			Workers:          0,
			BatchSize:        16,
			Mode:             SearchModeAll,
			ProgressInterval: 100 * time.Millisecond,
		},
		Cipher: CipherConfig{
			Mode:       CipherModeBinary,
			DefaultKey: "",
		},
		Analysis: AnalysisConfig{
			Graphs: []GraphConfig{
				{
					Caption:  "Keys per ciphertext",
					StatPath: "KeysPerCiphertext",
					Color:    "blue",
					Height:   10,
				},
			},
		},
	}
}

// NewAppConfig makes a new app config
func NewAppConfig(name, version, commit, date string, buildSource string, debuggingFlag bool) (*AppConfig, error) {
	configDir, err := findOrCreateConfigDir(name)
	if err != nil {
		return nil, err
	}

	userConfig, err := loadUserConfigWithDefaults(configDir)
	if err != nil {
		return nil, err
	}

	if err := userConfig.Validate(); err != nil {
		return nil, err
	}

	appConfig := &AppConfig{
		Name:        name,
		Version:     version,
		Commit:      commit,
		BuildDate:   date,
		Debug:       debuggingFlag || os.Getenv("DEBUG") == "TRUE",
		BuildSource: buildSource,
		UserConfig:  userConfig,
		ConfigDir:   configDir,
	}

	return appConfig, nil
}

func findOrCreateConfigDir(projectName string) (string, error) {
	folder := os.Getenv("CONFIG_DIR")
	if folder == "" {
		folder = xdg.New("jesseduffield", projectName).ConfigHome()
	}

	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", err
	}

	return folder, nil
}

func loadUserConfigWithDefaults(configDir string) (*UserConfig, error) {
	config := GetDefaultConfig()

	return loadUserConfig(configDir, &config)
}

func loadUserConfig(configDir string, base *UserConfig) (*UserConfig, error) {
	fileName := filepath.Join(configDir, "config.yml")

	if _, err := os.Stat(fileName); err != nil {
		if os.IsNotExist(err) {
			file, err := os.Create(fileName)
			if err != nil {
				return nil, err
			}
			file.Close()
		} else {
			return nil, err
		}
	}

	content, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(content, base); err != nil {
		return nil, err
	}

	return base, nil
}

// WriteToUserConfig allows you to set a value on the user config to be saved
// note that if you set a zero-value, it may be ignored e.g. a false or 0 or empty string
// this is because we are using the omitempty yaml directive so that we don't write a heap
// of zero values to the user's config.yml
func (c *AppConfig) WriteToUserConfig(updateConfig func(*UserConfig) error) error {
	userConfig, err := loadUserConfig(c.ConfigDir, &UserConfig{})
	if err != nil {
		return err
	}

	if err := updateConfig(userConfig); err != nil {
		return err
	}

	out, err := yaml.Marshal(userConfig)
	if err != nil {
		return err
	}

	return os.WriteFile(c.ConfigFilename(), out, 0o666)
}

// ConfigFilename returns the filename of the current config file
func (c *AppConfig) ConfigFilename() string {
	return filepath.Join(c.ConfigDir, "config.yml")
}
