package i18n

// TranslationSet is a set of localised strings for a given language
type TranslationSet struct {
	ErrorOccurred             string
	InvalidKeyLengthError     string
	InvalidBlockLengthError   string
	InvalidBitCharacterError  string
	SearchTimedOutError       string
	MissingKeyError           string
	MissingInputError         string
	UnsupportedLanguageError  string
	UnrecognisedCipherMode    string
	UnrecognisedSearchMode    string
	CannotStopProgressWarning string

	Key                  string
	Subkey1              string
	Subkey2              string
	Plaintext            string
	Ciphertext           string
	Binary               string
	Text                 string
	GarbledText          string
	Block                string
	Matches              string
	Checked              string
	Elapsed              string
	Workers              string
	Mode                 string
	Searching            string
	FoundKeys            string
	FoundFirstKey        string
	NoKeysFound          string
	SearchTimedOut       string
	CollisionNote        string
	FirstMatchNote       string
	AnalysisTitle        string
	DistinctCiphertexts  string
	UnreachedCiphertexts string
	MaxCollisions        string
	MinCollisions        string
	MostCollided         string
	CouldNotFindStatPath string
}
