package i18n

func englishSet() TranslationSet {
	return TranslationSet{
		ErrorOccurred:             "An error occurred! Please create an issue at https://github.com/christophe-duc/lazysdes/issues",
		InvalidKeyLengthError:     "A key must be exactly 10 bits, e.g. 1010000010",
		InvalidBlockLengthError:   "A block must be exactly 8 bits, and a binary message a multiple of 8 bits",
		InvalidBitCharacterError:  "Binary input may only contain 0 and 1, and text input may only contain ASCII characters",
		SearchTimedOutError:       "The search did not finish in time. Raise search.timeout in your config or pass --timeout",
		MissingKeyError:           "No key given. Pass one with --key or set cipher.defaultKey in your config",
		MissingInputError:         "Nothing to process. Pass the input as an argument",
		UnsupportedLanguageError:  "Language not found: ",
		UnrecognisedCipherMode:    "Unrecognised mode. Use binary or ascii",
		UnrecognisedSearchMode:    "Unrecognised search mode. Use all or first",
		CannotStopProgressWarning: "Could not stop the progress indicator",

		Key:                  "Key",
		Subkey1:              "K1",
		Subkey2:              "K2",
		Plaintext:            "Plaintext",
		Ciphertext:           "Ciphertext",
		Binary:               "Binary",
		Text:                 "Text",
		GarbledText:          "As text (garbled)",
		Block:                "Block",
		Matches:              "Matches",
		Checked:              "Checked",
		Elapsed:              "Elapsed",
		Workers:              "Workers",
		Mode:                 "Mode",
		Searching:            "searching",
		FoundKeys:            "Found {{count}} matching key(s)",
		FoundFirstKey:        "Found a matching key",
		NoKeysFound:          "Searched all {{total}} keys: none maps this plaintext to this ciphertext",
		SearchTimedOut:       "Search timed out after checking {{checked}} of {{total}} keys, so the keys below may be incomplete",
		CollisionNote:        "Several keys produce this pair. Any of them decrypts it, but only one of them was used",
		FirstMatchNote:       "Stopped at the first match. Other keys may match too; use --mode all to list them",
		AnalysisTitle:        "Key collisions for plaintext {{plaintext}}",
		DistinctCiphertexts:  "Distinct ciphertexts",
		UnreachedCiphertexts: "Unreachable ciphertexts",
		MaxCollisions:        "Most keys on one ciphertext",
		MinCollisions:        "Fewest keys on a reachable ciphertext",
		MostCollided:         "Most collided ciphertext",
		CouldNotFindStatPath: "Could not find key: ",
	}
}
