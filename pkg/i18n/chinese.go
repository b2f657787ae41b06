package i18n

func chineseSet() TranslationSet {
	return TranslationSet{
		ErrorOccurred:             "发生错误！请在 https://github.com/christophe-duc/lazysdes/issues 提交问题",
		InvalidKeyLengthError:     "密钥长度必须为10位，例如 1010000010",
		InvalidBlockLengthError:   "分组长度必须为8位，二进制消息长度必须是8的倍数",
		InvalidBitCharacterError:  "二进制输入只能包含0和1，文本输入只能包含ASCII字符",
		SearchTimedOutError:       "暴力破解超时！请调大配置中的 search.timeout 或使用 --timeout",
		MissingKeyError:           "未提供密钥。请使用 --key 或在配置中设置 cipher.defaultKey",
		MissingInputError:         "没有输入内容",
		UnsupportedLanguageError:  "不支持的语言：",
		UnrecognisedCipherMode:    "无法识别的模式，请使用 binary 或 ascii",
		UnrecognisedSearchMode:    "无法识别的破解模式，请使用 all 或 first",
		CannotStopProgressWarning: "无法停止进度指示",

		Key:                  "密钥",
		Subkey1:              "K1",
		Subkey2:              "K2",
		Plaintext:            "明文",
		Ciphertext:           "密文",
		Binary:               "二进制",
		Text:                 "文本",
		GarbledText:          "字符展示 (乱码)",
		Block:                "分组",
		Matches:              "匹配数",
		Checked:              "已检查",
		Elapsed:              "耗时",
		Workers:              "线程数",
		Mode:                 "模式",
		Searching:            "正在破解中",
		FoundKeys:            "找到 {{count}} 个匹配的密钥",
		FoundFirstKey:        "找到一个匹配的密钥",
		NoKeysFound:          "已检查全部 {{total}} 个密钥，未找到任何匹配的密钥",
		SearchTimedOut:       "破解超时，仅检查了 {{checked}}/{{total}} 个密钥，结果可能不完整",
		CollisionNote:        "存在密钥碰撞：多个密钥可以得到相同的明密文对",
		FirstMatchNote:       "只返回第一个匹配的密钥，可能还有其他密钥匹配；使用 --mode all 查看全部",
		AnalysisTitle:        "明文 {{plaintext}} 的密钥碰撞分析",
		DistinctCiphertexts:  "不同密文数",
		UnreachedCiphertexts: "无法得到的密文数",
		MaxCollisions:        "单个密文的最多密钥数",
		MinCollisions:        "单个密文的最少密钥数",
		MostCollided:         "碰撞最多的密文",
		CouldNotFindStatPath: "找不到字段：",
	}
}
