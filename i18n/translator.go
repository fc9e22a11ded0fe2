package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "unknown_key":
			return "未知のキーです"
		case "too_short":
			return "短すぎます"
		case "invalid_child":
			return "子要素はテキストか要素ノードでなければなりません"
		case "children_forbidden":
			return "子要素を持てません"
		case "anyof_mismatch":
			return "どの候補スキーマにも一致しません"
		case "schema_mismatch":
			return "スキーマに一致しません"
		case "immutable":
			return "凍結済みオブジェクトは変更できません"
		case "bad_ref":
			return "スキーマ参照を解決できません"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "required":
			return "required property missing"
		case "unknown_key":
			return "unknown key"
		case "too_short":
			return "too short"
		case "invalid_child":
			return "children must be text or element nodes"
		case "children_forbidden":
			return "cannot have children"
		case "anyof_mismatch":
			return "no candidate schema matched"
		case "schema_mismatch":
			return "value did not match the schema"
		case "immutable":
			return "cannot change frozen object"
		case "bad_ref":
			return "unresolved schema reference"
		case "parse_error":
			return "parse error"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
