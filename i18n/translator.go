package i18n

import (
	"fmt"
	"strings"
)

// Translator retrieves localized messages for Failure codes.
// data provides optional parameters to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]any) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]any) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return expand("値は{expected}ではありません", data)
		case "required":
			return expand("{key}は必須です", data)
		case "unknown_key":
			return expand("{key}は許可されていないキーです", data)
		case "too_short":
			return expand("リストの長さが{min}未満です", data)
		case "too_long":
			return expand("リストの長さが{max}を超えています", data)
		case "too_small":
			if _, strict := data["gt"]; strict {
				return expand("値は{gt}より大きい必要があります", data)
			}
			return expand("値が{min}未満です", data)
		case "too_big":
			if _, strict := data["lt"]; strict {
				return expand("値は{lt}より小さい必要があります", data)
			}
			return expand("値が{max}を超えています", data)
		case "blank":
			return "空の値は許可されていません"
		case "invalid_enum":
			return "値がどのバリアントにも一致しません"
		case "no_match":
			return "一致するコントラクトがありません"
		case "not_callable":
			return "値は呼び出し可能ではありません"
		case "invalid_format":
			return expand("値は{format}ではありません", data)
		}
	default: // "en"
		switch code {
		case "invalid_type":
			switch data["expected"] {
			case "bool":
				return "value should be true or false"
			case "null":
				return "value should be null"
			}
			return expand("value is not {expected}", data)
		case "required":
			return expand("{key} is required", data)
		case "unknown_key":
			return expand("{key} is not allowed key", data)
		case "too_short":
			return expand("list length is less than {min}", data)
		case "too_long":
			return expand("list length is greater than {max}", data)
		case "too_small":
			// Strict bounds read "should be"; inclusive bounds read plain
			// comparisons, matching the documented message set.
			if _, strict := data["gt"]; strict {
				return expand("value should be greater than {gt}", data)
			}
			return expand("value is less than {min}", data)
		case "too_big":
			if _, strict := data["lt"]; strict {
				return expand("value should be less than {lt}", data)
			}
			return expand("value is greater than {max}", data)
		case "blank":
			return "blank value is not allowed"
		case "invalid_enum":
			return "value doesn't match any variant"
		case "no_match":
			return "no one contract matches"
		case "not_callable":
			return "value is not callable"
		case "invalid_format":
			return expand("value is not {format}", data)
		}
	}
	return code
}

// expand substitutes {name} placeholders with formatted values from data.
func expand(tpl string, data map[string]any) string {
	if len(data) == 0 {
		return tpl
	}
	out := tpl
	for k, v := range data {
		out = strings.ReplaceAll(out, "{"+k+"}", fmt.Sprint(v))
	}
	return out
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
func T(code string, data map[string]any) string { return currentTranslator.Message(code, data) }
