package i18n

import (
	"sort"
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides values substituted into "{key}" placeholders (for example,
// "letters" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"required":                "{field} is required",
		"orientation_length":      "orientation must be a string of length 3",
		"orientation_letter":      "orientation must be a string of {letters}",
		"orientation_axis":        "orientation must be unique dimensions (AP, LR, SI)",
		"invalid_extent":          "extent must be 3 positive numbers",
		"unknown_space":           `unknown predefined space "{key}"`,
		"missing_target":          `"target" (the target table that contains the objects that have these coordinates) must be provided if the "{column}" column is not in "columns"`,
		"image_and_plane":         `only one of "image" or "imaging_plane" can be provided`,
		"image_or_plane_required": `one of "image" or "imaging_plane" must be provided`,
		"shape_mismatch":          "x, y, z shapes {x}, {y}, {z} must match image data shape {image}",
		"shape_inconsistent":      "{field} shape {got} must match x shape {want}",
		"out_of_range":            "index ({i}, {j}) is out of range for shape {shape}",
		"duplicate_name":          `{kind} "{name}" already exists`,
		"dangling_reference":      `{kind} "{name}" references {target} "{ref}" which is not attached`,
		"invalid_type":            "invalid type",
		"invalid_value":           `{field} fails rule "{rule}"`,
		"fixed_value":             `{field} of {type} must be {want}`,
		"unknown_namespace":       `unknown namespace "{name}"`,
		"parse_error":             "parse error: {error}",
		"duplicate_key":           `key "{key}" appears more than once`,
	},
	"ja": {
		"required":                "{field} は必須です",
		"orientation_length":      "orientation は長さ 3 の文字列でなければなりません",
		"orientation_letter":      "orientation は {letters} のいずれかで構成されなければなりません",
		"orientation_axis":        "orientation の各軸は重複できません (AP, LR, SI)",
		"invalid_extent":          "extent は 3 つの正の数でなければなりません",
		"unknown_space":           `未知の定義済み空間です "{key}"`,
		"missing_target":          `"columns" に "{column}" 列がない場合は "target" が必要です`,
		"image_and_plane":         `"image" と "imaging_plane" は同時に指定できません`,
		"image_or_plane_required": `"image" または "imaging_plane" のどちらかが必要です`,
		"shape_mismatch":          "x, y, z の形状 {x}, {y}, {z} は画像データの形状 {image} と一致しなければなりません",
		"shape_inconsistent":      "{field} の形状 {got} は x の形状 {want} と一致しなければなりません",
		"out_of_range":            "インデックス ({i}, {j}) は形状 {shape} の範囲外です",
		"duplicate_name":          `{kind} "{name}" は既に存在します`,
		"dangling_reference":      `{kind} "{name}" が参照する {target} "{ref}" は登録されていません`,
		"invalid_type":            "型が不正です",
		"invalid_value":           `{field} がルール "{rule}" を満たしません`,
		"fixed_value":             `{type} の {field} は {want} でなければなりません`,
		"unknown_namespace":       `未知の名前空間です "{name}"`,
		"parse_error":             "解析エラー: {error}",
		"duplicate_key":           `キー "{key}" が重複しています`,
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := dictionaries[t.lang][code]
	if !ok {
		tmpl, ok = dictionaries["en"][code]
	}
	if !ok {
		return code
	}
	return expand(tmpl, data)
}

func expand(tmpl string, data map[string]string) string {
	if len(data) == 0 {
		return tmpl
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", data[k])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	mu.Lock()
	defer mu.Unlock()
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
