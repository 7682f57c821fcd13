package localcache

import "strings"

// LanguageNames maps supported game-client locale codes to human-readable
// names.
var LanguageNames = map[string]string{
	"en_US": "English (United States)",
	"fr_FR": "French (France)",
	"de_DE": "German (Germany)",
	"es_ES": "Spanish (Spain)",
	"it_IT": "Italian (Italy)",
	"ja_JP": "Japanese (Japan)",
	"ko_KR": "Korean (South Korea)",
	"pl_PL": "Polish (Poland)",
	"pt_BR": "Portuguese (Brazil)",
	"ru_RU": "Russian (Russia)",
	"zh_CN": "Chinese (Simplified)",
	"zh_TW": "Chinese (Traditional)",
}

// ShortCodeToLocale maps short language codes to full locale codes.
var ShortCodeToLocale = map[string]string{
	"en": "en_US",
	"fr": "fr_FR",
	"de": "de_DE",
	"es": "es_ES",
	"it": "it_IT",
	"ja": "ja_JP",
	"ko": "ko_KR",
	"pl": "pl_PL",
	"pt": "pt_BR",
	"ru": "ru_RU",
	"zh": "zh_CN",
}

// GetLanguageName returns the human-readable name for a locale code.
// Falls back to the code itself if not found.
func GetLanguageName(langCode string) string {
	code := NormalizeLocale(langCode)
	if name, ok := LanguageNames[code]; ok {
		return name
	}
	// Try expanding short code
	if locale, ok := ShortCodeToLocale[strings.ToLower(code)]; ok {
		if name, ok := LanguageNames[locale]; ok {
			return name
		}
	}
	return langCode
}

// NormalizeLocale converts a locale code to the standard format (e.g.,
// "fr-FR" → "fr_FR").
func NormalizeLocale(langCode string) string {
	return strings.ReplaceAll(langCode, "-", "_")
}

// IsSupportedLocale reports whether the code names a supported game-client
// locale, either in full ("ja_JP") or short ("ja") form.
func IsSupportedLocale(langCode string) bool {
	code := NormalizeLocale(langCode)
	if _, ok := LanguageNames[code]; ok {
		return true
	}
	_, ok := ShortCodeToLocale[strings.ToLower(code)]
	return ok
}
