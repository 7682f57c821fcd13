package localcache

import (
	"strings"

	"golang.org/x/text/language"
)

// LocalizedString holds one translation per supported game-client language.
// Resolution is field-based: a locale code selects its field, and any empty
// field or unknown locale falls back to English.
type LocalizedString struct {
	English             string
	French              string
	German              string
	Spanish             string
	Italian             string
	Japanese            string
	Korean              string
	Polish              string
	BrazilianPortuguese string
	Russian             string
	SimplifiedChinese   string
	TraditionalChinese  string
}

// ForLocale returns the text for the given locale code (full "fr_FR" or
// short "fr", dash or underscore). Unknown locales and empty fields fall
// back to English.
func (s LocalizedString) ForLocale(code string) string {
	if text := s.field(NormalizeLocale(code)); text != "" {
		return text
	}
	return s.English
}

// field maps a normalized locale code to its struct field. Traditional
// Chinese is the only locale distinguished by region; every other code
// resolves by base language.
func (s LocalizedString) field(locale string) string {
	if strings.EqualFold(locale, "zh_TW") {
		return s.TraditionalChinese
	}
	base := strings.ToLower(strings.Split(locale, "_")[0])
	switch base {
	case "en":
		return s.English
	case "fr":
		return s.French
	case "de":
		return s.German
	case "es":
		return s.Spanish
	case "it":
		return s.Italian
	case "ja":
		return s.Japanese
	case "ko":
		return s.Korean
	case "pl":
		return s.Polish
	case "pt":
		return s.BrazilianPortuguese
	case "ru":
		return s.Russian
	case "zh":
		return s.SimplifiedChinese
	}
	return ""
}

// supportedTags lists the locales ForTag matches against. English comes
// first: it is the matcher's fallback when nothing else fits.
var supportedTags = []language.Tag{
	language.MustParse("en-US"),
	language.MustParse("fr-FR"),
	language.MustParse("de-DE"),
	language.MustParse("es-ES"),
	language.MustParse("it-IT"),
	language.MustParse("ja-JP"),
	language.MustParse("ko-KR"),
	language.MustParse("pl-PL"),
	language.MustParse("pt-BR"),
	language.MustParse("ru-RU"),
	language.MustParse("zh-CN"),
	language.MustParse("zh-TW"),
}

// supportedLocales is index-parallel to supportedTags.
var supportedLocales = []string{
	"en_US", "fr_FR", "de_DE", "es_ES", "it_IT", "ja_JP",
	"ko_KR", "pl_PL", "pt_BR", "ru_RU", "zh_CN", "zh_TW",
}

var localeMatcher = language.NewMatcher(supportedTags)

// ForTag resolves an arbitrary BCP-47 tag to the closest supported locale
// and returns that text. Tags with no plausible match resolve to English.
func (s LocalizedString) ForTag(tag language.Tag) string {
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return s.English
	}
	return s.ForLocale(supportedLocales[idx])
}

// MatchLocale resolves an arbitrary BCP-47 string (e.g. "fr-CA") to the
// closest supported locale code, or "en_US" when nothing matches.
func MatchLocale(code string) string {
	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return "en_US"
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return "en_US"
	}
	return supportedLocales[idx]
}
