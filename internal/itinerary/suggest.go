package itinerary

import (
	"strings"
	"unicode"
)

// titleSeparators split a day title such as "淺草寺 → 晴空塔 · 上野公園" into
// candidate place names. Plain spaces are not separators: many place names
// contain them.
var titleSeparators = []string{
	"→", "⇀", "➔", "->", "=>", "－", "—", "–", "~", "～",
	"、", ",", "，", "/", "／", "|", "｜", "+", "＋", "·", "・", "&", "＆",
	"(", ")", "（", "）", "【", "】", "「", "」",
}

// genericTitleTokens are transport, lodging and meal words that show up in
// day titles but never name an attraction.
var genericTitleTokens = map[string]struct{}{
	"機場": {}, "國際機場": {}, "桃園機場": {}, "airport": {},
	"飯店": {}, "酒店": {}, "旅館": {}, "hotel": {}, "入住": {}, "check-in": {}, "check in": {},
	"早餐": {}, "午餐": {}, "晚餐": {}, "breakfast": {}, "lunch": {}, "dinner": {},
	"自由活動": {}, "free time": {}, "返回": {}, "出發": {}, "抵達": {}, "集合": {},
	"溫暖的家": {}, "home": {},
}

// TitleTokens splits a day title on the separator glyphs and drops empty,
// generic and punctuation-only tokens.
func TitleTokens(title string) []string {
	s := title
	for _, sep := range titleSeparators {
		s = strings.ReplaceAll(s, sep, "\x00")
	}

	seen := make(map[string]struct{})
	var tokens []string
	for _, raw := range strings.Split(s, "\x00") {
		tok := strings.TrimSpace(raw)
		if tok == "" || isPunctuationOnly(tok) {
			continue
		}
		key := strings.ToLower(tok)
		if _, generic := genericTitleTokens[key]; generic {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		tokens = append(tokens, tok)
	}
	return tokens
}

// IsSuggested reports whether a catalog name matches any title token, in
// either containment direction, ignoring case.
func IsSuggested(name string, tokens []string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return false
	}
	for _, t := range tokens {
		lt := strings.ToLower(t)
		if strings.Contains(n, lt) || strings.Contains(lt, n) {
			return true
		}
	}
	return false
}

func isPunctuationOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
