// Package textnorm provides the text primitives shared by the correction
// passes and the safety validator: span-preserving tokenisation,
// macron-insensitive folding, and Māori alphabet legality checks.
package textnorm

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Token is a word in the source text together with its byte span.
type Token struct {
	Text  string
	Start int
	End   int
}

// Tokenize splits s into word tokens. A word is a run of letters, combining
// marks and digits; an apostrophe is kept when it sits between two letters.
// Everything else separates words. Byte offsets refer to s.
func Tokenize(s string) []Token {
	var tokens []Token
	start := -1
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		inWord := isWordRune(r)
		if !inWord && isApostrophe(r) && start >= 0 {
			next, _ := utf8.DecodeRuneInString(s[i+size:])
			inWord = unicode.IsLetter(next)
		}
		switch {
		case inWord && start < 0:
			start = i
		case !inWord && start >= 0:
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i})
			start = -1
		}
		i += size
	}
	if start >= 0 {
		tokens = append(tokens, Token{Text: s[start:], Start: start, End: len(s)})
	}
	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Mn, r) || unicode.IsDigit(r)
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

// stripMarks hands out mark-removing transformers. A transform.Chain keeps
// internal buffers, so each call needs its own.
var stripMarks = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	},
}

// Fold lower-cases s and removes diacritics, so "Ōtākaro", "otakaro" and
// "OTĀKARO" share one key.
func Fold(s string) string {
	t := stripMarks.Get().(transform.Transformer)
	defer stripMarks.Put(t)
	folded, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return folded
}

// FoldPhrase folds every word of s and joins them with single spaces.
func FoldPhrase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = Fold(w)
	}
	return strings.Join(words, " ")
}

// IllegalLetters returns the distinct letters of word that do not belong to
// the Māori alphabet (a e h i k m n o p r t u w, with g only in "ng").
// Comparison is case-insensitive and ignores macrons. Non-letters are
// skipped.
func IllegalLetters(word string) []rune {
	folded := []rune(Fold(word))
	var bad []rune
	for i, r := range folded {
		if !unicode.IsLetter(r) || isMaoriLetter(r) {
			continue
		}
		if r == 'g' && i > 0 && folded[i-1] == 'n' {
			continue
		}
		if !containsRune(bad, r) {
			bad = append(bad, r)
		}
	}
	return bad
}

// HasIllegalLetter reports whether word contains at least one letter outside
// the Māori alphabet.
func HasIllegalLetter(word string) bool {
	return len(IllegalLetters(word)) > 0
}

func isMaoriLetter(r rune) bool {
	switch r {
	case 'a', 'e', 'h', 'i', 'k', 'm', 'n', 'o', 'p', 'r', 't', 'u', 'w':
		return true
	}
	return false
}

func containsRune(rs []rune, r rune) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}

// englishWords are the English words allowed to appear inside canonical
// names, such as "Te Whakarewarewa Village".
var englishWords = map[string]struct{}{
	"village": {}, "tours": {}, "tour": {}, "centre": {}, "center": {},
	"cafe": {}, "lodge": {}, "museum": {}, "park": {}, "gardens": {},
	"garden": {}, "experience": {}, "experiences": {}, "cruises": {},
	"cruise": {}, "hot": {}, "pools": {}, "springs": {}, "lake": {},
	"river": {}, "island": {}, "mount": {}, "wildlife": {}, "reserve": {},
	"the": {}, "of": {}, "and": {}, "on": {}, "adventures": {},
	"gondola": {}, "jet": {}, "whale": {}, "watch": {}, "sound": {},
	"heritage": {}, "cultural": {}, "trust": {}, "concert": {},
	"valley": {}, "track": {}, "walks": {}, "glacier": {}, "glowworm": {},
	"caves": {}, "spa": {}, "thermal": {}, "bay": {},
	"harbour": {}, "peninsula": {}, "national": {}, "great": {}, "walk": {},
	"arts": {}, "crafts": {}, "institute": {}, "encounter": {}, "dolphin": {},
	"south": {}, "north": {}, "new": {}, "zealand": {}, "plains": {},
	"living": {}, "tourism": {}, "rock": {}, "art": {}, "buried": {},
	"willowbank": {}, "rainbow": {}, "orchard": {},
}

// IsEnglishWord reports whether w is a known English word that may appear in
// a canonical name without violating alphabet legality.
func IsEnglishWord(w string) bool {
	_, ok := englishWords[Fold(w)]
	return ok
}

// commonEnglish holds frequent English words that are never reported as
// illegal letters in cultural context, even when no cultural term sounds
// like them. It extends englishWords for that one purpose only.
var commonEnglish = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "across": {}, "after": {}, "again": {},
	"against": {}, "all": {}, "almost": {}, "along": {}, "also": {},
	"always": {}, "am": {}, "an": {}, "and": {}, "any": {}, "are": {},
	"around": {}, "as": {}, "ask": {}, "at": {}, "away": {}, "back": {},
	"bad": {}, "be": {}, "because": {}, "been": {}, "before": {},
	"behind": {}, "being": {}, "below": {}, "best": {}, "better": {},
	"between": {}, "big": {}, "black": {}, "blue": {}, "book": {},
	"booked": {}, "booking": {}, "both": {}, "bring": {}, "brought": {},
	"bus": {}, "but": {}, "buy": {}, "by": {}, "call": {}, "called": {},
	"came": {}, "can": {}, "car": {}, "card": {}, "carved": {}, "carving": {},
	"carvings": {}, "child": {}, "children": {}, "city": {}, "class": {},
	"close": {}, "cold": {}, "come": {}, "coming": {}, "could": {},
	"country": {}, "cultural": {}, "culture": {}, "daily": {}, "day": {},
	"days": {}, "did": {}, "different": {}, "do": {}, "does": {}, "dog": {},
	"done": {}, "down": {}, "during": {}, "each": {}, "early": {}, "east": {},
	"easy": {}, "eat": {}, "eating": {}, "eight": {}, "enjoy": {},
	"enjoyed": {}, "even": {}, "evening": {}, "every": {}, "everyone": {},
	"everything": {}, "experience": {}, "fake": {}, "family": {}, "far": {},
	"fast": {}, "feel": {}, "festival": {}, "few": {}, "find": {},
	"first": {}, "five": {}, "fly": {}, "food": {}, "for": {}, "found": {},
	"four": {}, "free": {}, "friday": {}, "friend": {}, "friends": {},
	"gather": {}, "gathered": {},
	"from": {}, "full": {}, "fun": {}, "gave": {}, "get": {}, "gift": {},
	"gifts": {}, "give": {}, "given": {}, "go": {}, "going": {}, "gold": {},
	"good": {}, "got": {}, "great": {}, "green": {}, "group": {},
	"groups": {}, "guest": {}, "guests": {}, "guide": {}, "guided": {},
	"guides": {}, "had": {}, "half": {}, "has": {}, "have": {}, "having": {},
	"heard": {}, "help": {}, "here": {}, "high": {}, "highway": {}, "him": {},
	"his": {}, "history": {}, "hold": {}, "holiday": {}, "how": {}, "if": {},
	"important": {}, "in": {}, "inside": {}, "into": {}, "is": {}, "it": {},
	"its": {}, "just": {}, "keep": {}, "kids": {}, "kind": {}, "know": {},
	"large": {}, "last": {}, "late": {}, "later": {}, "learn": {},
	"learned": {}, "learning": {}, "left": {}, "less": {}, "let": {},
	"life": {}, "like": {}, "listen": {}, "little": {}, "live": {},
	"local": {}, "long": {}, "look": {}, "lovely": {}, "made": {}, "make": {},
	"many": {}, "may": {}, "meal": {}, "meet": {}, "meeting": {}, "met": {},
	"might": {}, "mile": {}, "miles": {}, "monday": {}, "month": {},
	"more": {}, "morning": {}, "most": {}, "much": {}, "museum": {},
	"music": {}, "must": {}, "my": {}, "name": {}, "near": {}, "need": {},
	"never": {}, "next": {}, "nice": {}, "night": {}, "no": {}, "north": {},
	"not": {}, "now": {}, "of": {}, "off": {}, "office": {}, "old": {},
	"on": {}, "once": {}, "one": {}, "only": {}, "open": {}, "or": {},
	"other": {}, "our": {}, "out": {}, "outside": {}, "over": {}, "own": {},
	"paid": {}, "party": {}, "past": {}, "people": {}, "perform": {},
	"performance": {}, "performances": {}, "person": {}, "place": {},
	"places": {}, "play": {}, "please": {}, "price": {}, "private": {},
	"program": {}, "programme": {}, "public": {}, "put": {}, "quite": {},
	"read": {}, "ready": {}, "really": {}, "rest": {}, "ride": {},
	"right": {}, "road": {}, "room": {}, "run": {}, "said": {}, "same": {},
	"saturday": {}, "saw": {}, "say": {}, "school": {}, "sea": {},
	"season": {}, "see": {}, "seen": {}, "sell": {}, "served": {},
	"service": {}, "set": {}, "seven": {}, "shall": {}, "share": {},
	"she": {}, "shop": {}, "short": {}, "should": {}, "show": {}, "shows": {},
	"side": {}, "since": {}, "six": {}, "small": {}, "so": {}, "some": {},
	"something": {}, "soon": {}, "south": {}, "special": {}, "spend": {},
	"spent": {}, "spoke": {}, "spring": {}, "start": {}, "state": {},
	"stay": {}, "stayed": {}, "staying": {}, "still": {}, "stop": {},
	"story": {}, "stories": {}, "street": {}, "style": {}, "such": {},
	"summer": {}, "sunday": {}, "sure": {}, "take": {}, "taken": {},
	"talk": {}, "tell": {}, "ten": {}, "than": {}, "thank": {}, "thanks": {},
	"that": {}, "the": {}, "their": {}, "them": {}, "then": {}, "there": {},
	"these": {}, "they": {}, "thing": {}, "things": {}, "think": {},
	"this": {}, "those": {}, "three": {}, "through": {}, "thursday": {},
	"time": {}, "times": {}, "to": {}, "today": {}, "together": {},
	"told": {}, "too": {}, "took": {}, "top": {}, "tour": {}, "tourist": {},
	"tourists": {}, "town": {}, "travel": {}, "tried": {}, "trip": {},
	"trips": {}, "true": {}, "try": {}, "tuesday": {}, "two": {}, "under": {},
	"until": {}, "up": {}, "us": {}, "use": {}, "used": {}, "very": {},
	"view": {}, "visit": {}, "visited": {}, "visiting": {}, "visitors": {},
	"visits": {}, "walk": {}, "walked": {}, "walking": {}, "want": {},
	"was": {}, "water": {}, "way": {}, "we": {}, "wednesday": {}, "week": {},
	"weekend": {}, "welcome": {}, "well": {}, "went": {}, "were": {},
	"west": {}, "what": {}, "when": {}, "where": {}, "which": {}, "while": {},
	"who": {}, "why": {}, "will": {}, "winter": {}, "with": {}, "within": {},
	"without": {}, "world": {}, "would": {}, "year": {}, "years": {},
	"yes": {}, "yesterday": {}, "yet": {}, "you": {}, "young": {}, "your": {},
}

// IsCommonEnglish reports whether w is a frequent English word or one of the
// English words allowed in canonical names.
func IsCommonEnglish(w string) bool {
	key := Fold(w)
	if _, ok := commonEnglish[key]; ok {
		return true
	}
	_, ok := englishWords[key]
	return ok
}

// IsAllLower reports whether s contains at least one letter and no upper-case
// letters.
func IsAllLower(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsUpper(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
