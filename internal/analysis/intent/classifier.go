package intent

import "strings"

// CreatorReply is returned verbatim when a message asks who built the assistant.
const CreatorReply = "أنا مساعد ذكي تم تطويري من قبل المطورين الأفارقة Othman & Leo عبر شركتهم الناشئة Connect AI 🌍\n\nللتحدث مع الفريق أو مناقشة أفكار مشاريعك، تواصل معنا مباشرة على:\n📧 othmanalif10@gmail.com"

// creatorPhrases are matched as substrings of the lower-cased message.
var creatorPhrases = []string{
	"who made you",
	"who created you",
	"who built you",
	"who developed you",
	"who are your creators",
	"who are your developers",
	"من صنعك",
	"من طورك",
	"من أنشأك",
	"من برمجه",
	"من برمجك",
	"من مبرمجك",
}

// CreatorPhrases returns a copy of the trigger phrase list.
func CreatorPhrases() []string {
	return append([]string(nil), creatorPhrases...)
}

// MatchCreator reports whether message contains a "who made you" phrase and
// returns the first phrase that matched. Matching is substring based, so the
// phrase may sit anywhere inside a longer sentence.
func MatchCreator(message string) (string, bool) {
	normalized := strings.ToLower(message)
	for _, phrase := range creatorPhrases {
		if strings.Contains(normalized, phrase) {
			return phrase, true
		}
	}
	return "", false
}

// IsCreatorQuestion is MatchCreator without the matched phrase.
func IsCreatorQuestion(message string) bool {
	_, ok := MatchCreator(message)
	return ok
}
