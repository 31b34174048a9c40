package intent

import (
	"strings"
	"testing"
)

func TestMatchCreatorEveryPhrase(t *testing.T) {
	for _, phrase := range CreatorPhrases() {
		if !IsCreatorQuestion(phrase) {
			t.Fatalf("expected %q to match", phrase)
		}
		if !IsCreatorQuestion("hello, " + phrase + " please?") {
			t.Fatalf("expected %q to match inside a sentence", phrase)
		}
	}
}

func TestMatchCreatorIgnoresLatinCase(t *testing.T) {
	phrase, ok := MatchCreator("Hey, WHO Built You anyway?")
	if !ok {
		t.Fatal("expected upper-case question to match")
	}
	if phrase != "who built you" {
		t.Fatalf("unexpected phrase: %s", phrase)
	}
}

func TestMatchCreatorArabicSubstring(t *testing.T) {
	for _, msg := range []string{
		"من برمجك؟",
		"قل لي من مبرمجك؟",
		"من صنعك يا صديقي",
	} {
		if !IsCreatorQuestion(msg) {
			t.Fatalf("expected %q to match", msg)
		}
	}
}

func TestMatchCreatorNoMatch(t *testing.T) {
	for _, msg := range []string{
		"What is the capital of France?",
		"who made this pizza",
		"",
		"ما هي عاصمة فرنسا؟",
	} {
		if IsCreatorQuestion(msg) {
			t.Fatalf("did not expect %q to match", msg)
		}
	}
}

func TestCreatorPhrasesReturnsCopy(t *testing.T) {
	phrases := CreatorPhrases()
	phrases[0] = "mutated"
	if CreatorPhrases()[0] == "mutated" {
		t.Fatal("CreatorPhrases must not expose the internal slice")
	}
}

func TestCreatorReplyCarriesContact(t *testing.T) {
	if !strings.Contains(CreatorReply, "othmanalif10@gmail.com") {
		t.Fatal("reply must include the contact email")
	}
}
