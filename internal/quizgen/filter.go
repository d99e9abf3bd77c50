package quizgen

import (
	"regexp"
	"strings"
)

// sensitiveKeywords mirrors the list used to keep distressing news out of a
// trivia context.
var sensitiveKeywords = []string{
	"sexual assault", "rape", "murder", "murdered", "kill", "killed", "death", "dead",
	"child abuse", "abuse", "assault", "shooting", "stabbing", "kidnap", "torture",
	"drugs", "human trafficking", "suicide", "harassment",
}

var punctuation = regexp.MustCompile(`[^\w\s]`)

// IsSensitive reports whether a question or any of its options mentions a
// sensitive keyword. Matching is case-insensitive with punctuation stripped.
// The predicate is pure; whether it is applied at all is a configuration
// decision of the assembler.
func IsSensitive(record QuestionRecord) bool {
	text := strings.Join([]string{
		record.Question,
		record.OptionA,
		record.OptionB,
		record.OptionC,
		record.OptionD,
	}, " ")
	text = punctuation.ReplaceAllString(strings.ToLower(text), "")

	for _, keyword := range sensitiveKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
