package quizgen

import (
	"fmt"

	"github.com/dailynewsquiz/newsquiz-lambda/internal/feed"
)

const promptTemplate = `You are a quiz generator.
Create **one multiple-choice question** (4 options) based on the following news article:

Title: %s
Description: %s

GUIDELINES:
- The question must be **self-contained** and make full sense without referencing "this article" or "the news".
- Avoid **obvious or tautological questions** (e.g., "Where did the Australian Cup take place?" -> "Australia").
- Avoid questions where the correct answer is **directly stated in the question itself**.
- The question should focus on **a meaningful fact or insight**: a cause, reason, outcome, statistic, quote, or specific detail.
- Include **real context** (names, dates, organizations, or events) to make it feel grounded and interesting.
- Keep it **clear, concise, and naturally phrased**, like something you'd see in a trivia game or smart news quiz.

Format as JSON:
{
  "Question": "string",
  "CorrectAnswer": "string",
  "WrongAnswer1": "string",
  "WrongAnswer2": "string",
  "WrongAnswer3": "string"
}`

func BuildPrompt(article feed.Article) string {
	return fmt.Sprintf(promptTemplate, article.Title, article.Description)
}
