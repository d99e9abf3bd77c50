package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dailynewsquiz/newsquiz-lambda/internal/feed"
	"github.com/dailynewsquiz/newsquiz-lambda/internal/quizgen"
)

const answerAttempts = 3

// QuizFetcher is the slice of the HTTP client the terminal player needs.
type QuizFetcher interface {
	GetQuiz(ctx context.Context, category string) (*quizgen.QuizDocument, error)
}

type review struct {
	question quizgen.QuestionRecord
	selected string
}

func Run(ctx context.Context, fetcher QuizFetcher, category string, in io.Reader, out io.Writer) error {
	_, key := feed.Resolve(category)
	if key != category && category != "" {
		fmt.Fprintf(out, "Unknown category %q, playing %q instead.\n", category, key)
	}

	doc, err := fetcher.GetQuiz(ctx, key)
	if err != nil {
		return err
	}
	if len(doc.Questions) == 0 {
		return fmt.Errorf("no questions available for category %q", key)
	}

	fmt.Fprintf(out, "Daily %s quiz for %s (%d questions)\n", doc.Category, doc.Date, len(doc.Questions))

	reader := bufio.NewReader(in)
	score := 0
	reviews := make([]review, 0, len(doc.Questions))

	for idx, question := range doc.Questions {
		printQuestion(out, idx+1, question)

		letter, ok := readAnswer(reader, out)
		fmt.Fprintln(out)
		if !ok {
			fmt.Fprintf(out, "Skipping. Correct answer was %s. %s\n", question.Answer, question.CorrectText())
			reviews = append(reviews, review{question: question})
			continue
		}

		if letter == question.Answer {
			fmt.Fprintln(out, "Correct!")
			score++
		} else {
			fmt.Fprintf(out, "Wrong. Correct answer was %s. %s\n", question.Answer, question.CorrectText())
		}
		reviews = append(reviews, review{question: question, selected: letter})
	}

	fmt.Fprintf(out, "\nFinal score: %d/%d\n", score, len(doc.Questions))
	printSources(out, reviews)
	return nil
}

func printQuestion(out io.Writer, number int, question quizgen.QuestionRecord) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Q%d: %s\n\n", number, question.Question)
	letters := [4]string{"A", "B", "C", "D"}
	for i, option := range question.Options() {
		fmt.Fprintf(out, "%s. %s\n", letters[i], option)
	}
	fmt.Fprintln(out)
}

func readAnswer(reader *bufio.Reader, out io.Writer) (string, bool) {
	for attempt := 1; attempt <= answerAttempts; attempt++ {
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", false
		}

		answer := strings.ToUpper(strings.TrimSpace(line))
		if len(answer) == 1 && answer[0] >= 'A' && answer[0] <= 'D' {
			return answer, true
		}
		if err != nil {
			return "", false
		}

		if attempt < answerAttempts {
			fmt.Fprintln(out, "\nInvalid input. Please enter a letter A-D.")
		}
	}
	return "", false
}

func printSources(out io.Writer, reviews []review) {
	fmt.Fprintln(out, "\nRead more:")
	for i, r := range reviews {
		fmt.Fprintf(out, "Q%d: %s\n", i+1, r.question.Source)
	}
}
