package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dailynewsquiz/newsquiz-lambda/internal/cli"
	"github.com/dailynewsquiz/newsquiz-lambda/internal/feed"
	"github.com/dailynewsquiz/newsquiz-lambda/internal/quizclient"
)

func main() {
	defaultURL := os.Getenv("QUIZ_API_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8080"
	}

	baseURL := flag.String("url", defaultURL, "quiz API base URL")
	category := flag.String("category", feed.DefaultCategory, "quiz category")
	clearCache := flag.Bool("clear-cache", false, "remove the locally cached quiz for the category and exit")
	flag.Parse()

	client, err := quizclient.New(*baseURL, "")
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if *clearCache {
		if err := client.Clear(*category); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	if err := cli.Run(context.Background(), client, *category, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
