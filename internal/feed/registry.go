package feed

import "sort"

// Categories maps every supported category to its BBC RSS feed.
var Categories = map[string]string{
	// General
	"world":         "https://feeds.bbci.co.uk/news/world/rss.xml",
	"uk":            "https://feeds.bbci.co.uk/news/uk/rss.xml",
	"business":      "https://feeds.bbci.co.uk/news/business/rss.xml",
	"politics":      "https://feeds.bbci.co.uk/news/politics/rss.xml",
	"health":        "https://feeds.bbci.co.uk/news/health/rss.xml",
	"tech":          "https://feeds.bbci.co.uk/news/technology/rss.xml",
	"science":       "https://feeds.bbci.co.uk/news/science_and_environment/rss.xml",
	"education":     "https://feeds.bbci.co.uk/news/education/rss.xml",
	"entertainment": "https://feeds.bbci.co.uk/news/entertainment_and_arts/rss.xml",
	"sport":         "https://feeds.bbci.co.uk/sport/rss.xml?edition=uk",

	// Regional
	"africa":        "https://feeds.bbci.co.uk/news/world/africa/rss.xml",
	"asia":          "https://feeds.bbci.co.uk/news/world/asia/rss.xml",
	"europe":        "https://feeds.bbci.co.uk/news/world/europe/rss.xml",
	"latin_america": "https://feeds.bbci.co.uk/news/world/latin_america/rss.xml",
	"middle_east":   "https://feeds.bbci.co.uk/news/world/middle_east/rss.xml",
	"us_canada":     "https://feeds.bbci.co.uk/news/world/us_and_canada/rss.xml",

	// Culture
	"travel":     "https://www.bbc.com/travel/feed.rss",
	"culture":    "https://www.bbc.com/culture/feed.rss",
	"music":      "https://www.bbc.com/culture/music/rss.xml",
	"film_tv":    "https://www.bbc.com/culture/film-tv/rss.xml",
	"art_design": "https://www.bbc.com/culture/art/rss.xml",
	"books":      "https://www.bbc.com/culture/books/rss.xml",
	"style":      "https://www.bbc.com/culture/style/rss.xml",

	// Innovation
	"ai":             "https://www.bbc.com/innovation/artificial-intelligence/rss.xml",
	"science_health": "https://www.bbc.com/innovation/science/rss.xml",
}

const DefaultCategory = "world"

// Resolve maps a requested category to its feed URL. Unknown or empty keys
// are coerced to the default category, and the canonical key is returned
// alongside the URL.
func Resolve(category string) (feedURL, key string) {
	if url, ok := Categories[category]; ok {
		return url, category
	}
	return Categories[DefaultCategory], DefaultCategory
}

// Keys lists all registry keys in stable order.
func Keys() []string {
	keys := make([]string, 0, len(Categories))
	for k := range Categories {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
