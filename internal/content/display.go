package content

import (
	"fmt"
	"strings"

	"voices/internal/model"
)

// categoryLabels maps the dashboard's fixed topic tags to the Chinese
// section names shown in the UI.
var categoryLabels = map[string]string{
	"Politics":    "政治",
	"Healthcare":  "医疗健康",
	"Education":   "教育",
	"Immigration": "移民",
	"Economy":     "经济",
	"Culture":     "文化",
	"General":     "综合",
}

// CategoryLabel returns the Chinese label for a topic tag. Unknown tags
// pass through verbatim rather than erroring, since the upstream set can
// grow without us.
func CategoryLabel(topic string) string {
	if label, ok := categoryLabels[topic]; ok {
		return label
	}
	return topic
}

// sourceBylines localizes the byline for wire-service staff articles.
var sourceBylines = map[string]string{
	"npr":      "NPR 记者",
	"ap news":  "美联社记者",
	"nbc news": "NBC 新闻记者",
	"abc news": "ABC 新闻记者",
}

// AuthorDisplay returns the byline to show. Upstream rows often carry
// junk author values ("N/A", "Unknown", "Staff"); those fall back to a
// localized per-source byline, then a generic one.
func AuthorDisplay(author, source string) string {
	author = strings.TrimSpace(author)
	switch author {
	case "", "N/A", "Unknown", "Staff":
	default:
		return author
	}
	if byline, ok := sourceBylines[strings.ToLower(source)]; ok {
		return byline
	}
	return "本站记者"
}

// FormatDate renders a scraped date in the Chinese long form used on
// article pages. Unparseable input is returned as-is.
func FormatDate(a *model.Article) string {
	t := a.PublishedAt()
	if t.IsZero() {
		return a.ScrapedDate
	}
	return fmt.Sprintf("%d年%d月%d日", t.Year(), int(t.Month()), t.Day())
}
