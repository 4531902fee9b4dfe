package model

import "time"

type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
	StatusArchived  ArticleStatus = "archived"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Locale tags understood by the display layer. Anything else is passed
// through untranslated.
const (
	LocaleChinese = "chinese"
	LocaleKorean  = "korean"
	LocaleEnglish = "english"
)

// Article is a pre-processed news record owned by the upstream dashboard.
// Everything here is read-only from our side: scraping, summarization and
// translation all happen before a record reaches us, so most of the text
// fields are optional and overlap.
type Article struct {
	ID               int64             `json:"id"`
	OriginalTitle    string            `json:"originalTitle"`
	AITitle          string            `json:"aiTitle,omitempty"`
	DisplayTitle     string            `json:"displayTitle,omitempty"`
	TranslatedTitles map[string]string `json:"translatedTitles,omitempty"`
	AISummary        string            `json:"aiSummary,omitempty"`
	Translations     map[string]string `json:"translations,omitempty"`
	Source           string            `json:"source"`
	Author           string            `json:"author,omitempty"`
	Dateline         string            `json:"dateline,omitempty"`
	ScrapedDate      string            `json:"scrapedDate"`
	Topic            string            `json:"topic"`
	Priority         Priority          `json:"priority"`
	RelevanceScore   float64           `json:"relevanceScore"`
	ImageURL         string            `json:"imageUrl,omitempty"`
	OriginalURL      string            `json:"originalUrl"`
	Status           ArticleStatus     `json:"status,omitempty"`
	Slug             string            `json:"slug,omitempty"`
}

// Translation returns the summary translated for the given locale, or "".
func (a *Article) Translation(locale string) string {
	if a.Translations == nil {
		return ""
	}
	return a.Translations[locale]
}

// TranslatedTitle returns the title translated for the given locale, or "".
func (a *Article) TranslatedTitle(locale string) string {
	if a.TranslatedTitles == nil {
		return ""
	}
	return a.TranslatedTitles[locale]
}

// PublishedAt parses the scraped date for sorting. Zero time on bad input
// so malformed upstream rows sink to the bottom instead of failing.
func (a *Article) PublishedAt() time.Time {
	t, err := time.Parse("2006-01-02", a.ScrapedDate)
	if err != nil {
		return time.Time{}
	}
	return t
}
