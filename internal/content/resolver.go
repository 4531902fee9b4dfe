// Package content picks which of an article's overlapping optional text
// fields to display for a requested locale. Every function here is pure
// and total: empty and absent fields are treated the same, and a fully
// empty record resolves to placeholder text instead of failing.
package content

import (
	"fmt"
	"regexp"
	"strings"

	"voices/internal/model"
)

const (
	// TitlePlaceholder is shown when no title field is populated at all.
	TitlePlaceholder = "无标题 (Untitled)"
	// SummaryPlaceholder is shown when neither a translation nor an AI
	// summary exists for the requested locale.
	SummaryPlaceholder = "暂无中文摘要"

	slugMaxLen = 50
)

var (
	nonWordRe    = regexp.MustCompile(`[^\w\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// firstNonEmpty evaluates candidate accessors in priority order and
// returns the first non-empty result. The fallback chains below are
// declared as ordered tables so the priority is visible in one place.
func firstNonEmpty(fallback string, candidates ...func() string) string {
	for _, c := range candidates {
		if v := strings.TrimSpace(c()); v != "" {
			return v
		}
	}
	return fallback
}

// ResolveTitle returns the single title to display for the locale.
//
// For "chinese" the order is: translated title, editor override, AI title,
// original headline. Other locales skip the translated title; there is no
// per-locale title fallback defined for them.
func ResolveTitle(a *model.Article, locale string) string {
	if locale == model.LocaleChinese {
		return firstNonEmpty(TitlePlaceholder,
			func() string { return a.TranslatedTitle(model.LocaleChinese) },
			func() string { return a.DisplayTitle },
			func() string { return a.AITitle },
			func() string { return a.OriginalTitle },
		)
	}
	return firstNonEmpty(TitlePlaceholder,
		func() string { return a.DisplayTitle },
		func() string { return a.AITitle },
		func() string { return a.OriginalTitle },
	)
}

// ResolveSummary returns the single summary to display for the locale:
// the locale's translation first for "chinese", then the AI summary,
// then a fixed placeholder.
func ResolveSummary(a *model.Article, locale string) string {
	if locale == model.LocaleChinese {
		return firstNonEmpty(SummaryPlaceholder,
			func() string { return a.Translation(model.LocaleChinese) },
			func() string { return a.AISummary },
		)
	}
	return firstNonEmpty(SummaryPlaceholder,
		func() string { return a.AISummary },
	)
}

// ResolveSlug returns a URL-safe permalink fragment for the article. An
// explicit slug wins verbatim. Otherwise one is derived from the resolved
// display title; the text suffix is cosmetic only and uniqueness comes
// from the numeric id prefix.
func ResolveSlug(a *model.Article) string {
	if a.Slug != "" {
		return a.Slug
	}

	title := strings.ToLower(ResolveTitle(a, ""))
	title = nonWordRe.ReplaceAllString(title, "")
	title = whitespaceRe.ReplaceAllString(strings.TrimSpace(title), "-")
	if r := []rune(title); len(r) > slugMaxLen {
		title = string(r[:slugMaxLen])
	}
	return fmt.Sprintf("%d-%s", a.ID, title)
}

// HasLocale reports whether the article carries any content translated
// for the locale. Locales without translation support always pass.
func HasLocale(a *model.Article, locale string) bool {
	switch locale {
	case model.LocaleChinese, model.LocaleKorean:
		return a.Translation(locale) != "" || a.TranslatedTitle(locale) != ""
	default:
		return true
	}
}

// FilterByLocale returns the articles that have content for the locale,
// preserving input order. Unsupported locales pass everything through,
// which means English readers may see articles whose summary falls back
// to the Chinese placeholder; the upstream product behaves the same way.
func FilterByLocale(articles []model.Article, locale string) []model.Article {
	if locale != model.LocaleChinese && locale != model.LocaleKorean {
		return articles
	}
	out := make([]model.Article, 0, len(articles))
	for _, a := range articles {
		if HasLocale(&a, locale) {
			out = append(out, a)
		}
	}
	return out
}
