// Package share builds platform share targets for articles and performs
// the platform action through an injected browser environment, reporting
// every attempt to the analytics tracker.
package share

import (
	"fmt"
	"net/url"
	"strings"

	"voices/internal/model"
)

const (
	utmMedium   = "social"
	utmCampaign = "article_share"

	termMaxLen = 50
)

// encodeComponent mirrors JS encodeURIComponent: spaces become %20, not "+".
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func truncateRunes(s string, n int) string {
	if r := []rune(s); len(r) > n {
		return string(r[:n])
	}
	return s
}

// BuildShareURL constructs the article permalink tagged with campaign
// parameters attributing traffic to the given platform. Deterministic for
// identical inputs. The utm_term value is the percent-encoded first 50
// characters of the title.
func BuildShareURL(origin string, platform model.SharePlatform, articleID int64, title string) string {
	params := url.Values{}
	params.Set("utm_source", string(platform))
	params.Set("utm_medium", utmMedium)
	params.Set("utm_campaign", utmCampaign)
	params.Set("utm_content", fmt.Sprintf("%d", articleID))
	params.Set("utm_term", encodeComponent(truncateRunes(title, termMaxLen)))

	return fmt.Sprintf("%s/article/%d?%s", strings.TrimRight(origin, "/"), articleID, params.Encode())
}
