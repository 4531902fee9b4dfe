// Package analytics classifies where visitors came from and forwards
// telemetry events to an external sink without ever blocking the caller.
package analytics

import (
	"net/url"
	"regexp"
	"strings"
)

// Platform is the closed set of referral channels we attribute traffic to.
type Platform string

const (
	PlatformWeChat     Platform = "wechat"
	PlatformWeChatWork Platform = "wechat_work"
	PlatformWhatsApp   Platform = "whatsapp"
	PlatformFacebook   Platform = "facebook"
	PlatformTwitter    Platform = "twitter"
	PlatformLinkedIn   Platform = "linkedin"
	PlatformReferral   Platform = "referral"
	PlatformDirect     Platform = "direct"
)

// ClientInfo is the immutable input to classification: what the browser
// told us about itself and where the visit came from.
type ClientInfo struct {
	UserAgent string
	Referrer  string
	Query     url.Values
}

var (
	uaWeChatRe     = regexp.MustCompile(`(?i)MicroMessenger`)
	uaWeChatWorkRe = regexp.MustCompile(`(?i)wxwork`)
)

// campaignSources maps utm_source values to platforms. A campaign tag on
// the URL is the strongest signal and wins over sniffing.
var campaignSources = map[string]Platform{
	"wechat":   PlatformWeChat,
	"whatsapp": PlatformWhatsApp,
	"facebook": PlatformFacebook,
	"twitter":  PlatformTwitter,
	"linkedin": PlatformLinkedIn,
}

// referrerHosts maps referrer host fragments to platforms.
var referrerHosts = []struct {
	fragment string
	platform Platform
}{
	{"facebook.com", PlatformFacebook},
	{"twitter.com", PlatformTwitter},
	{"t.co", PlatformTwitter},
	{"x.com", PlatformTwitter},
	{"whatsapp.com", PlatformWhatsApp},
	{"linkedin.com", PlatformLinkedIn},
	{"weixin.qq.com", PlatformWeChat},
}

// Classify resolves a visit to a single referral platform: campaign
// parameter first, then user agent, then referrer host, else direct.
func Classify(info ClientInfo) Platform {
	if info.Query != nil {
		if p, ok := campaignSources[strings.ToLower(info.Query.Get("utm_source"))]; ok {
			return p
		}
	}

	if uaWeChatWorkRe.MatchString(info.UserAgent) {
		return PlatformWeChatWork
	}
	if uaWeChatRe.MatchString(info.UserAgent) {
		return PlatformWeChat
	}

	if info.Referrer != "" {
		host := info.Referrer
		if u, err := url.Parse(info.Referrer); err == nil && u.Host != "" {
			host = u.Host
		}
		host = strings.ToLower(host)
		for _, rh := range referrerHosts {
			if strings.Contains(host, rh.fragment) {
				return rh.platform
			}
		}
		return PlatformReferral
	}

	return PlatformDirect
}
