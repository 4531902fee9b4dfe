package share

import "regexp"

var (
	wechatRe     = regexp.MustCompile(`(?i)MicroMessenger`)
	wechatWorkRe = regexp.MustCompile(`(?i)wxwork`)
	mobileRe     = regexp.MustCompile(`(?i)Android|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)
)

// IsWeChat reports whether the user agent is the embedded WeChat browser.
func IsWeChat(ua string) bool { return wechatRe.MatchString(ua) }

// IsWeChatWork reports whether the user agent is the WeChat Work (enterprise)
// variant, which does not expose the consumer share SDK.
func IsWeChatWork(ua string) bool { return wechatWorkRe.MatchString(ua) }

// IsMobile reports whether the user agent looks like a mobile device.
func IsMobile(ua string) bool { return mobileRe.MatchString(ua) }
