package model

import "time"

// SharePlatform is the share channel a user picked.
type SharePlatform string

const (
	ShareWeChat   SharePlatform = "wechat"
	ShareWhatsApp SharePlatform = "whatsapp"
	ShareFacebook SharePlatform = "facebook"
	ShareTwitter  SharePlatform = "twitter"
	ShareEmail    SharePlatform = "email"
	ShareCopy     SharePlatform = "copy"
	ShareNative   SharePlatform = "native"

	// WeChat SDK sub-targets, reported separately from the wechat entry
	// point so timeline and chat shares can be told apart.
	ShareWeChatTimeline SharePlatform = "wechat_timeline"
	ShareWeChatChat     SharePlatform = "wechat_chat"
)

// ShareEvent describes one completed share attempt. It exists only long
// enough to be handed to the analytics tracker and is never persisted here.
type ShareEvent struct {
	Platform     SharePlatform `json:"method"`
	ArticleID    int64         `json:"item_id"`
	ArticleTitle string        `json:"content_title"`
	ShareURL     string        `json:"share_url"`
	Success      bool          `json:"success"`
	Timestamp    time.Time     `json:"timestamp"`
	SessionID    string        `json:"session_id,omitempty"`
	Referral     string        `json:"referral_platform,omitempty"`
}
