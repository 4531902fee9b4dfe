package share

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"voices/internal/model"
)

const (
	attribution  = "来自华裔美国人之声 (Chinese American Voices)"
	tweetMaxLen  = 200
	tweetTags    = "#ChineseAmerican #AAPI"
	summaryClip  = 200
	nativeClip   = 100
	popupFeature = "width=600,height=400,scrollbars=yes,resizable=yes"
)

// Tracker receives one event per share attempt. Delivery is fire-and-forget;
// the dispatcher never waits on it.
type Tracker interface {
	TrackShare(ev model.ShareEvent)
}

// Request identifies what is being shared.
type Request struct {
	ArticleID int64
	Title     string
	Summary   string
	ImageURL  string
}

// Dispatcher performs per-platform share actions. Each dispatch is
// stateless and single-shot: invoked, resolved to success or failure,
// done. Errors from the environment are caught here, logged, reported
// through the tracker, and never propagate to the caller.
type Dispatcher struct {
	logger  *zap.Logger
	tracker Tracker
}

func NewDispatcher(logger *zap.Logger, tracker Tracker) *Dispatcher {
	return &Dispatcher{logger: logger, tracker: tracker}
}

// Dispatch runs the share action for the platform and reports whether it
// succeeded. Unknown platforms fail without acting.
func (d *Dispatcher) Dispatch(env Env, platform model.SharePlatform, req Request) bool {
	switch platform {
	case model.ShareWeChat:
		return d.shareWeChat(env, req)
	case model.ShareWhatsApp:
		return d.shareWhatsApp(env, req)
	case model.ShareFacebook:
		return d.shareFacebook(env, req)
	case model.ShareTwitter:
		return d.shareTwitter(env, req)
	case model.ShareEmail:
		return d.shareEmail(env, req)
	case model.ShareCopy:
		return d.copyLink(env, req)
	case model.ShareNative:
		return d.shareNative(env, req)
	default:
		d.logger.Warn("unknown share platform", zap.String("platform", string(platform)))
		return false
	}
}

func (d *Dispatcher) track(env Env, platform model.SharePlatform, req Request, success bool) {
	d.tracker.TrackShare(model.ShareEvent{
		Platform:     platform,
		ArticleID:    req.ArticleID,
		ArticleTitle: req.Title,
		ShareURL:     BuildShareURL(env.Origin, platform, req.ArticleID, req.Title),
		Success:      success,
		Timestamp:    time.Now(),
		SessionID:    env.SessionID,
		Referral:     env.Referral,
	})
}

// shareWeChat uses the in-app SDK when running inside the consumer WeChat
// browser; everywhere else the link is copied so the user can paste it
// into a chat themselves.
func (d *Dispatcher) shareWeChat(env Env, req Request) bool {
	shareURL := BuildShareURL(env.Origin, model.ShareWeChat, req.ArticleID, req.Title)
	d.track(env, model.ShareWeChat, req, true)

	inWeChat := IsWeChat(env.UserAgent) && !IsWeChatWork(env.UserAgent)
	if inWeChat && env.WeChat != nil && env.WeChat.Ready() {
		img := req.ImageURL
		if img == "" {
			img = env.Origin + "/og-image.jpg"
		}
		wreq := WeChatRequest{
			Title:    req.Title,
			Desc:     truncateRunes(req.Title, nativeClip),
			Link:     shareURL,
			ImageURL: img,
		}
		d.track(env, model.ShareWeChatTimeline, req, env.WeChat.ShareTimeline(wreq) == nil)
		d.track(env, model.ShareWeChatChat, req, env.WeChat.ShareChat(wreq) == nil)
		return true
	}

	if err := env.Clipboard.WriteText(shareURL); err != nil {
		d.logger.Error("wechat share failed", zap.Error(err))
		d.track(env, model.ShareWeChat, req, false)
		return false
	}
	return true
}

func (d *Dispatcher) shareWhatsApp(env Env, req Request) bool {
	shareURL := BuildShareURL(env.Origin, model.ShareWhatsApp, req.ArticleID, req.Title)
	d.track(env, model.ShareWhatsApp, req, true)

	message := encodeComponent(fmt.Sprintf("%s\n\n%s\n\n%s", req.Title, shareURL, attribution))
	var target string
	if IsMobile(env.UserAgent) {
		target = "whatsapp://send?text=" + message
	} else {
		target = "https://web.whatsapp.com/send?text=" + message
	}

	if err := env.Windows.OpenWindow(target); err != nil {
		d.logger.Error("whatsapp share failed", zap.Error(err))
		d.track(env, model.ShareWhatsApp, req, false)
		return false
	}
	return true
}

func (d *Dispatcher) shareFacebook(env Env, req Request) bool {
	shareURL := BuildShareURL(env.Origin, model.ShareFacebook, req.ArticleID, req.Title)
	d.track(env, model.ShareFacebook, req, true)

	target := fmt.Sprintf("https://www.facebook.com/sharer/sharer.php?u=%s&quote=%s",
		encodeComponent(shareURL), encodeComponent(req.Title))

	blocked, err := env.Popups.OpenPopup(target, "facebook-share", popupFeature)
	if err != nil || blocked {
		if err != nil {
			d.logger.Error("facebook share failed", zap.Error(err))
		}
		d.track(env, model.ShareFacebook, req, false)
		return false
	}
	return true
}

func (d *Dispatcher) shareTwitter(env Env, req Request) bool {
	shareURL := BuildShareURL(env.Origin, model.ShareTwitter, req.ArticleID, req.Title)
	d.track(env, model.ShareTwitter, req, true)

	text := encodeComponent(fmt.Sprintf("%s... %s", truncateRunes(req.Title, tweetMaxLen), tweetTags))
	target := fmt.Sprintf("https://twitter.com/intent/tweet?text=%s&url=%s", text, encodeComponent(shareURL))

	blocked, err := env.Popups.OpenPopup(target, "twitter-share", popupFeature)
	if err != nil || blocked {
		if err != nil {
			d.logger.Error("twitter share failed", zap.Error(err))
		}
		d.track(env, model.ShareTwitter, req, false)
		return false
	}
	return true
}

func (d *Dispatcher) shareEmail(env Env, req Request) bool {
	shareURL := BuildShareURL(env.Origin, model.ShareEmail, req.ArticleID, req.Title)
	d.track(env, model.ShareEmail, req, true)

	subject := encodeComponent("重要新闻: " + req.Title)
	body := encodeComponent(fmt.Sprintf("我想与您分享这篇重要的新闻文章:\n\n%s\n\n%s...\n\n阅读全文: %s\n\n%s",
		req.Title, truncateRunes(req.Summary, summaryClip), shareURL, attribution))

	if err := env.Nav.Navigate(fmt.Sprintf("mailto:?subject=%s&body=%s", subject, body)); err != nil {
		d.logger.Error("email share failed", zap.Error(err))
		d.track(env, model.ShareEmail, req, false)
		return false
	}
	return true
}

// copyLink writes the share URL to the clipboard, falling back to the
// legacy select-and-copy path when the clipboard API is unavailable.
func (d *Dispatcher) copyLink(env Env, req Request) bool {
	shareURL := BuildShareURL(env.Origin, model.ShareCopy, req.ArticleID, req.Title)

	if err := env.Clipboard.WriteText(shareURL); err != nil {
		d.logger.Warn("clipboard write failed, trying legacy copy", zap.Error(err))
		d.track(env, model.ShareCopy, req, false)

		if err := env.Clipboard.LegacyCopy(shareURL); err != nil {
			d.logger.Error("legacy copy failed", zap.Error(err))
			return false
		}
		return true
	}

	d.track(env, model.ShareCopy, req, true)
	return true
}

// shareNative invokes the platform share sheet. User cancellation is a
// quiet no-op: no failure event, no log noise.
func (d *Dispatcher) shareNative(env Env, req Request) bool {
	if env.Native == nil || !env.Native.CanShare() {
		return false
	}

	shareURL := BuildShareURL(env.Origin, model.ShareNative, req.ArticleID, req.Title)
	d.track(env, model.ShareNative, req, true)

	err := env.Native.Share(req.Title, truncateRunes(req.Summary, nativeClip), shareURL)
	if err != nil {
		if err == ErrShareCanceled {
			return false
		}
		d.logger.Error("native share failed", zap.Error(err))
		d.track(env, model.ShareNative, req, false)
		return false
	}
	return true
}
