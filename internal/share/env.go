package share

import "errors"

// ErrShareCanceled is returned by a NativeSharer when the user dismissed
// the share sheet. Cancellation is a first-class outcome, not a failure.
var ErrShareCanceled = errors.New("share canceled by user")

// PopupOpener opens a fixed-size popup window. blocked is true when the
// environment refused to open it (popup blocker), which is distinct from
// an error while opening.
type PopupOpener interface {
	OpenPopup(url, name, features string) (blocked bool, err error)
}

// WindowOpener opens a URL in a new tab/window or hands it to the app
// registered for its scheme.
type WindowOpener interface {
	OpenWindow(url string) error
}

// Navigator replaces the current location, used for mailto: links.
type Navigator interface {
	Navigate(url string) error
}

// Clipboard writes text to the system clipboard. LegacyCopy is the
// hidden-textarea select-and-copy path used when the clipboard API fails.
type Clipboard interface {
	WriteText(text string) error
	LegacyCopy(text string) error
}

// NativeSharer exposes the platform share sheet, when one exists.
type NativeSharer interface {
	CanShare() bool
	Share(title, text, url string) error
}

// WeChatRequest carries the fields the WeChat JS-SDK share calls take.
type WeChatRequest struct {
	Title    string
	Desc     string
	Link     string
	ImageURL string
}

// WeChatSDK is the in-app bridge available inside the WeChat browser.
type WeChatSDK interface {
	Ready() bool
	ShareTimeline(req WeChatRequest) error
	ShareChat(req WeChatRequest) error
}

// Env is the per-client browser environment a share action runs in. The
// dispatcher itself stays stateless; everything client-specific comes in
// here.
type Env struct {
	Origin    string
	UserAgent string
	SessionID string
	Referral  string

	Popups    PopupOpener
	Windows   WindowOpener
	Nav       Navigator
	Clipboard Clipboard
	Native    NativeSharer
	WeChat    WeChatSDK
}
