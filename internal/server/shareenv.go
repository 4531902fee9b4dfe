package web

import "voices/internal/share"

// directive is a browser action the client should perform to finish a
// share: the server cannot open windows or touch clipboards itself, so
// the dispatcher runs against this recording environment and the
// directives travel back in the share response.
type directive struct {
	Action   string `json:"action"` // popup, window, navigate, clipboard
	URL      string `json:"url,omitempty"`
	Text     string `json:"text,omitempty"`
	Name     string `json:"name,omitempty"`
	Features string `json:"features,omitempty"`
}

type recordingEnv struct {
	canShare   bool
	directives []directive
}

func newRecordingEnv(canShare bool) *recordingEnv {
	return &recordingEnv{canShare: canShare}
}

func (e *recordingEnv) env(origin, userAgent, sessionID, referral string) share.Env {
	return share.Env{
		Origin:    origin,
		UserAgent: userAgent,
		SessionID: sessionID,
		Referral:  referral,
		Popups:    e,
		Windows:   e,
		Nav:       e,
		Clipboard: e,
		Native:    e,
	}
}

func (e *recordingEnv) OpenPopup(url, name, features string) (bool, error) {
	e.directives = append(e.directives, directive{Action: "popup", URL: url, Name: name, Features: features})
	return false, nil
}

func (e *recordingEnv) OpenWindow(url string) error {
	e.directives = append(e.directives, directive{Action: "window", URL: url})
	return nil
}

func (e *recordingEnv) Navigate(url string) error {
	e.directives = append(e.directives, directive{Action: "navigate", URL: url})
	return nil
}

func (e *recordingEnv) WriteText(text string) error {
	e.directives = append(e.directives, directive{Action: "clipboard", Text: text})
	return nil
}

func (e *recordingEnv) LegacyCopy(text string) error {
	e.directives = append(e.directives, directive{Action: "clipboard", Text: text})
	return nil
}

func (e *recordingEnv) CanShare() bool { return e.canShare }

func (e *recordingEnv) Share(title, text, url string) error {
	e.directives = append(e.directives, directive{Action: "native", URL: url, Text: text, Name: title})
	return nil
}
