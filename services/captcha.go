package services

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

const recaptchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// CaptchaVerifier checks reCAPTCHA tokens against Google's siteverify
// endpoint. With no secret configured, verification is skipped with a
// warning; that is a dev-mode bypass, not a security feature.
type CaptchaVerifier struct {
	Secret    string
	VerifyURL string
	Client    *http.Client
}

func NewCaptchaVerifier(secret string) *CaptchaVerifier {
	return &CaptchaVerifier{
		Secret:    secret,
		VerifyURL: recaptchaVerifyURL,
		Client:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *CaptchaVerifier) Verify(token, remoteIP string) error {
	if v.Secret == "" {
		log.Warn().Msg("RECAPTCHA_SECRET not set, skipping captcha verification")
		return nil
	}

	form := url.Values{
		"secret":   {v.Secret},
		"response": {token},
	}
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	res, err := v.Client.PostForm(v.VerifyURL, form)
	if err != nil {
		return ErrCaptchaFailed
	}
	defer res.Body.Close()

	var body struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return ErrCaptchaFailed
	}
	if !body.Success {
		return ErrCaptchaFailed
	}
	return nil
}
