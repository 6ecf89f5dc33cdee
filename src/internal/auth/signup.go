package auth

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spride/spride-web/src/internal/model"
	"go.uber.org/zap"
)

const (
	MaxNicknameLen = 10
	MaxIntroLen    = 50
)

// ValidationError names the offending field and the locale key of the message
// shown next to it.
type ValidationError struct {
	Field string
	Key   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s", e.Field)
}

func (e *ValidationError) Is(target error) bool {
	return target == model.ErrValidation
}

func ValidateNickname(nickname string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(nickname))
	if n == 0 || n > MaxNicknameLen {
		return &ValidationError{Field: "nickname", Key: "nicknameInvalid"}
	}
	return nil
}

func ValidateIntro(intro string) error {
	if utf8.RuneCountInString(intro) > MaxIntroLen {
		return &ValidationError{Field: "introText", Key: "introTooLong"}
	}
	return nil
}

type SignupForm struct {
	Nickname   string
	IntroText  string
	ProfileURL string
	ReturnTo   string
}

// CompleteSignup registers a first-time user and signs them in. It returns
// the path to continue to.
func (f *Flow) CompleteSignup(ctx context.Context, form SignupForm) (string, error) {
	if err := ValidateNickname(form.Nickname); err != nil {
		return "", err
	}
	if err := ValidateIntro(form.IntroText); err != nil {
		return "", err
	}

	req := model.SignupRequest{
		Nickname:   strings.TrimSpace(form.Nickname),
		IntroText:  form.IntroText,
		ProfileURL: form.ProfileURL,
	}
	if err := f.backend.Signup(ctx, req); err != nil {
		f.log.Error("signup failed", zap.String("nickname", req.Nickname), zap.Error(err))
		return "", fmt.Errorf("signup: %w", err)
	}

	f.session.CloseLoginModal()
	f.session.Login()
	dest := f.session.ConsumeRedirectPath()
	if p := SafePath(form.ReturnTo); p != "" {
		dest = p
	}
	f.log.Info("signup success", zap.String("nickname", req.Nickname), zap.String("redirect", dest))
	return dest, nil
}
