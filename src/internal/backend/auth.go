package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/spride/spride-web/src/internal/model"
	"go.uber.org/zap"
)

type LoginStatus string

const (
	LoginSuccess   LoginStatus = "LOGIN_SUCCESS"
	SignupRequired LoginStatus = "SIGNUP_REQUIRED"
	LoginFailure   LoginStatus = "FAILURE"
)

type LoginResult struct {
	Status     LoginStatus `json:"status"`
	Nickname   string      `json:"nickname"`
	ProfileURL string      `json:"profileUrl"`
}

// CheckStatus asks the backend whether the session cookie is valid. On any
// failure it reports false alongside the reason.
func (c *Client) CheckStatus(ctx context.Context) (bool, error) {
	var body struct {
		IsLoggedIn bool `json:"isLoggedIn"`
	}
	err := c.do(ctx, request{op: "check_status", method: http.MethodGet, path: "/api/auth/status"}, &body)
	if err != nil {
		return false, err
	}
	return body.IsLoggedIn, nil
}

// KakaoLogin exchanges the provider's one-time code for a backend session.
func (c *Client) KakaoLogin(ctx context.Context, code string) (LoginResult, error) {
	var res LoginResult
	err := c.do(ctx, request{
		op:     "kakao_login",
		method: http.MethodPost,
		path:   "/api/auth/kakao/login",
		query:  url.Values{"code": {code}},
	}, &res)
	if err != nil {
		return LoginResult{Status: LoginFailure}, err
	}
	if res.Status == "" {
		res.Status = LoginFailure
	}
	return res, nil
}

// Logout is fire-and-forget: failures are logged and dropped.
func (c *Client) Logout(ctx context.Context) {
	err := c.do(ctx, request{op: "logout", method: http.MethodPost, path: "/api/auth/kakao/logout"}, nil)
	if err != nil {
		c.log.Warn("logout request failed", zap.Error(err))
	}
}

func (c *Client) Signup(ctx context.Context, req model.SignupRequest) error {
	body, err := jsonBody(req)
	if err != nil {
		return err
	}
	return c.do(ctx, request{
		op:          "signup",
		method:      http.MethodPost,
		path:        "/api/auth/kakao/signup",
		body:        body,
		contentType: "application/json",
	}, nil)
}
