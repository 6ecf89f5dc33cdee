package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/spride/spride-web/src/internal/backend/apiErrors"
	"github.com/spride/spride-web/src/internal/model"
)

const profileImageField = "profileImage"

// GetProfile returns the caller's profile. Unlike the other wrappers a
// failure carries no fallback profile; the caller decides what to show.
func (c *Client) GetProfile(ctx context.Context) (model.Profile, error) {
	var p model.Profile
	if err := c.do(ctx, request{op: "get_profile", method: http.MethodGet, path: "/api/members"}, &p); err != nil {
		return model.Profile{}, fmt.Errorf("fetch profile: %w", err)
	}
	return p, nil
}

func (c *Client) UpdateProfile(ctx context.Context, upd model.ProfileUpdate) error {
	body, err := jsonBody(upd)
	if err != nil {
		return err
	}
	return c.do(ctx, request{
		op:          "update_profile",
		method:      http.MethodPut,
		path:        "/api/members",
		body:        body,
		contentType: "application/json",
	}, nil)
}

func (c *Client) UploadProfileImage(ctx context.Context, filename string, image io.Reader) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(profileImageField, filename)
	if err != nil {
		return &apiErrors.APIError{Code: apiErrors.Validation, Message: "build upload", Err: err}
	}
	if _, err := io.Copy(part, image); err != nil {
		return &apiErrors.APIError{Code: apiErrors.Validation, Message: "read image", Err: err}
	}
	if err := w.Close(); err != nil {
		return &apiErrors.APIError{Code: apiErrors.Validation, Message: "build upload", Err: err}
	}
	return c.do(ctx, request{
		op:          "upload_profile_image",
		method:      http.MethodPost,
		path:        "/api/members/profile-image",
		body:        &buf,
		contentType: w.FormDataContentType(),
	}, nil)
}
