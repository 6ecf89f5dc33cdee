package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spride/spride-web/src/internal/model"
)

func (c *Client) ListArticles(ctx context.Context, articleType string) ([]model.Article, error) {
	var out []model.Article
	err := c.do(ctx, request{
		op:     "list_articles",
		method: http.MethodGet,
		path:   "/api/articles",
		query:  url.Values{"type": {articleType}},
	}, &out)
	if err != nil {
		return []model.Article{}, err
	}
	return out, nil
}

func (c *Client) GetArticle(ctx context.Context, id int64) (model.Article, error) {
	var a model.Article
	err := c.do(ctx, request{op: "get_article", method: http.MethodGet, path: fmt.Sprintf("/api/articles/%d", id)}, &a)
	if err != nil {
		return model.Article{}, err
	}
	return a, nil
}

func (c *Client) CreateArticle(ctx context.Context, a model.NewArticle) (model.Article, error) {
	body, err := jsonBody(a)
	if err != nil {
		return model.Article{}, err
	}
	var created model.Article
	err = c.do(ctx, request{
		op:          "create_article",
		method:      http.MethodPost,
		path:        "/api/articles",
		body:        body,
		contentType: "application/json",
	}, &created)
	if err != nil {
		return model.Article{}, err
	}
	return created, nil
}

func (c *Client) ListComments(ctx context.Context, articleID int64) ([]model.Comment, error) {
	var out []model.Comment
	err := c.do(ctx, request{
		op:     "list_comments",
		method: http.MethodGet,
		path:   fmt.Sprintf("/api/articles/%d/comments", articleID),
	}, &out)
	if err != nil {
		return []model.Comment{}, err
	}
	return out, nil
}

func (c *Client) CreateComment(ctx context.Context, articleID int64, content string) error {
	body, err := jsonBody(map[string]string{"content": content})
	if err != nil {
		return err
	}
	return c.do(ctx, request{
		op:          "create_comment",
		method:      http.MethodPost,
		path:        fmt.Sprintf("/api/articles/%d/comments", articleID),
		body:        body,
		contentType: "application/json",
	}, nil)
}
