package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

type Image struct {
	URL    string `json:"url"`
	Source string `json:"source"`
	SubID  string `json:"subId,omitempty"`
}

type Blog struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Language  string    `json:"language"`
	Images    []Image   `json:"images"`
	AccountID uint      `json:"account_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BlogPage struct {
	Count int64  `json:"count"`
	Data  []Blog `json:"data"`
}

// ImageAddress addresses one gallery entry, either by its current
// zero-based position or by its persistent sub-identifier. The server
// resolves positional addresses first; the choice is made here, once, at
// the client boundary.
type ImageAddress struct {
	byIndex bool
	index   int
	subID   string
}

func ByIndex(index int) ImageAddress {
	return ImageAddress{byIndex: true, index: index}
}

func BySubID(subID string) ImageAddress {
	return ImageAddress{subID: subID}
}

func (a ImageAddress) token() string {
	if a.byIndex {
		return strconv.Itoa(a.index)
	}
	return a.subID
}

func (c *Client) ListBlogs(ctx context.Context, take, offset int) (BlogPage, error) {
	var page BlogPage
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/blog?take=%d&offset=%d", take, offset), nil, &page)
	return page, err
}

func (c *Client) GetBlog(ctx context.Context, id uint) (Blog, error) {
	var blog Blog
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/blog/%d", id), nil, &blog)
	return blog, err
}

func (c *Client) CreateBlog(ctx context.Context, title, content string) (Blog, error) {
	var blog Blog
	err := c.do(ctx, http.MethodPost, "/blog", map[string]string{
		"title":   title,
		"content": content,
	}, &blog)
	return blog, err
}

func (c *Client) UpdateBlog(ctx context.Context, id uint, title, content string) (Blog, error) {
	var blog Blog
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/blog/%d", id), map[string]string{
		"title":   title,
		"content": content,
	}, &blog)
	return blog, err
}

func (c *Client) DeleteBlog(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/blog/%d", id), nil, nil)
}

// AddBlogImage submits one image URL and returns the entry as the server
// persisted it, including the sub-identifier assigned during persistence.
func (c *Client) AddBlogImage(ctx context.Context, blogID uint, imageURL string) (Image, error) {
	var result struct {
		Success bool  `json:"success"`
		Image   Image `json:"image"`
	}
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/blog/%d/images", blogID), map[string]string{
		"imageUrl": imageURL,
	}, &result)
	if err != nil {
		return Image{}, err
	}
	return result.Image, nil
}

// RemoveBlogImage deletes one gallery entry. The response carries no
// updated list; callers keep their own view, see Gallery.
func (c *Client) RemoveBlogImage(ctx context.Context, blogID uint, addr ImageAddress) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/blog/%d/images/%s", blogID, addr.token()), nil, nil)
}
