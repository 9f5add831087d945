package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"slices"
	"strings"
	"sync"
)

// MaxUploadSize is the byte ceiling for a single image file, enforced
// locally before any request is sent.
const MaxUploadSize = 10 << 20

// Gallery keeps the working copy of one blog's image list. It is the
// caller's single source of truth for rendering and only ever changes
// after the server confirms a mutation; any failure leaves it untouched.
//
// The list is reconciled by local bookkeeping: removals delete the same
// index the server was asked to remove. If another session may have
// reordered the gallery since the last sync, call Refresh before removing,
// otherwise a positional removal can target the wrong entry.
type Gallery struct {
	api    *Client
	blogID uint

	mu     sync.Mutex
	images []Image
}

func NewGallery(api *Client, blogID uint, initial []Image) *Gallery {
	return &Gallery{
		api:    api,
		blogID: blogID,
		images: slices.Clone(initial),
	}
}

// Images returns a snapshot of the working copy.
func (g *Gallery) Images() []Image {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.images)
}

func (g *Gallery) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.images)
}

// EncodeImageDataURL turns raw image bytes into the inline data URL form.
// The media type is sniffed from the content; non-image bytes are rejected
// without touching the network.
func EncodeImageDataURL(data []byte) (string, error) {
	mediaType := http.DetectContentType(data)
	if !strings.HasPrefix(mediaType, "image/") {
		return "", &Error{Kind: KindInvalidRequest, Message: "selected file is not an image"}
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// AddFile reads a local file and uploads it via AddBytes.
func (g *Gallery) AddFile(ctx context.Context, path string) (Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, &Error{Kind: KindInvalidRequest, Message: fmt.Sprintf("unable to read file: %v", err)}
	}
	return g.AddBytes(ctx, data)
}

// AddBytes validates, encodes and submits one image. On success the
// server-returned entry is appended to the working copy, never the local
// encoding, so the list always reflects what the server persisted.
func (g *Gallery) AddBytes(ctx context.Context, data []byte) (Image, error) {
	dataURL, err := EncodeImageDataURL(data)
	if err != nil {
		return Image{}, err
	}
	if int64(len(data)) > MaxUploadSize {
		return Image{}, &Error{Kind: KindInvalidRequest, Message: "image size must be less than 10MB"}
	}

	image, err := g.api.AddBlogImage(ctx, g.blogID, dataURL)
	if err != nil {
		return Image{}, err
	}

	g.mu.Lock()
	g.images = append(g.images, image)
	g.mu.Unlock()

	return image, nil
}

// Remove deletes the entry at the given position of the working copy. The
// lock is held across the round trip so concurrent local mutations cannot
// shift the index between submission and reconciliation.
func (g *Gallery) Remove(ctx context.Context, index int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if index < 0 || index >= len(g.images) {
		return &Error{Kind: KindInvalidRequest, Message: fmt.Sprintf("image index %d out of range", index)}
	}

	if err := g.api.RemoveBlogImage(ctx, g.blogID, ByIndex(index)); err != nil {
		return err
	}

	g.images = slices.Delete(g.images, index, index+1)

	return nil
}

// Refresh replaces the working copy with the server's authoritative list.
func (g *Gallery) Refresh(ctx context.Context) error {
	blog, err := g.api.GetBlog(ctx, g.blogID)
	if err != nil {
		return err
	}

	g.mu.Lock()
	g.images = blog.Images
	g.mu.Unlock()

	return nil
}
