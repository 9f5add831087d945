package services

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/inkwell-blog/inkwell/pkg/internal/database"
	"github.com/inkwell-blog/inkwell/pkg/internal/models"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrBlogNotFound   = errors.New("blog not found")
	ErrImageNotFound  = errors.New("image not found")
)

// IsAllowedImageURL reports whether the given string is an acceptable image
// reference: an inline data URL carrying an image media type, or an absolute
// http(s) URL. This is a shape check only; the payload is never decoded and
// the check runs exactly once, at ingestion.
func IsAllowedImageURL(url string) bool {
	if strings.HasPrefix(url, "data:image/") {
		return true
	}
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

func getBlogForUpdate(blogID uint, accountID uint) (models.Blog, error) {
	// Deliberately bypasses the read cache: mutations must start from the
	// row currently in the store.
	var blog models.Blog
	if err := database.C.Where("id = ? AND account_id = ?", blogID, accountID).First(&blog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return blog, ErrBlogNotFound
		}
		return blog, fmt.Errorf("unable to load blog: %v", err)
	}
	return blog, nil
}

// AddBlogImage appends one image at the tail of the blog's gallery and
// persists the whole row in a single replace. The returned image is read
// back from the persisted document, so it carries the sub-identifier
// assigned during persistence.
func AddBlogImage(blogID uint, accountID uint, imageURL string) (models.Image, error) {
	var image models.Image

	if len(imageURL) == 0 {
		return image, fmt.Errorf("%w: image url is required", ErrInvalidRequest)
	}
	if !IsAllowedImageURL(imageURL) {
		return image, fmt.Errorf("%w: image url must be a data url or an absolute http(s) url", ErrInvalidRequest)
	}

	blog, err := getBlogForUpdate(blogID, accountID)
	if err != nil {
		return image, err
	}

	blog.Images = append(blog.Images, models.Image{
		URL:    imageURL,
		Source: models.ImageSourceManual,
		SubID:  uuid.NewString(),
	})

	if err := database.C.Save(&blog).Error; err != nil {
		return image, fmt.Errorf("unable to persist blog: %v", err)
	}

	FlushBlogCache(blog.ID)

	return blog.Images[len(blog.Images)-1], nil
}

// RemoveBlogImage resolves the token against the blog's gallery and deletes
// the matching entry; everything after it shifts down one position.
//
// The token is tried as a zero-based positional index first and only then as
// a persistent sub-identifier. Index-first precedence is a wire compatibility
// contract: a purely numeric sub-identifier that collides with a valid index
// will be resolved positionally.
func RemoveBlogImage(blogID uint, accountID uint, imageToken string) error {
	if len(imageToken) == 0 {
		return fmt.Errorf("%w: image identifier is required", ErrInvalidRequest)
	}

	blog, err := getBlogForUpdate(blogID, accountID)
	if err != nil {
		return err
	}

	images := blog.Images
	removed := false

	if idx, err := strconv.Atoi(imageToken); err == nil && idx >= 0 && idx < len(images) {
		blog.Images = slices.Delete(images, idx, idx+1)
		removed = true
	} else if _, idx, ok := lo.FindIndexOf([]models.Image(images), func(item models.Image) bool {
		return len(item.SubID) > 0 && item.SubID == imageToken
	}); ok {
		blog.Images = slices.Delete(images, idx, idx+1)
		removed = true
	}

	if !removed {
		// The blog row is left untouched in the store.
		return ErrImageNotFound
	}

	if err := database.C.Save(&blog).Error; err != nil {
		return fmt.Errorf("unable to persist blog: %v", err)
	}

	FlushBlogCache(blog.ID)

	return nil
}
