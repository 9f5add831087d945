package services

import (
	"context"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"

	localCache "github.com/inkwell-blog/inkwell/pkg/internal/cache"
	"github.com/inkwell-blog/inkwell/pkg/internal/database"
	"github.com/inkwell-blog/inkwell/pkg/internal/models"
)

func GetBlogCacheKey(id uint, accountID uint) string {
	return fmt.Sprintf("blog-query#%d;%d", id, accountID)
}

// GetBlog loads one blog scoped by the (id, account_id) compound filter.
// A blog owned by somebody else is indistinguishable from a missing one.
// Reads go through the local cache; every mutation flushes it by tag.
func GetBlog(id uint, accountID uint) (models.Blog, error) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	if val, err := marshal.Get(ctx, GetBlogCacheKey(id, accountID), new(models.Blog)); err == nil {
		return *(val.(*models.Blog)), nil
	}

	var blog models.Blog
	if err := database.C.Where("id = ? AND account_id = ?", id, accountID).First(&blog).Error; err != nil {
		return blog, err
	}

	_ = marshal.Set(
		ctx,
		GetBlogCacheKey(id, accountID),
		blog,
		store.WithExpiration(30*time.Minute),
		store.WithTags([]string{"blog-query", fmt.Sprintf("blog#%d", id)}),
	)

	return blog, nil
}

func FlushBlogCache(id uint) {
	cacheManager := cache.New[any](localCache.S)
	ctx := context.Background()

	_ = cacheManager.Invalidate(ctx, store.WithInvalidateTags([]string{fmt.Sprintf("blog#%d", id)}))
}

func CountBlog(accountID uint) (int64, error) {
	var count int64
	err := database.C.Model(&models.Blog{}).Where("account_id = ?", accountID).Count(&count).Error
	return count, err
}

func ListBlog(accountID uint, take int, offset int) ([]models.Blog, error) {
	if take > 100 {
		take = 100
	}

	var blogs []models.Blog
	err := database.C.Where("account_id = ?", accountID).
		Limit(take).Offset(offset).
		Order("created_at DESC").
		Find(&blogs).Error

	return blogs, err
}

func NewBlog(user models.Account, title, content string) (models.Blog, error) {
	blog := models.Blog{
		Title:     title,
		Content:   content,
		Language:  DetectLanguage(content),
		Images:    []models.Image{},
		AccountID: user.ID,
	}

	if err := database.C.Save(&blog).Error; err != nil {
		return blog, err
	}

	return blog, nil
}

func EditBlog(blog models.Blog, title, content string) (models.Blog, error) {
	blog.Title = title
	blog.Content = content
	blog.Language = DetectLanguage(content)

	if err := database.C.Save(&blog).Error; err != nil {
		return blog, err
	}

	FlushBlogCache(blog.ID)

	return blog, nil
}

func DeleteBlog(blog models.Blog) error {
	if err := database.C.Delete(&blog).Error; err != nil {
		return err
	}

	FlushBlogCache(blog.ID)

	return nil
}
