package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/inkwell-blog/inkwell/pkg/internal/http/exts"
	"github.com/inkwell-blog/inkwell/pkg/internal/models"
	"github.com/inkwell-blog/inkwell/pkg/internal/services"
)

func mapImageServiceError(err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidRequest):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrBlogNotFound), errors.Is(err, services.ErrImageNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}

func addBlogImage(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	blogID, err := c.ParamsInt("blogId")
	if err != nil || blogID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "blog id is required")
	}

	var data struct {
		ImageURL string `json:"imageUrl"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	image, err := services.AddBlogImage(uint(blogID), user.ID, data.ImageURL)
	if err != nil {
		return mapImageServiceError(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"image":   image,
	})
}

func removeBlogImage(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	blogID, err := c.ParamsInt("blogId")
	if err != nil || blogID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "blog id is required")
	}

	imageToken := c.Params("imageToken")
	if len(imageToken) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "image identifier is required")
	}

	if err := services.RemoveBlogImage(uint(blogID), user.ID, imageToken); err != nil {
		return mapImageServiceError(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "image removed successfully",
	})
}
