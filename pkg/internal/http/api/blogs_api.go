package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inkwell-blog/inkwell/pkg/internal/http/exts"
	"github.com/inkwell-blog/inkwell/pkg/internal/models"
	"github.com/inkwell-blog/inkwell/pkg/internal/services"
)

func getBlog(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	blogID, err := c.ParamsInt("blogId")
	if err != nil || blogID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "blog id is required")
	}

	item, err := services.GetBlog(uint(blogID), user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "blog not found")
	}

	return c.JSON(item)
}

func listBlog(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	take := c.QueryInt("take", 10)
	offset := c.QueryInt("offset", 0)

	count, err := services.CountBlog(user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListBlog(user.ID, take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  items,
	})
}

func createBlog(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	var data struct {
		Title   string `json:"title" validate:"required,max=256"`
		Content string `json:"content" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewBlog(user, data.Title, data.Content)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(item)
}

func editBlog(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	blogID, err := c.ParamsInt("blogId")
	if err != nil || blogID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "blog id is required")
	}

	var data struct {
		Title   string `json:"title" validate:"required,max=256"`
		Content string `json:"content" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.GetBlog(uint(blogID), user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "blog not found")
	}

	if item, err = services.EditBlog(item, data.Title, data.Content); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(item)
}

func deleteBlog(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	blogID, err := c.ParamsInt("blogId")
	if err != nil || blogID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "blog id is required")
	}

	item, err := services.GetBlog(uint(blogID), user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "blog not found")
	}

	if err := services.DeleteBlog(item); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "blog deleted successfully",
	})
}
