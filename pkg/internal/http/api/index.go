package api

import "github.com/gofiber/fiber/v2"

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL)
	{
		api.Get("/ping", ping)

		auth := api.Group("/auth")
		{
			auth.Post("/signup", doSignup)
			auth.Post("/login", doLogin)
		}

		blog := api.Group("/blog", authMiddleware)
		{
			blog.Get("/", listBlog)
			blog.Post("/", createBlog)
			blog.Get("/:blogId", getBlog)
			blog.Put("/:blogId", editBlog)
			blog.Delete("/:blogId", deleteBlog)

			blog.Post("/:blogId/images", addBlogImage)
			blog.Delete("/:blogId/images/:imageToken", removeBlogImage)
		}
	}
}
