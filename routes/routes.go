package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sheidamoradi/danesh-platform/config"
	"github.com/sheidamoradi/danesh-platform/controllers"
	"github.com/sheidamoradi/danesh-platform/middleware"
	"github.com/sheidamoradi/danesh-platform/store"
)

// SetupRoutes wires the catalog surface. Reads are public; catalog mutations
// and the user-administration surface require the admin role, progress
// updates any authenticated user.
func SetupRoutes(app *fiber.App, s *store.Store, cfg *config.Config) {
	authRequired := middleware.AuthMiddleware(cfg)
	adminOnly := middleware.AdminMiddleware(cfg)

	// Users and auth
	usersController := controllers.NewUsersController(s, cfg)
	app.Post("/api/admin/login", usersController.AdminLogin)
	app.Post("/api/users", usersController.CreateUser)
	app.Get("/api/user/:id", usersController.GetUser)
	app.Get("/api/users", adminOnly, usersController.ListUsers)
	app.Patch("/api/users/:id", adminOnly, usersController.UpdateUser)
	app.Get("/api/users/:id/course-access", adminOnly, usersController.ListCourseAccess)
	app.Post("/api/users/:id/grant-course-access", adminOnly, usersController.GrantCourseAccess)
	app.Delete("/api/users/:id/revoke-course-access/:courseId", adminOnly, usersController.RevokeCourseAccess)

	// Courses and modules
	coursesController := controllers.NewCoursesController(s, cfg)
	app.Get("/api/courses", coursesController.ListCourses)
	app.Post("/api/courses", adminOnly, coursesController.CreateCourse)
	app.Get("/api/courses/:id", coursesController.GetCourse)
	app.Patch("/api/courses/:id", adminOnly, coursesController.UpdateCourse)
	app.Delete("/api/courses/:id", adminOnly, coursesController.DeleteCourse)
	app.Patch("/api/courses/:id/progress", authRequired, coursesController.UpdateProgress)

	modulesController := controllers.NewModulesController(s, cfg)
	app.Get("/api/courses/:courseId/modules", modulesController.ListCourseModules)
	app.Get("/api/modules/:id", modulesController.GetModule)
	app.Post("/api/modules", adminOnly, modulesController.CreateModule)
	app.Patch("/api/modules/:id", adminOnly, modulesController.UpdateModule)
	app.Delete("/api/modules/:id", adminOnly, modulesController.DeleteModule)

	// Projects
	projectsController := controllers.NewProjectsController(s, cfg)
	app.Get("/api/projects", projectsController.ListProjects)
	app.Post("/api/projects", adminOnly, projectsController.CreateProject)
	app.Get("/api/projects/:id", projectsController.GetProject)
	app.Patch("/api/projects/:id", adminOnly, projectsController.UpdateProject)
	app.Delete("/api/projects/:id", adminOnly, projectsController.DeleteProject)

	// Documents, categories, tags
	documentsController := controllers.NewDocumentsController(s, cfg)
	app.Get("/api/documents", documentsController.ListDocuments)
	app.Post("/api/documents", adminOnly, documentsController.CreateDocument)
	app.Get("/api/documents/:id", documentsController.GetDocument)
	app.Patch("/api/documents/:id", adminOnly, documentsController.UpdateDocument)
	app.Delete("/api/documents/:id", adminOnly, documentsController.DeleteDocument)
	app.Post("/api/documents/:id/view", documentsController.RecordView)
	app.Post("/api/documents/:id/download", documentsController.RecordDownload)
	app.Post("/api/documents/:id/tags/:tagId", adminOnly, documentsController.TagDocument)
	app.Delete("/api/documents/:id/tags/:tagId", adminOnly, documentsController.UntagDocument)
	app.Get("/api/document-categories", documentsController.ListCategories)
	app.Post("/api/document-categories", adminOnly, documentsController.CreateCategory)
	app.Get("/api/document-tags", documentsController.ListTags)
	app.Post("/api/document-tags", adminOnly, documentsController.CreateTag)

	// Media
	mediaController := controllers.NewMediaController(s, cfg)
	app.Get("/api/media", mediaController.ListMedia)
	app.Post("/api/media", adminOnly, mediaController.CreateMedia)
	app.Get("/api/media/:id", mediaController.GetMedia)
	app.Patch("/api/media/:id", adminOnly, mediaController.UpdateMedia)
	app.Delete("/api/media/:id", adminOnly, mediaController.DeleteMedia)

	// Magazines, articles, article contents
	magazinesController := controllers.NewMagazinesController(s, cfg)
	app.Get("/api/magazines", magazinesController.ListMagazines)
	app.Post("/api/magazines", adminOnly, magazinesController.CreateMagazine)
	app.Get("/api/magazines/:id", magazinesController.GetMagazine)
	app.Patch("/api/magazines/:id", adminOnly, magazinesController.UpdateMagazine)
	app.Delete("/api/magazines/:id", adminOnly, magazinesController.DeleteMagazine)
	app.Get("/api/magazines/:magazineId/articles", magazinesController.ListMagazineArticles)
	app.Get("/api/articles", magazinesController.ListArticles)
	app.Post("/api/articles", adminOnly, magazinesController.CreateArticle)
	app.Get("/api/articles/:id", magazinesController.GetArticle)
	app.Patch("/api/articles/:id", adminOnly, magazinesController.UpdateArticle)
	app.Delete("/api/articles/:id", adminOnly, magazinesController.DeleteArticle)
	app.Get("/api/article-contents", magazinesController.ListArticleContents)
	app.Post("/api/article-contents", adminOnly, magazinesController.CreateArticleContent)
	app.Get("/api/article-contents/:id", magazinesController.GetArticleContent)
	app.Patch("/api/article-contents/:id", adminOnly, magazinesController.UpdateArticleContent)
	app.Delete("/api/article-contents/:id", adminOnly, magazinesController.DeleteArticleContent)

	// Workshops, sections, contents
	workshopsController := controllers.NewWorkshopsController(s, cfg)
	app.Get("/api/workshops", workshopsController.ListWorkshops)
	app.Post("/api/workshops", adminOnly, workshopsController.CreateWorkshop)
	app.Get("/api/workshops/:id", workshopsController.GetWorkshop)
	app.Patch("/api/workshops/:id", adminOnly, workshopsController.UpdateWorkshop)
	app.Delete("/api/workshops/:id", adminOnly, workshopsController.DeleteWorkshop)
	app.Get("/api/workshop-sections", workshopsController.ListSections)
	app.Post("/api/workshop-sections", adminOnly, workshopsController.CreateSection)
	app.Patch("/api/workshop-sections/:id", adminOnly, workshopsController.UpdateSection)
	app.Delete("/api/workshop-sections/:id", adminOnly, workshopsController.DeleteSection)
	app.Get("/api/workshop-contents", workshopsController.ListContents)
	app.Post("/api/workshop-contents", adminOnly, workshopsController.CreateContent)
	app.Get("/api/workshop-contents/:id", workshopsController.GetContent)
	app.Patch("/api/workshop-contents/:id", adminOnly, workshopsController.UpdateContent)
	app.Delete("/api/workshop-contents/:id", adminOnly, workshopsController.DeleteContent)

	// Slides; /active must precede /:id
	slidesController := controllers.NewSlidesController(s, cfg)
	app.Get("/api/slides", slidesController.ListSlides)
	app.Get("/api/slides/active", slidesController.ActiveSlides)
	app.Post("/api/slides", adminOnly, slidesController.CreateSlide)
	app.Get("/api/slides/:id", slidesController.GetSlide)
	app.Patch("/api/slides/:id", adminOnly, slidesController.UpdateSlide)
	app.Delete("/api/slides/:id", adminOnly, slidesController.DeleteSlide)
}
