package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sheidamoradi/danesh-platform/config"
	"github.com/sheidamoradi/danesh-platform/models"
	"github.com/sheidamoradi/danesh-platform/store"
	"github.com/sheidamoradi/danesh-platform/utils"
)

type ProjectsController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewProjectsController(s *store.Store, cfg *config.Config) *ProjectsController {
	return &ProjectsController{Store: s, Cfg: cfg}
}

func (pc *ProjectsController) ListProjects(c *fiber.Ctx) error {
	filter := store.ProjectFilter{
		Type:       c.Query("type"),
		SearchTerm: c.Query("search"),
	}
	projects, err := pc.Store.ListProjects(filter)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(projects)
}

func (pc *ProjectsController) GetProject(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid project ID")
	}
	project, err := pc.Store.GetProject(id)
	if err != nil {
		return respondErr(c, err)
	}

	user := currentUser(c, pc.Store, pc.Cfg)
	access, err := pc.Store.CanAccess(user, project)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{
		"project": project,
		"access":  access,
	})
}

func (pc *ProjectsController) CreateProject(c *fiber.Ctx) error {
	var project models.Project
	if err := c.BodyParser(&project); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	project.ID = 0
	if err := pc.Store.CreateProject(&project); err != nil {
		return respondErr(c, err)
	}
	return utils.Created(c, project)
}

func (pc *ProjectsController) UpdateProject(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid project ID")
	}
	var patch store.ProjectPatch
	if err := utils.DecodeStrict(c.Body(), &patch); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON: "+err.Error())
	}
	project, err := pc.Store.UpdateProject(id, patch)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(project)
}

func (pc *ProjectsController) DeleteProject(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid project ID")
	}
	existed, err := pc.Store.DeleteProject(id)
	if err != nil {
		return respondErr(c, err)
	}
	if !existed {
		return utils.NotFound(c, "Project not found")
	}
	return utils.NoContent(c)
}
