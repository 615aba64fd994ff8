package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sheidamoradi/danesh-platform/config"
	"github.com/sheidamoradi/danesh-platform/models"
	"github.com/sheidamoradi/danesh-platform/store"
	"github.com/sheidamoradi/danesh-platform/utils"
)

type ModulesController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewModulesController(s *store.Store, cfg *config.Config) *ModulesController {
	return &ModulesController{Store: s, Cfg: cfg}
}

type moduleWithAccess struct {
	models.Module
	Access store.AccessDecision `json:"access"`
}

// ListCourseModules returns a course's modules in traversal order, each
// annotated with the requester's access decision.
func (mc *ModulesController) ListCourseModules(c *fiber.Ctx) error {
	courseID, err := parseID(c, "courseId")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	if _, err := mc.Store.GetCourse(courseID); err != nil {
		return respondErr(c, err)
	}

	mods, err := mc.Store.ListModulesByCourse(courseID)
	if err != nil {
		return respondErr(c, err)
	}

	user := currentUser(c, mc.Store, mc.Cfg)
	out := make([]moduleWithAccess, 0, len(mods))
	for i := range mods {
		access, err := mc.Store.CanAccess(user, &mods[i])
		if err != nil {
			return respondErr(c, err)
		}
		out = append(out, moduleWithAccess{Module: mods[i], Access: access})
	}
	return c.JSON(out)
}

func (mc *ModulesController) GetModule(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid module ID")
	}
	mod, err := mc.Store.GetModule(id)
	if err != nil {
		return respondErr(c, err)
	}

	user := currentUser(c, mc.Store, mc.Cfg)
	access, err := mc.Store.CanAccess(user, mod)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(moduleWithAccess{Module: *mod, Access: access})
}

func (mc *ModulesController) CreateModule(c *fiber.Ctx) error {
	var mod models.Module
	if err := c.BodyParser(&mod); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	mod.ID = 0
	if err := mc.Store.CreateModule(&mod); err != nil {
		return respondErr(c, err)
	}
	return utils.Created(c, mod)
}

func (mc *ModulesController) UpdateModule(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid module ID")
	}
	var patch store.ModulePatch
	if err := utils.DecodeStrict(c.Body(), &patch); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON: "+err.Error())
	}
	mod, err := mc.Store.UpdateModule(id, patch)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(mod)
}

func (mc *ModulesController) DeleteModule(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid module ID")
	}
	existed, err := mc.Store.DeleteModule(id)
	if err != nil {
		return respondErr(c, err)
	}
	if !existed {
		return utils.NotFound(c, "Module not found")
	}
	return utils.NoContent(c)
}
