package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sheidamoradi/danesh-platform/config"
	"github.com/sheidamoradi/danesh-platform/models"
	"github.com/sheidamoradi/danesh-platform/store"
	"github.com/sheidamoradi/danesh-platform/utils"
)

type WorkshopsController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewWorkshopsController(s *store.Store, cfg *config.Config) *WorkshopsController {
	return &WorkshopsController{Store: s, Cfg: cfg}
}

func (wc *WorkshopsController) ListWorkshops(c *fiber.Ctx) error {
	workshops, err := wc.Store.ListWorkshops()
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(workshops)
}

// GetWorkshop returns the workshop, its ordered sections and contents, and
// the requester's access decision.
func (wc *WorkshopsController) GetWorkshop(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid workshop ID")
	}
	workshop, err := wc.Store.GetWorkshop(id)
	if err != nil {
		return respondErr(c, err)
	}
	sections, err := wc.Store.ListWorkshopSections(id)
	if err != nil {
		return respondErr(c, err)
	}
	contents, err := wc.Store.ListWorkshopContents(id)
	if err != nil {
		return respondErr(c, err)
	}

	user := currentUser(c, wc.Store, wc.Cfg)
	access, err := wc.Store.CanAccess(user, workshop)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{
		"workshop": workshop,
		"sections": sections,
		"contents": contents,
		"access":   access,
	})
}

func (wc *WorkshopsController) CreateWorkshop(c *fiber.Ctx) error {
	var workshop models.Workshop
	if err := c.BodyParser(&workshop); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	workshop.ID = 0
	if err := wc.Store.CreateWorkshop(&workshop); err != nil {
		return respondErr(c, err)
	}
	return utils.Created(c, workshop)
}

func (wc *WorkshopsController) UpdateWorkshop(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid workshop ID")
	}
	var patch store.WorkshopPatch
	if err := utils.DecodeStrict(c.Body(), &patch); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON: "+err.Error())
	}
	workshop, err := wc.Store.UpdateWorkshop(id, patch)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(workshop)
}

func (wc *WorkshopsController) DeleteWorkshop(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid workshop ID")
	}
	existed, err := wc.Store.DeleteWorkshop(id)
	if err != nil {
		return respondErr(c, err)
	}
	if !existed {
		return utils.NotFound(c, "Workshop not found")
	}
	return utils.NoContent(c)
}

func (wc *WorkshopsController) ListSections(c *fiber.Ctx) error {
	var workshopID uint
	if v := c.Query("workshopId"); v != "" {
		id, err := parseQueryID(v)
		if err != nil {
			return utils.BadRequest(c, "Invalid workshop ID")
		}
		workshopID = id
	}
	sections, err := wc.Store.ListWorkshopSections(workshopID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(sections)
}

func (wc *WorkshopsController) CreateSection(c *fiber.Ctx) error {
	var section models.WorkshopSection
	if err := c.BodyParser(&section); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	section.ID = 0
	if err := wc.Store.CreateWorkshopSection(&section); err != nil {
		return respondErr(c, err)
	}
	return utils.Created(c, section)
}

func (wc *WorkshopsController) UpdateSection(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid section ID")
	}
	var patch store.WorkshopSectionPatch
	if err := utils.DecodeStrict(c.Body(), &patch); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON: "+err.Error())
	}
	section, err := wc.Store.UpdateWorkshopSection(id, patch)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(section)
}

func (wc *WorkshopsController) DeleteSection(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid section ID")
	}
	existed, err := wc.Store.DeleteWorkshopSection(id)
	if err != nil {
		return respondErr(c, err)
	}
	if !existed {
		return utils.NotFound(c, "Workshop section not found")
	}
	return utils.NoContent(c)
}

func (wc *WorkshopsController) ListContents(c *fiber.Ctx) error {
	var workshopID uint
	if v := c.Query("workshopId"); v != "" {
		id, err := parseQueryID(v)
		if err != nil {
			return utils.BadRequest(c, "Invalid workshop ID")
		}
		workshopID = id
	}
	contents, err := wc.Store.ListWorkshopContents(workshopID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(contents)
}

func (wc *WorkshopsController) GetContent(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid content ID")
	}
	content, err := wc.Store.GetWorkshopContent(id)
	if err != nil {
		return respondErr(c, err)
	}

	user := currentUser(c, wc.Store, wc.Cfg)
	access, err := wc.Store.CanAccess(user, content)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{
		"content": content,
		"access":  access,
	})
}

func (wc *WorkshopsController) CreateContent(c *fiber.Ctx) error {
	var content models.WorkshopContent
	if err := c.BodyParser(&content); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	content.ID = 0
	if err := wc.Store.CreateWorkshopContent(&content); err != nil {
		return respondErr(c, err)
	}
	return utils.Created(c, content)
}

func (wc *WorkshopsController) UpdateContent(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid content ID")
	}
	var patch store.WorkshopContentPatch
	if err := utils.DecodeStrict(c.Body(), &patch); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON: "+err.Error())
	}
	content, err := wc.Store.UpdateWorkshopContent(id, patch)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(content)
}

func (wc *WorkshopsController) DeleteContent(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid content ID")
	}
	existed, err := wc.Store.DeleteWorkshopContent(id)
	if err != nil {
		return respondErr(c, err)
	}
	if !existed {
		return utils.NotFound(c, "Workshop content not found")
	}
	return utils.NoContent(c)
}
