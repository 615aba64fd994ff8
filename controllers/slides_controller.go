package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sheidamoradi/danesh-platform/config"
	"github.com/sheidamoradi/danesh-platform/models"
	"github.com/sheidamoradi/danesh-platform/store"
	"github.com/sheidamoradi/danesh-platform/utils"
)

type SlidesController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewSlidesController(s *store.Store, cfg *config.Config) *SlidesController {
	return &SlidesController{Store: s, Cfg: cfg}
}

func (sc *SlidesController) ListSlides(c *fiber.Ctx) error {
	slides, err := sc.Store.ListSlides()
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(slides)
}

// ActiveSlides returns the landing-page carousel in display order.
func (sc *SlidesController) ActiveSlides(c *fiber.Ctx) error {
	slides, err := sc.Store.ActiveSlides()
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(slides)
}

func (sc *SlidesController) GetSlide(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid slide ID")
	}
	slide, err := sc.Store.GetSlide(id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(slide)
}

func (sc *SlidesController) CreateSlide(c *fiber.Ctx) error {
	var slide models.Slide
	if err := c.BodyParser(&slide); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	slide.ID = 0
	if err := sc.Store.CreateSlide(&slide); err != nil {
		return respondErr(c, err)
	}
	return utils.Created(c, slide)
}

func (sc *SlidesController) UpdateSlide(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid slide ID")
	}
	var patch store.SlidePatch
	if err := utils.DecodeStrict(c.Body(), &patch); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON: "+err.Error())
	}
	slide, err := sc.Store.UpdateSlide(id, patch)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(slide)
}

func (sc *SlidesController) DeleteSlide(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid slide ID")
	}
	existed, err := sc.Store.DeleteSlide(id)
	if err != nil {
		return respondErr(c, err)
	}
	if !existed {
		return utils.NotFound(c, "Slide not found")
	}
	return utils.NoContent(c)
}
