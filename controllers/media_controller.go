package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sheidamoradi/danesh-platform/config"
	"github.com/sheidamoradi/danesh-platform/models"
	"github.com/sheidamoradi/danesh-platform/store"
	"github.com/sheidamoradi/danesh-platform/utils"
)

type MediaController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewMediaController(s *store.Store, cfg *config.Config) *MediaController {
	return &MediaController{Store: s, Cfg: cfg}
}

func (mc *MediaController) ListMedia(c *fiber.Ctx) error {
	media, err := mc.Store.ListMediaContents()
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(media)
}

func (mc *MediaController) GetMedia(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid media ID")
	}
	media, err := mc.Store.GetMediaContent(id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(media)
}

func (mc *MediaController) CreateMedia(c *fiber.Ctx) error {
	var media models.MediaContent
	if err := c.BodyParser(&media); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	media.ID = 0
	if err := mc.Store.CreateMediaContent(&media); err != nil {
		return respondErr(c, err)
	}
	return utils.Created(c, media)
}

func (mc *MediaController) UpdateMedia(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid media ID")
	}
	var patch store.MediaContentPatch
	if err := utils.DecodeStrict(c.Body(), &patch); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON: "+err.Error())
	}
	media, err := mc.Store.UpdateMediaContent(id, patch)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(media)
}

func (mc *MediaController) DeleteMedia(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid media ID")
	}
	existed, err := mc.Store.DeleteMediaContent(id)
	if err != nil {
		return respondErr(c, err)
	}
	if !existed {
		return utils.NotFound(c, "Media not found")
	}
	return utils.NoContent(c)
}
