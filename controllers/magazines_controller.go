package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sheidamoradi/danesh-platform/config"
	"github.com/sheidamoradi/danesh-platform/models"
	"github.com/sheidamoradi/danesh-platform/store"
	"github.com/sheidamoradi/danesh-platform/utils"
)

type MagazinesController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewMagazinesController(s *store.Store, cfg *config.Config) *MagazinesController {
	return &MagazinesController{Store: s, Cfg: cfg}
}

func (mc *MagazinesController) ListMagazines(c *fiber.Ctx) error {
	mags, err := mc.Store.ListMagazines()
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(mags)
}

func (mc *MagazinesController) GetMagazine(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid magazine ID")
	}
	mag, err := mc.Store.GetMagazine(id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(mag)
}

func (mc *MagazinesController) CreateMagazine(c *fiber.Ctx) error {
	var mag models.Magazine
	if err := c.BodyParser(&mag); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	mag.ID = 0
	if err := mc.Store.CreateMagazine(&mag); err != nil {
		return respondErr(c, err)
	}
	return utils.Created(c, mag)
}

func (mc *MagazinesController) UpdateMagazine(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid magazine ID")
	}
	var patch store.MagazinePatch
	if err := utils.DecodeStrict(c.Body(), &patch); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON: "+err.Error())
	}
	mag, err := mc.Store.UpdateMagazine(id, patch)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(mag)
}

// DeleteMagazine removes the issue with its articles and contents; 204 on
// success.
func (mc *MagazinesController) DeleteMagazine(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid magazine ID")
	}
	existed, err := mc.Store.DeleteMagazine(id)
	if err != nil {
		return respondErr(c, err)
	}
	if !existed {
		return utils.NotFound(c, "Magazine not found")
	}
	return utils.NoContent(c)
}

func (mc *MagazinesController) ListArticles(c *fiber.Ctx) error {
	articles, err := mc.Store.ListArticles()
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(articles)
}

// ListMagazineArticles returns an issue's articles in reading order.
func (mc *MagazinesController) ListMagazineArticles(c *fiber.Ctx) error {
	magazineID, err := parseID(c, "magazineId")
	if err != nil {
		return utils.BadRequest(c, "Invalid magazine ID")
	}
	if _, err := mc.Store.GetMagazine(magazineID); err != nil {
		return respondErr(c, err)
	}
	articles, err := mc.Store.ListArticlesByMagazine(magazineID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(articles)
}

func (mc *MagazinesController) GetArticle(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid article ID")
	}
	article, err := mc.Store.GetArticle(id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(article)
}

func (mc *MagazinesController) CreateArticle(c *fiber.Ctx) error {
	var article models.Article
	if err := c.BodyParser(&article); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	article.ID = 0
	if err := mc.Store.CreateArticle(&article); err != nil {
		return respondErr(c, err)
	}
	return utils.Created(c, article)
}

func (mc *MagazinesController) UpdateArticle(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid article ID")
	}
	var patch store.ArticlePatch
	if err := utils.DecodeStrict(c.Body(), &patch); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON: "+err.Error())
	}
	article, err := mc.Store.UpdateArticle(id, patch)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(article)
}

func (mc *MagazinesController) DeleteArticle(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid article ID")
	}
	existed, err := mc.Store.DeleteArticle(id)
	if err != nil {
		return respondErr(c, err)
	}
	if !existed {
		return utils.NotFound(c, "Article not found")
	}
	return utils.NoContent(c)
}

func (mc *MagazinesController) ListArticleContents(c *fiber.Ctx) error {
	var articleID uint
	if v := c.Query("articleId"); v != "" {
		id, err := parseQueryID(v)
		if err != nil {
			return utils.BadRequest(c, "Invalid article ID")
		}
		articleID = id
	}
	contents, err := mc.Store.ListArticleContents(articleID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(contents)
}

func (mc *MagazinesController) GetArticleContent(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid content ID")
	}
	content, err := mc.Store.GetArticleContent(id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(content)
}

func (mc *MagazinesController) CreateArticleContent(c *fiber.Ctx) error {
	var content models.ArticleContent
	if err := c.BodyParser(&content); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	content.ID = 0
	if err := mc.Store.CreateArticleContent(&content); err != nil {
		return respondErr(c, err)
	}
	return utils.Created(c, content)
}

func (mc *MagazinesController) UpdateArticleContent(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid content ID")
	}
	var patch store.ArticleContentPatch
	if err := utils.DecodeStrict(c.Body(), &patch); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON: "+err.Error())
	}
	content, err := mc.Store.UpdateArticleContent(id, patch)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(content)
}

func (mc *MagazinesController) DeleteArticleContent(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid content ID")
	}
	existed, err := mc.Store.DeleteArticleContent(id)
	if err != nil {
		return respondErr(c, err)
	}
	if !existed {
		return utils.NotFound(c, "Article content not found")
	}
	return utils.NoContent(c)
}
