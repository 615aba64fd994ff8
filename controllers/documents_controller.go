package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/sheidamoradi/danesh-platform/config"
	"github.com/sheidamoradi/danesh-platform/models"
	"github.com/sheidamoradi/danesh-platform/store"
	"github.com/sheidamoradi/danesh-platform/utils"
)

type DocumentsController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewDocumentsController(s *store.Store, cfg *config.Config) *DocumentsController {
	return &DocumentsController{Store: s, Cfg: cfg}
}

// ListDocuments godoc
// @Summary List documents
// @Description Lists published documents with category, tag, search and sort filters
// @Tags documents
// @Produce json
// @Router /documents [get]
func (dc *DocumentsController) ListDocuments(c *fiber.Ctx) error {
	filter := store.DocumentFilter{
		SearchTerm: c.Query("search"),
		Status:     c.Query("status"),
		Sort:       c.Query("sort"),
	}
	if v := c.Query("categoryId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil || id <= 0 {
			return utils.BadRequest(c, "Invalid category ID")
		}
		cid := uint(id)
		filter.CategoryID = &cid
	}
	if v := c.Query("tagId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil || id <= 0 {
			return utils.BadRequest(c, "Invalid tag ID")
		}
		tid := uint(id)
		filter.TagID = &tid
	}

	docs, err := dc.Store.ListDocuments(filter)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(docs)
}

func (dc *DocumentsController) GetDocument(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid document ID")
	}
	doc, err := dc.Store.GetDocument(id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(doc)
}

func (dc *DocumentsController) CreateDocument(c *fiber.Ctx) error {
	var doc models.Document
	if err := c.BodyParser(&doc); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	doc.ID = 0
	doc.ViewCount = 0
	doc.DownloadCount = 0
	if err := dc.Store.CreateDocument(&doc); err != nil {
		return respondErr(c, err)
	}
	return utils.Created(c, doc)
}

func (dc *DocumentsController) UpdateDocument(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid document ID")
	}
	var patch store.DocumentPatch
	if err := utils.DecodeStrict(c.Body(), &patch); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON: "+err.Error())
	}
	doc, err := dc.Store.UpdateDocument(id, patch)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(doc)
}

func (dc *DocumentsController) DeleteDocument(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid document ID")
	}
	existed, err := dc.Store.DeleteDocument(id)
	if err != nil {
		return respondErr(c, err)
	}
	if !existed {
		return utils.NotFound(c, "Document not found")
	}
	return utils.NoContent(c)
}

// RecordView bumps the view counter.
func (dc *DocumentsController) RecordView(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid document ID")
	}
	if err := dc.Store.IncrementViewCount(id); err != nil {
		return respondErr(c, err)
	}
	return utils.NoContent(c)
}

// RecordDownload bumps the download counter; 400 when downloads are off.
func (dc *DocumentsController) RecordDownload(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid document ID")
	}
	if err := dc.Store.IncrementDownloadCount(id); err != nil {
		return respondErr(c, err)
	}
	return utils.NoContent(c)
}

func (dc *DocumentsController) ListCategories(c *fiber.Ctx) error {
	cats, err := dc.Store.ListDocumentCategories()
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(cats)
}

func (dc *DocumentsController) CreateCategory(c *fiber.Ctx) error {
	var cat models.DocumentCategory
	if err := c.BodyParser(&cat); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	cat.ID = 0
	if err := dc.Store.CreateDocumentCategory(&cat); err != nil {
		return respondErr(c, err)
	}
	return utils.Created(c, cat)
}

func (dc *DocumentsController) ListTags(c *fiber.Ctx) error {
	tags, err := dc.Store.ListDocumentTags()
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(tags)
}

func (dc *DocumentsController) CreateTag(c *fiber.Ctx) error {
	var tag models.DocumentTag
	if err := c.BodyParser(&tag); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	tag.ID = 0
	if err := dc.Store.CreateDocumentTag(&tag); err != nil {
		return respondErr(c, err)
	}
	return utils.Created(c, tag)
}

// TagDocument links a tag to a document.
func (dc *DocumentsController) TagDocument(c *fiber.Ctx) error {
	docID, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid document ID")
	}
	tagID, err := parseID(c, "tagId")
	if err != nil {
		return utils.BadRequest(c, "Invalid tag ID")
	}
	if err := dc.Store.TagDocument(docID, tagID); err != nil {
		return respondErr(c, err)
	}
	return utils.NoContent(c)
}

func (dc *DocumentsController) UntagDocument(c *fiber.Ctx) error {
	docID, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid document ID")
	}
	tagID, err := parseID(c, "tagId")
	if err != nil {
		return utils.BadRequest(c, "Invalid tag ID")
	}
	existed, err := dc.Store.UntagDocument(docID, tagID)
	if err != nil {
		return respondErr(c, err)
	}
	if !existed {
		return utils.NotFound(c, "Tag relation not found")
	}
	return utils.NoContent(c)
}
