package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sheidamoradi/danesh-platform/config"
	"github.com/sheidamoradi/danesh-platform/models"
	"github.com/sheidamoradi/danesh-platform/store"
	"github.com/sheidamoradi/danesh-platform/utils"
)

type CoursesController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewCoursesController(s *store.Store, cfg *config.Config) *CoursesController {
	return &CoursesController{Store: s, Cfg: cfg}
}

// ListCourses godoc
// @Summary List courses
// @Description Lists courses filtered by category, access level and search term
// @Tags courses
// @Produce json
// @Router /courses [get]
func (cc *CoursesController) ListCourses(c *fiber.Ctx) error {
	filter := store.CourseFilter{
		Category:    c.Query("category"),
		AccessLevel: c.Query("accessLevel"),
		SearchTerm:  c.Query("search"),
	}
	courses, err := cc.Store.ListCourses(filter)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(courses)
}

// GetCourse returns a single course together with the requester's access
// decision so the client never re-derives lock rules.
func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	course, err := cc.Store.GetCourse(id)
	if err != nil {
		return respondErr(c, err)
	}

	user := currentUser(c, cc.Store, cc.Cfg)
	access, err := cc.Store.CanAccess(user, course)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(fiber.Map{
		"course": course,
		"access": access,
	})
}

func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	course.ID = 0
	if err := cc.Store.CreateCourse(&course); err != nil {
		return respondErr(c, err)
	}
	return utils.Created(c, course)
}

func (cc *CoursesController) UpdateCourse(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	var patch store.CoursePatch
	if err := utils.DecodeStrict(c.Body(), &patch); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON: "+err.Error())
	}
	course, err := cc.Store.UpdateCourse(id, patch)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(course)
}

// UpdateProgress godoc
// @Summary Update course progress
// @Description Sets the course progress percentage; out-of-range values are rejected
// @Tags courses
// @Accept json
// @Produce json
// @Router /courses/{id}/progress [patch]
func (cc *CoursesController) UpdateProgress(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var input struct {
		Progress *int `json:"progress"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Progress == nil {
		return utils.BadRequest(c, "progress is required")
	}

	course, err := cc.Store.UpdateProgress(id, *input.Progress)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(course)
}

func (cc *CoursesController) DeleteCourse(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	existed, err := cc.Store.DeleteCourse(id)
	if err != nil {
		return respondErr(c, err)
	}
	if !existed {
		return utils.NotFound(c, "Course not found")
	}
	return utils.NoContent(c)
}
