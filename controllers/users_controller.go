package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/sheidamoradi/danesh-platform/config"
	"github.com/sheidamoradi/danesh-platform/models"
	"github.com/sheidamoradi/danesh-platform/store"
	"github.com/sheidamoradi/danesh-platform/utils"
)

type UsersController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewUsersController(s *store.Store, cfg *config.Config) *UsersController {
	return &UsersController{Store: s, Cfg: cfg}
}

func (uc *UsersController) ListUsers(c *fiber.Ctx) error {
	users, err := uc.Store.ListUsers()
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(users)
}

func (uc *UsersController) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}
	user, err := uc.Store.GetUser(id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(user)
}

// CreateUser registers an account; the password is hashed before it reaches
// the store.
func (uc *UsersController) CreateUser(c *fiber.Ctx) error {
	var input struct {
		Username       string `json:"username"`
		Password       string `json:"password"`
		Name           string `json:"name"`
		Role           string `json:"role"`
		MembershipType string `json:"membershipType"`
		Avatar         string `json:"avatar"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Password == "" {
		return utils.BadRequest(c, "password is required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.InternalServerError(c, "Could not hash password")
	}

	user := models.User{
		Username:       input.Username,
		PasswordHash:   string(hashed),
		Name:           input.Name,
		Role:           input.Role,
		MembershipType: input.MembershipType,
		Avatar:         input.Avatar,
	}
	if err := uc.Store.CreateUser(&user); err != nil {
		return respondErr(c, err)
	}
	return utils.Created(c, user)
}

func (uc *UsersController) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}
	var patch store.UserPatch
	if err := utils.DecodeStrict(c.Body(), &patch); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON: "+err.Error())
	}
	user, err := uc.Store.UpdateUser(id, patch)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(user)
}

// AdminLogin godoc
// @Summary Admin login
// @Description Authenticates an admin and returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Router /admin/login [post]
func (uc *UsersController) AdminLogin(c *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := uc.Store.GetUserByUsername(input.Username)
	if err != nil {
		return utils.Unauthorized(c, "Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return utils.Unauthorized(c, "Invalid credentials")
	}
	if !user.IsAdmin() {
		return utils.Unauthorized(c, "Admin access required")
	}

	token, err := utils.GenerateJWTToken(user.ID, user.Role, uc.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"id":       user.ID,
		"username": user.Username,
		"name":     user.Name,
		"role":     user.Role,
		"token":    token,
	})
}

// ListCourseAccess returns every grant a user holds.
func (uc *UsersController) ListCourseAccess(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}
	if _, err := uc.Store.GetUser(id); err != nil {
		return respondErr(c, err)
	}
	grants, err := uc.Store.ListAccessByUser(id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(grants)
}

// GrantCourseAccess upserts a grant for the user; a repeated grant replaces
// the previous one.
func (uc *UsersController) GrantCourseAccess(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	var input struct {
		CourseID   uint       `json:"courseId"`
		AccessType string     `json:"accessType"`
		ExpiryDate *time.Time `json:"expiryDate"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.CourseID == 0 {
		return utils.BadRequest(c, "courseId is required")
	}

	grant, err := uc.Store.GrantAccess(id, input.CourseID, input.AccessType, input.ExpiryDate)
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Created(c, grant)
}

func (uc *UsersController) RevokeCourseAccess(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}
	courseID, err := parseID(c, "courseId")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	existed, err := uc.Store.RevokeAccess(id, courseID)
	if err != nil {
		return respondErr(c, err)
	}
	if !existed {
		return utils.NotFound(c, "Access grant not found")
	}
	return utils.NoContent(c)
}
