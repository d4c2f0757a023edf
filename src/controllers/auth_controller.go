package controllers

import (
	"errors"
	"net/http"

	"Backend-VolunteerHub/src/models"
	"Backend-VolunteerHub/src/services/auth"
	"Backend-VolunteerHub/src/utils"

	"github.com/gofiber/fiber/v2"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register godoc
// @Summary      Register a volunteer account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body controllers.RegisterRequest true "Account data"
// @Success      201  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /auth/register [post]
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	user, err := auth.Register(req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			return utils.HandleError(c, http.StatusConflict, err.Error())
		}
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(models.SuccessResponse{Message: "Account created", Data: user})
}

// Login godoc
// @Summary      Log in and receive a JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body controllers.LoginRequest true "Credentials"
// @Success      200  {object}  models.SuccessResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	token, user, err := auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.HandleError(c, http.StatusUnauthorized, err.Error())
		}
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(models.SuccessResponse{Message: "Login successful", Data: fiber.Map{"token": token, "user": user}})
}
