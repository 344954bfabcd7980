package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktracker/internal/api/apperrors"
	"tasktracker/internal/api/models"
	"tasktracker/internal/api/response"
	"tasktracker/internal/api/service"
)

// UserController handles registration and login HTTP requests.
type UserController struct {
	userService service.UserService
}

// NewUserController creates a new UserController.
func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Register handles the user registration endpoint. A taken username maps to
// 400, matching the login form flow's error space.
func (uc *UserController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := uc.userService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			response.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		response.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.SuccessResponse(c, gin.H{"id": user.ID, "username": user.Username})
}

// Login handles the form-encoded password flow and returns a bearer token.
func (uc *UserController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := uc.userService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			response.ErrorResponse(c, http.StatusUnauthorized, err.Error())
			return
		}
		response.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.SuccessResponse(c, models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}
