package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/userhub/userhub/internal/domain/errors"
	"github.com/userhub/userhub/internal/domain/model"
	"github.com/userhub/userhub/internal/server/http/dto"
)

// UserHandler processes account creation and lookups.
type UserHandler struct {
	facade UserFacade
}

// NewUserHandler creates UserHandler instance.
func NewUserHandler(facade UserFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// Create handles POST /api/users.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request payload"})
		return
	}

	user, err := h.facade.CreateUser(c.Request.Context(), model.NewUser{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrUsernameTaken), errors.Is(err, domainErrors.ErrEmailTaken):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, domainErrors.ErrInvalidUserData):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// List handles GET /api/users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.facade.Users(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponses(users))
}

// GetByID handles GET /api/users/:id.
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	user, err := h.facade.UserByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// GetByUsername handles GET /api/users/username/:username.
func (h *UserHandler) GetByUsername(c *gin.Context) {
	user, err := h.facade.UserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
