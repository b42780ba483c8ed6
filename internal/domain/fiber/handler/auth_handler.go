package handler

import (
	"github.com/fadilmartias/hirewise/internal/dto"
	"github.com/fadilmartias/hirewise/internal/middleware"
	"github.com/fadilmartias/hirewise/internal/usecase"
	"github.com/fadilmartias/hirewise/internal/util"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	auth := router.Group("/auth")
	auth.Post("/sign-up", h.SignUp)
	auth.Post("/sign-in", h.SignIn)
	auth.Post("/sign-out", h.SignOut)
	auth.Get("/me", h.Me)
}

func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := util.BindAndValidate(c, &req); err != nil {
		return util.BindErrorResponse(c, err)
	}
	return actionResponse(c, h.uc.SignUp(c.UserContext(), req), fiber.StatusCreated, fiber.StatusBadRequest)
}

func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := util.BindAndValidate(c, &req); err != nil {
		return util.BindErrorResponse(c, err)
	}
	res := h.uc.SignIn(c.UserContext(), middleware.NewSessionJar(c), req)
	return actionResponse(c, res, fiber.StatusOK, fiber.StatusUnauthorized)
}

func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	return actionResponse(c, h.uc.SignOut(middleware.NewSessionJar(c)), fiber.StatusOK, fiber.StatusOK)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := h.uc.GetCurrentUser(c.UserContext(), middleware.NewSessionJar(c))
	data := dto.CurrentUserDTO{Authenticated: user != nil}
	if user != nil {
		data.User = &dto.UserDTO{ID: user.ID, Name: user.Name, Email: user.Email, CreatedAt: user.CreatedAt}
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get current user",
		Data:    data,
	})
}

func actionResponse(c *fiber.Ctx, res dto.ActionResult, okCode, failCode int) error {
	if res.Success {
		return util.SuccessResponse(c, util.SuccessResponseFormat{Code: okCode, Message: res.Message})
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{Code: failCode, Message: res.Message})
}
