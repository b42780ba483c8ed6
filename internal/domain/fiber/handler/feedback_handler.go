package handler

import (
	"time"

	"github.com/fadilmartias/hirewise/internal/dto"
	"github.com/fadilmartias/hirewise/internal/middleware"
	"github.com/fadilmartias/hirewise/internal/usecase"
	"github.com/fadilmartias/hirewise/internal/util"
	"github.com/gofiber/fiber/v2"
)

type FeedbackHandler struct {
	uc *usecase.FeedbackUsecase
}

func NewFeedbackHandler(uc *usecase.FeedbackUsecase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

func (h *FeedbackHandler) RegisterRoutes(router fiber.Router, requireSession fiber.Handler) {
	router.Post("/feedback", requireSession, middleware.RateLimiter(1, 4*time.Second), h.Create)
	router.Get("/interviews/:id/feedback", requireSession, h.GetByInterview)
}

func (h *FeedbackHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateFeedbackRequest
	if err := util.BindAndValidate(c, &req); err != nil {
		return util.BindErrorResponse(c, err)
	}
	req.UserID = middleware.CurrentUser(c).ID

	res := h.uc.CreateFeedback(c.UserContext(), req)
	if !res.Success {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: "failed to generate feedback",
		})
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create feedback",
		Data:    res,
	})
}

func (h *FeedbackHandler) GetByInterview(c *fiber.Ctx) error {
	feedback := h.uc.GetFeedbackByInterviewID(c.UserContext(), c.Params("id"), middleware.CurrentUser(c).ID)
	if feedback == nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "feedback not found",
		})
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get feedback",
		Data:    dto.NewFeedbackDTO(feedback),
	})
}
