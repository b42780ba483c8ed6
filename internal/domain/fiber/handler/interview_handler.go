package handler

import (
	"errors"

	"github.com/fadilmartias/hirewise/internal/dto"
	"github.com/fadilmartias/hirewise/internal/middleware"
	"github.com/fadilmartias/hirewise/internal/usecase"
	"github.com/fadilmartias/hirewise/internal/util"
	"github.com/gofiber/fiber/v2"
)

type InterviewHandler struct {
	uc *usecase.InterviewUsecase
}

func NewInterviewHandler(uc *usecase.InterviewUsecase) *InterviewHandler {
	return &InterviewHandler{uc: uc}
}

func (h *InterviewHandler) RegisterRoutes(router fiber.Router, requireSession fiber.Handler) {
	interviews := router.Group("/interviews")
	interviews.Get("/", requireSession, h.List)
	interviews.Get("/latest", requireSession, h.Latest)
	interviews.Get("/similar", requireSession, h.Similar)
	interviews.Post("/embeddings", requireSession, h.IndexEmbeddings)
	interviews.Get("/:id", requireSession, h.Get)
}

func (h *InterviewHandler) List(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	interviews, pagination, err := h.uc.GetInterviewsByUserID(c.UserContext(), user.ID, c.QueryInt("page", 1), c.QueryInt("page_size", usecase.DefaultPageSize))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list interviews",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get interviews",
		Data:       dto.NewInterviewDTOs(interviews),
		Pagination: pagination,
	})
}

func (h *InterviewHandler) Latest(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	interviews, err := h.uc.GetLatestInterviews(c.UserContext(), user.ID, c.QueryInt("limit", usecase.DefaultLatestLimit))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list latest interviews",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get latest interviews",
		Data:    dto.NewInterviewDTOs(interviews),
	})
}

func (h *InterviewHandler) Similar(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "query parameter q is required",
		})
	}
	user := middleware.CurrentUser(c)
	interviews, err := h.uc.SearchSimilarInterviews(c.UserContext(), user.ID, query, c.QueryInt("k", usecase.DefaultSimilarTopK))
	if err != nil {
		return embeddingErrorResponse(c, "failed to search interviews", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success search interviews",
		Data:    dto.NewInterviewDTOs(interviews),
	})
}

func (h *InterviewHandler) IndexEmbeddings(c *fiber.Ctx) error {
	indexed, err := h.uc.IndexInterviewEmbeddings(c.UserContext())
	if err != nil {
		return embeddingErrorResponse(c, "failed to create interview embeddings", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success create interview embeddings",
		Data:    dto.IndexEmbeddingsResult{Indexed: indexed},
	})
}

func (h *InterviewHandler) Get(c *fiber.Ctx) error {
	interview, err := h.uc.GetInterviewByID(c.UserContext(), c.Params("id"))
	if errors.Is(err, usecase.ErrNotFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "interview not found",
		})
	}
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to get interview",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get interview",
		Data:    dto.NewInterviewDTO(interview),
	})
}

func embeddingErrorResponse(c *fiber.Ctx, message string, err error) error {
	code := fiber.StatusInternalServerError
	if errors.Is(err, usecase.ErrEmbeddingUnavailable) {
		code = fiber.StatusServiceUnavailable
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{Code: code, Message: message}, err)
}
