package handlers

import (
	"SevChefs-API/domain"
	"SevChefs-API/internal/api/presenters"
	"SevChefs-API/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Signup(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		GetProfile(c *fiber.Ctx) error
		ListProfiles(c *fiber.Ctx) error
		Follow(c *fiber.Ctx) error
		Unfollow(c *fiber.Ctx) error
		UploadAvatar(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *userHandler) Signup(c *fiber.Ctx) error {
	req := new(domain.SignupRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err)
	}

	if err := h.userService.Signup(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, statusOf(err), err)
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, nil)
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err)
	}

	res, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *userHandler) GetProfile(c *fiber.Ctx) error {
	res, err := h.userService.GetProfile(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), err)
	}

	return presenters.DataResponse(c, fiber.StatusOK, res)
}

func (h *userHandler) ListProfiles(c *fiber.Ctx) error {
	res, err := h.userService.ListProfiles(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), err)
	}

	return presenters.DataResponse(c, fiber.StatusOK, res)
}

func (h *userHandler) Follow(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.userService.Follow(c.Context(), userID, c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusOf(err), err)
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, nil)
}

func (h *userHandler) Unfollow(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.userService.Unfollow(c.Context(), userID, c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusOf(err), err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, nil)
}

func (h *userHandler) UploadAvatar(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	avatar, err := c.FormFile("avatar")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err)
	}

	req := domain.UploadAvatarRequest{Avatar: avatar}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err)
	}

	if err := h.userService.UploadAvatar(c.Context(), req, userID); err != nil {
		return presenters.ErrorResponse(c, statusOf(err), err)
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, nil)
}
