package handler

import (
	"e-presensi-backend/internal/helper"
	"e-presensi-backend/internal/middleware"
	"e-presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	auth *usecase.AuthUsecase
}

func NewAuthHandler(auth *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Data tidak valid")
	}

	res, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Login berhasil", res)
}

func (h *AuthHandler) Session(c *fiber.Ctx) error {
	session, err := h.auth.Session(middleware.UserID(c))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Sesi aktif", session)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(middleware.Claims(c)); err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Logout berhasil", nil)
}
