package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"getlife/internal/delivery/http/response"
	"getlife/internal/domain/entity"
	"getlife/internal/usecase"
)

// PartnerHandler holds dependencies for mitra application and denylist
// handlers.
type PartnerHandler struct {
	uc usecase.PartnerUsecase
}

// NewPartnerHandler is the constructor for PartnerHandler, injected by Fx.
func NewPartnerHandler(uc usecase.PartnerUsecase) *PartnerHandler {
	return &PartnerHandler{uc: uc}
}

type applyRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Name      string `json:"nama" validate:"required"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Expertise string `json:"expertise" validate:"required"`
	Reason    string `json:"reason"`
	IDPhoto   string `json:"ktpPhoto"`
}

type reviewRequest struct {
	Approve *bool `json:"approve" validate:"required"`
}

type blockRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Apply files a mitra application.
func (h *PartnerHandler) Apply(c echo.Context) error {
	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid application input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	application, err := h.uc.Apply(c.Request().Context(), usecase.ApplyInput{
		Email:     req.Email,
		Name:      req.Name,
		Phone:     req.Phone,
		Address:   req.Address,
		Expertise: entity.ServiceKind(req.Expertise),
		Reason:    req.Reason,
		IDPhoto:   req.IDPhoto,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, application, "Pengajuan mitra terkirim")
}

// ListApplications returns every application for the admin dashboard.
func (h *PartnerHandler) ListApplications(c echo.Context) error {
	applications, err := h.uc.ListApplications(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, applications, "")
}

// Review decides a pending application.
func (h *PartnerHandler) Review(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Review(c.Request().Context(), c.Param("id"), *req.Approve); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Pengajuan diproses")
}

// ListBlocked returns the denylist.
func (h *PartnerHandler) ListBlocked(c echo.Context) error {
	blocked, err := h.uc.ListBlocked(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, blocked, "")
}

// Block adds an email to the denylist.
func (h *PartnerHandler) Block(c echo.Context) error {
	var req blockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid block input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Block(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Akun diblokir")
}

// Unblock removes an email from the denylist.
func (h *PartnerHandler) Unblock(c echo.Context) error {
	if err := h.uc.Unblock(c.Request().Context(), c.Param("email")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Blokir dicabut")
}
