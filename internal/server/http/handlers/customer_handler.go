package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/server/http/dto"
	"github.com/polkiloo/storefront/internal/server/http/middleware"
	"github.com/polkiloo/storefront/internal/server/http/view"
)

// CustomerHandler serves the registration, login, portal and address pages.
type CustomerHandler struct {
	facade   StorefrontFacade
	renderer view.Renderer
	cookie   middleware.SessionCookie
	logger   *slog.Logger
}

// NewCustomerHandler creates CustomerHandler instance.
func NewCustomerHandler(facade StorefrontFacade, renderer view.Renderer, cookie middleware.SessionCookie, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{facade: facade, renderer: renderer, cookie: cookie, logger: logger}
}

// ShowRegister handles GET /customer/register.
func (h *CustomerHandler) ShowRegister(c *gin.Context) {
	h.renderer.Render(c, http.StatusOK, view.PageRegister, view.Attributes{"customer": dto.CustomerView{}})
}

// ShowLogin handles GET /customer/login.
func (h *CustomerHandler) ShowLogin(c *gin.Context) {
	h.renderer.Render(c, http.StatusOK, view.PageLogin, view.Attributes{"customer": dto.CustomerView{}})
}

// Register handles POST /customer/register.
func (h *CustomerHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderer.Render(c, http.StatusBadRequest, view.PageRegister, view.Attributes{
			"msg":      msgBadRequest,
			"customer": dto.CustomerView{},
		})
		return
	}
	echo := dto.CustomerView{
		Username: strings.TrimSpace(req.Username),
		Email:    strings.TrimSpace(req.Email),
		Address:  req.Address,
	}

	res, err := h.facade.Register(c.Request.Context(), req.Candidate())
	if err != nil {
		attrs := view.Attributes{"customer": echo}
		if res.Message != "" {
			attrs["msg"] = res.Message
		}
		h.fail(c, err, view.PageRegister, attrs)
		return
	}

	h.renderer.Render(c, http.StatusOK, view.PageLogin, view.Attributes{
		"msg":      res.Message,
		"customer": echo,
	})
}

// Login handles POST /customer/login.
func (h *CustomerHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderer.Render(c, http.StatusBadRequest, view.PageLogin, view.Attributes{
			"msg":      msgBadRequest,
			"customer": dto.CustomerView{},
		})
		return
	}

	sess, portal, err := h.facade.Login(c.Request.Context(), middleware.CurrentSession(c), req.Username, req.Password)
	if err != nil {
		h.fail(c, err, view.PageLogin, view.Attributes{"customer": dto.CustomerView{Username: req.Username}})
		return
	}

	token, err := h.facade.SessionToken(sess)
	if err != nil {
		h.fail(c, err, view.PageLogin, nil)
		return
	}
	h.cookie.Set(c, token)
	middleware.SetCurrentSession(c, sess)

	h.renderer.Render(c, http.StatusOK, view.PagePortal, view.Attributes{
		"customer":  dto.CustomerView{Username: portal.Username},
		"temp_cart": dto.NewCartItemViews(portal.Cart),
		"plist":     dto.NewProductViews(portal.Products),
		"totalQty":  portal.TotalQty,
	})
}

// Logout handles POST and GET /customer/logout.
func (h *CustomerHandler) Logout(c *gin.Context) {
	sess := h.facade.Logout(c.Request.Context(), middleware.CurrentSession(c))
	h.cookie.Clear(c)
	middleware.SetCurrentSession(c, sess)

	h.renderer.Render(c, http.StatusOK, view.PageLogin, view.Attributes{"customer": dto.CustomerView{}})
}

// Portal handles GET /customer/portal.
func (h *CustomerHandler) Portal(c *gin.Context) {
	portal, err := h.facade.Portal(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		h.fail(c, err, view.PagePortal, nil)
		return
	}

	h.renderer.Render(c, http.StatusOK, view.PagePortal, view.Attributes{
		"customer": dto.CustomerView{Username: portal.Username},
		"plist":    dto.NewProductViews(portal.Products),
		"totalQty": portal.TotalQty,
	})
}

// ShowAddress handles GET /customer/address/:username.
func (h *CustomerHandler) ShowAddress(c *gin.Context) {
	username := c.Param("username")
	addr, err := h.facade.ShowAddress(c.Request.Context(), middleware.CurrentSession(c), username)
	if err != nil {
		h.fail(c, err, view.PageAddress, view.Attributes{"customer": dto.CustomerView{Username: username}})
		return
	}

	h.renderer.Render(c, http.StatusOK, view.PageAddress, view.Attributes{
		"email":    addr.Email,
		"address":  addr.Address,
		"customer": dto.CustomerView{Username: username, Email: addr.Email, Address: addr.Address},
	})
}

// UpdateAddress handles POST /customer/address.
func (h *CustomerHandler) UpdateAddress(c *gin.Context) {
	var req dto.AddressRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderer.Render(c, http.StatusBadRequest, view.PageAddress, view.Attributes{"msg": msgBadRequest})
		return
	}

	sess := middleware.CurrentSession(c)
	username := strings.TrimSpace(req.Username)
	if username == "" {
		username = sess.Username
	}

	addr, err := h.facade.UpdateAddress(c.Request.Context(), sess, username, req.Address)
	if err != nil {
		h.fail(c, err, view.PageAddress, view.Attributes{
			"address":  req.Address,
			"customer": dto.CustomerView{Username: username},
		})
		return
	}

	h.renderer.Render(c, http.StatusOK, view.PageAddress, view.Attributes{
		"email":    addr.Email,
		"address":  addr.Address,
		"msg":      addr.Message,
		"customer": dto.CustomerView{Username: username, Email: addr.Email, Address: addr.Address},
	})
}

// fail renders err on page, or on the login or error page when the page cannot help.
func (h *CustomerHandler) fail(c *gin.Context, err error, page string, attrs view.Attributes) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("request_id", middleware.CurrentRequestID(c)),
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
		h.renderer.Render(c, status, view.PageError, view.Attributes{"msg": msgUnavailable})
		return
	}

	if attrs == nil {
		attrs = view.Attributes{}
	}
	if _, ok := attrs["msg"]; !ok {
		attrs["msg"] = messageFor(err)
	}
	var verr *domainErrors.ValidationError
	if errors.As(err, &verr) {
		attrs["errors"] = verr.ByField()
	}

	switch {
	case errors.Is(err, domainErrors.ErrInvalidSession):
		page = view.PageLogin
		attrs["customer"] = dto.CustomerView{}
	case errors.Is(err, domainErrors.ErrForbidden):
		page = view.PageError
		delete(attrs, "customer")
		delete(attrs, "address")
	}
	h.renderer.Render(c, status, page, attrs)
}

