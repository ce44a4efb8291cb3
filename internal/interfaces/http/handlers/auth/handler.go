// Package auth serves the login, registration and logout pages.
package auth

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/interfaces/http/handlers/common"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type Handler struct {
	registerUseCase  usecases.RegisterExecutor
	loginUseCase     usecases.LoginExecutor
	logoutUseCase    usecases.LogoutExecutor
	bootstrapUseCase usecases.BootstrapAdminExecutor
	cookieConfig     config.CookieConfig
	logger           logger.Interface
}

func NewHandler(
	registerUseCase usecases.RegisterExecutor,
	loginUseCase usecases.LoginExecutor,
	logoutUseCase usecases.LogoutExecutor,
	bootstrapUseCase usecases.BootstrapAdminExecutor,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *Handler {
	return &Handler{
		registerUseCase:  registerUseCase,
		loginUseCase:     loginUseCase,
		logoutUseCase:    logoutUseCase,
		bootstrapUseCase: bootstrapUseCase,
		cookieConfig:     cookieConfig,
		logger:           logger,
	}
}

// ShowLogin renders the sign-in form.
func (h *Handler) ShowLogin(c *gin.Context) {
	data := common.BaseData(c, "Sign In")
	if next := utils.SafeNextPath(c.Query("next")); next != "/" {
		data["Next"] = url.QueryEscape(next)
	}
	if c.Query("registered") != "" {
		data["Notice"] = "Registration successful. Please sign in."
	}
	c.HTML(http.StatusOK, "login.html", data)
}

// Login authenticates the submitted credentials and starts a session.
func (h *Handler) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderLoginError(c, http.StatusBadRequest, "invalid form submission", form.Username)
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Username:   form.Username,
		Password:   form.Password,
		RememberMe: form.RememberMe,
		IPAddress:  c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})
	if err != nil {
		status, message := common.ErrorStatus(err)
		h.renderLoginError(c, status, message, form.Username)
		return
	}

	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	utils.SetSessionCookie(c, h.cookieConfig, result.Token, maxAge)

	c.Redirect(http.StatusFound, utils.SafeNextPath(c.Query("next")))
}

// Logout tears the session down and clears the cookie.
func (h *Handler) Logout(c *gin.Context) {
	if identity, ok := middleware.CurrentIdentity(c); ok {
		if err := h.logoutUseCase.Execute(c.Request.Context(), usecases.LogoutCommand{
			SessionID: identity.SessionID,
		}); err != nil {
			h.logger.Errorw("failed to logout", "error", err, "session_id", identity.SessionID)
		}
	}
	utils.ClearSessionCookie(c, h.cookieConfig)
	c.Redirect(http.StatusFound, "/login")
}

// ShowRegister renders the registration form.
func (h *Handler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", common.BaseData(c, "Register"))
}

// Register creates a new user account and sends the visitor to the login
// page on success.
func (h *Handler) Register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderRegisterError(c, http.StatusBadRequest, "invalid form submission", form)
		return
	}

	_, err := h.registerUseCase.Execute(c.Request.Context(), usecases.RegisterCommand{
		Username:        form.Username,
		Email:           form.Email,
		Password:        form.Password,
		PasswordConfirm: form.Password2,
	})
	if err != nil {
		status, message := common.ErrorStatus(err)
		h.renderRegisterError(c, status, message, form)
		return
	}

	c.Redirect(http.StatusFound, "/login?registered=1")
}

// CreateAdmin bootstraps an administrator account. Authorized for an
// existing admin, or via the setup token while no admin exists.
func (h *Handler) CreateAdmin(c *gin.Context) {
	var form CreateAdminForm
	if err := c.ShouldBind(&form); err != nil {
		common.RenderError(c, errors.NewValidationError("invalid form submission"))
		return
	}

	actorIsAdmin := false
	if identity, ok := middleware.CurrentIdentity(c); ok {
		actorIsAdmin = identity.IsAdmin()
	}

	_, err := h.bootstrapUseCase.Execute(c.Request.Context(), usecases.BootstrapAdminCommand{
		Username:     form.Username,
		Email:        form.Email,
		Password:     form.Password,
		SetupToken:   form.SetupToken,
		ActorIsAdmin: actorIsAdmin,
	})
	if err != nil {
		common.RenderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/login?registered=1")
}

func (h *Handler) renderLoginError(c *gin.Context, status int, message, username string) {
	data := common.BaseData(c, "Sign In")
	data["Error"] = message
	data["Username"] = username
	if next := utils.SafeNextPath(c.Query("next")); next != "/" {
		data["Next"] = url.QueryEscape(next)
	}
	c.HTML(status, "login.html", data)
}

func (h *Handler) renderRegisterError(c *gin.Context, status int, message string, form RegisterForm) {
	data := common.BaseData(c, "Register")
	data["Error"] = message
	data["Username"] = form.Username
	data["Email"] = form.Email
	c.HTML(status, "register.html", data)
}
