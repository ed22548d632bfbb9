package handlers

import (
	"net/http"

	"koshub/clients/rest"
	"koshub/config"
	"koshub/middleware"
	"koshub/models"
	"koshub/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShowLoginPage renders the login form. Authenticated users go straight to
// the dashboard.
func (h *Handler) ShowLoginPage(c *gin.Context) {
	if middleware.CurrentSession(c) != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	h.render(c, http.StatusOK, "login.html", gin.H{"Title": "Login", "Email": ""})
}

// LoginSubmit authenticates against the accommodation service and opens a
// session on success.
func (h *Handler) LoginSubmit(c *gin.Context) {
	logger := getLogger(c)

	email := c.PostForm("email")
	password := c.PostForm("password")
	if email == "" || password == "" {
		h.render(c, http.StatusBadRequest, "login.html", gin.H{
			"Title": "Login",
			"Error": "Email dan password wajib diisi",
			"Email": email,
		})
		return
	}

	auth, err := h.Accommodation.Login(c.Request.Context(), models.LoginCredentials{
		Email:    email,
		Password: password,
	})
	if err != nil {
		logger.Warn("Login failed", zap.String("email", email), zap.Error(err))
		h.render(c, http.StatusUnauthorized, "login.html", gin.H{
			"Title": "Login",
			"Error": rest.ErrorMessage(err, "Login gagal. Periksa email dan password."),
			"Email": email,
		})
		return
	}

	if err := h.openSession(c, auth); err != nil {
		logger.Error("Failed to create session", zap.Error(err))
		h.render(c, http.StatusInternalServerError, "login.html", gin.H{
			"Title": "Login",
			"Error": "Login gagal. Coba lagi.",
			"Email": email,
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// ShowRegisterPage renders the registration form.
func (h *Handler) ShowRegisterPage(c *gin.Context) {
	if middleware.CurrentSession(c) != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	h.render(c, http.StatusOK, "register.html", gin.H{"Title": "Daftar"})
}

// RegisterSubmit creates the account and logs the user in. Client-side
// validation failures short-circuit before any network call.
func (h *Handler) RegisterSubmit(c *gin.Context) {
	logger := getLogger(c)

	form := models.RegisterData{
		Email:           c.PostForm("email"),
		Password:        c.PostForm("password"),
		Name:            c.PostForm("name"),
		MembershipLevel: c.DefaultPostForm("membership_level", models.MembershipBasic),
	}
	confirm := c.PostForm("confirm_password")

	renderError := func(status int, message string) {
		h.render(c, status, "register.html", gin.H{
			"Title": "Daftar",
			"Error": message,
			"Form":  form,
		})
	}

	if form.Password != confirm {
		renderError(http.StatusBadRequest, "Password tidak sama")
		return
	}
	if len(form.Password) < 6 {
		renderError(http.StatusBadRequest, "Password minimal 6 karakter")
		return
	}

	auth, err := h.Accommodation.Register(c.Request.Context(), form)
	if err != nil {
		logger.Warn("Registration failed", zap.String("email", form.Email), zap.Error(err))
		renderError(http.StatusBadRequest, rest.ErrorMessage(err, "Registrasi gagal. Coba lagi."))
		return
	}

	// Some deployments return the session directly from register; otherwise
	// fall through to a regular login with the same credentials.
	if auth.AccessToken == "" {
		auth, err = h.Accommodation.Login(c.Request.Context(), models.LoginCredentials{
			Email:    form.Email,
			Password: form.Password,
		})
		if err != nil {
			logger.Warn("Post-registration login failed", zap.Error(err))
			renderError(http.StatusBadRequest, rest.ErrorMessage(err, "Registrasi gagal. Coba lagi."))
			return
		}
	}

	if err := h.openSession(c, auth); err != nil {
		logger.Error("Failed to create session", zap.Error(err))
		renderError(http.StatusInternalServerError, "Registrasi gagal. Coba lagi.")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout tears down the session synchronously: in-memory poller, Redis
// entry and cookie. No backend endpoint is called.
func (h *Handler) Logout(c *gin.Context) {
	if sess := middleware.CurrentSession(c); sess != nil {
		h.Badge.Stop(sess.ID)
		if err := h.Sessions.Delete(sess.ID); err != nil {
			getLogger(c).Warn("Failed to delete session", zap.Error(err))
		}
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

// openSession persists a session, sets the cookie and starts the unread
// badge poller.
func (h *Handler) openSession(c *gin.Context, auth *models.AuthResponse) error {
	sess, err := h.Sessions.Create(auth)
	if err != nil {
		return err
	}
	maxAge := int(config.SessionTTL().Seconds())
	c.SetCookie(session.CookieName, sess.ID, maxAge, "/", "", config.IsProduction(), true)
	h.Badge.Start(sess)
	return nil
}
