package handlers

import (
	"net/http"
	"order_manager/internal/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

type APIHandler struct {
	registrationService services.RegistrationService
	authService         services.AuthService
	jwtService          services.JWTService
	userService         services.UserService
	areaService         services.AreaService
}

func NewAPIHandler(
	registrationService services.RegistrationService,
	authService services.AuthService,
	jwtService services.JWTService,
	userService services.UserService,
	areaService services.AreaService,
) *APIHandler {
	return &APIHandler{
		registrationService: registrationService,
		authService:         authService,
		jwtService:          jwtService,
		userService:         userService,
		areaService:         areaService,
	}
}

func (h *APIHandler) Register(c *gin.Context) {
	var req services.RegistrationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user, err := h.registrationService.Register(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := h.registrationService.SendActivation(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user_id":     user.ID,
		"sent_status": token.SentStatus,
	})
}

func (h *APIHandler) ConfirmRegistration(c *gin.Context) {
	var req struct {
		WhatsApp string `json:"whatsapp" binding:"required"`
		Token    string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ok, err := h.registrationService.ConfirmToken(req.WhatsApp, req.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "confirmed"})
}

func (h *APIHandler) Login(c *gin.Context) {
	var req struct {
		WhatsApp string `json:"whatsapp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user, err := h.userService.GetByWhatsAppNumber(req.WhatsApp)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !h.authService.CanLogin(user) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Account not found or not activated"})
		return
	}

	token, err := h.authService.SendLoginOTP(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sent_status": token.SentStatus})
}

func (h *APIHandler) VerifyLogin(c *gin.Context) {
	var req struct {
		WhatsApp string `json:"whatsapp" binding:"required"`
		Token    string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ok, err := h.jwtService.ConfirmToken(req.WhatsApp, req.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	user, err := h.userService.GetByWhatsAppNumber(req.WhatsApp)
	if err != nil || user == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}

	pair, err := h.jwtService.CreateTokenForUser(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pair)
}

func (h *APIHandler) SearchAreas(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "keyword is required"})
		return
	}

	rows, err := h.areaService.GetCustomSubdistrict(keyword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"areas": rows})
}

func (h *APIHandler) GetSubdistrict(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subdistrict id"})
		return
	}

	row, err := h.areaService.GetBySubdistrict(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if row == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subdistrict not found"})
		return
	}

	c.JSON(http.StatusOK, row)
}
