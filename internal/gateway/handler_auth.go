package gateway

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/davidgarcial/bank-architecture/internal/bankpb"
	"github.com/davidgarcial/bank-architecture/internal/utils"
)

// AuthHandler owns registration, login and the session cookie. The user
// service stores bcrypt hashes; the password check happens here, against the
// hash returned by the lookup.
type AuthHandler struct {
	users     bankpb.UserServiceClient
	jwtSecret string
	jwtTTL    time.Duration
	// cookieMaxAge in seconds.
	cookieMaxAge int
}

func NewAuthHandler(users bankpb.UserServiceClient, jwtSecret string, jwtTTL time.Duration, cookieMaxAge int) *AuthHandler {
	return &AuthHandler{users: users, jwtSecret: jwtSecret, jwtTTL: jwtTTL, cookieMaxAge: cookieMaxAge}
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondFail(c, http.StatusBadRequest, validationMessage(err))
		return
	}

	resp, err := h.users.CreateUser(c.Request.Context(), &bankpb.CreateUserRequest{
		Username: req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondRPC(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{"data": gin.H{"user": gin.H{"id": resp.Id}}})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondFail(c, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, err := h.users.GetUserByEmail(c.Request.Context(), &bankpb.GetUserByUserNameRequest{Username: req.Email})
	if err != nil {
		// Whether it was the name or the password stays hidden.
		respondFail(c, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if !utils.CheckPassword(req.Password, user.Password) {
		respondFail(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := GenerateToken(user.Uuid, h.jwtSecret, h.jwtTTL)
	if err != nil {
		respondError(c, "failed to generate token")
		return
	}

	c.SetCookie("token", token, h.cookieMaxAge, "/", "", false, true)
	respondSuccess(c, http.StatusOK, gin.H{"token": token})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	respondSuccess(c, http.StatusOK, gin.H{})
}

func (h *AuthHandler) Me(c *gin.Context) {
	sub, ok := UserUUID(c)
	if !ok {
		respondFail(c, http.StatusUnauthorized, "you are not logged in")
		return
	}

	user, err := h.users.GetUserById(c.Request.Context(), &bankpb.GetUserByIdRequest{Id: sub})
	if err != nil {
		respondRPC(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"data": gin.H{"user": gin.H{
		"id":       user.Uuid,
		"username": user.Username,
	}}})
}

func Healthchecker(c *gin.Context) {
	respondSuccess(c, http.StatusOK, gin.H{"message": "bank gateway is running"})
}
