package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/middleware"
	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/models"
	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/repository"
	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler owns the register/login/signout/logout flows.
type AuthHandler struct {
	Users      repository.UserRepositoryI
	Tokens     repository.TokenRepositoryI
	JWTSecret  string
	JWTIssuer  string
	TokenTTL   time.Duration
	BcryptCost int
}

// NewAuthHandler wires the authentication flows over the credential
// store and the token ledger.
func NewAuthHandler(users repository.UserRepositoryI, tokens repository.TokenRepositoryI, jwtSecret, jwtIssuer string, ttlHours, bcryptCost int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthHandler{
		Users:      users,
		Tokens:     tokens,
		JWTSecret:  jwtSecret,
		JWTIssuer:  jwtIssuer,
		TokenTTL:   time.Duration(ttlHours) * time.Hour,
		BcryptCost: bcryptCost,
	}
}

type registerReq struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Role      string `json:"role" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Mail      string `json:"mail"`
}

// Register creates a new user and issues its first session token.
// A taken username is reported inside the response payload, not as an
// HTTP error.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	role := models.Role(strings.ToUpper(strings.TrimSpace(req.Role)))
	if req.Username == "" || !role.Valid() {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid username or role")
		return
	}

	exists, err := h.Users.ExistsByUsername(req.Username)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "lookup user failed")
		return
	}
	if exists {
		c.JSON(http.StatusOK, models.AuthResponse{Message: "User already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.BcryptCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "hash password failed")
		return
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Mail:         req.Mail,
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := h.Users.Create(&user); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create user failed")
		return
	}

	jwt, err := util.GenerateToken(h.JWTSecret, h.JWTIssuer, user.Username, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "generate token failed")
		return
	}
	if err := h.saveUserToken(jwt, user.ID); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "persist token failed")
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{Token: &jwt, Message: "User registration successfully"})
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials, revokes every prior token for the user
// and issues a fresh one. A login therefore invalidates all previous
// sessions of the same user.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)

	user, err := h.Users.FindByUsername(req.Username)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "lookup user failed")
		return
	}
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "invalid username or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "invalid username or password")
		return
	}

	jwt, err := util.GenerateToken(h.JWTSecret, h.JWTIssuer, user.Username, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "generate token failed")
		return
	}

	// not atomic with the insert below: concurrent logins by the same
	// user can interleave and leave more than one live token
	if err := h.revokeAllUserTokens(user.ID); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "revoke tokens failed")
		return
	}
	if err := h.saveUserToken(jwt, user.ID); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "persist token failed")
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{Token: &jwt, Message: "User login successfully"})
}

type signOutReq struct {
	// accepted for wire compatibility, never used to pick the session
	// to revoke; only the authenticated caller signs out
	Username string `json:"username"`
}

// SignOut revokes every token of the authenticated caller. Revocation
// errors are reported in the response message, never as an HTTP error.
func (h *AuthHandler) SignOut(c *gin.Context) {
	var req signOutReq
	_ = c.ShouldBindJSON(&req)

	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return
	}

	if err := h.revokeAllUserTokens(user.ID); err != nil {
		c.JSON(http.StatusOK, models.AuthResponse{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.AuthResponse{Message: "Signed Out Successfully"})
}

// Logout revokes the single ledger entry matching the presented bearer
// token, if any. It always answers 204 with no body.
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenStr := middleware.BearerToken(c)
	if tokenStr == "" {
		c.Status(http.StatusNoContent)
		return
	}

	stored, err := h.Tokens.FindByToken(tokenStr)
	if err == nil && stored != nil && !stored.Revoked {
		stored.Revoked = true
		_ = h.Tokens.Save(stored)
	}

	c.Status(http.StatusNoContent)
}

// revokeAllUserTokens flips Revoked on every token of the user in one
// batch write. Zero owned tokens is a no-op.
func (h *AuthHandler) revokeAllUserTokens(userID uint) error {
	tokens, err := h.Tokens.FindAllByUser(userID)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}
	for i := range tokens {
		tokens[i].Revoked = true
	}
	return h.Tokens.SaveAll(tokens)
}

// saveUserToken appends a fresh unrevoked ledger row for the user.
func (h *AuthHandler) saveUserToken(jwt string, userID uint) error {
	return h.Tokens.Save(&models.Token{
		Token:   jwt,
		Revoked: false,
		UserID:  userID,
	})
}
