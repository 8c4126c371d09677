package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/models"
	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/repository"
	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/testutil"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthFixture(t *testing.T, name string) (*AuthHandler, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.OpenInMemoryDB(t, name)
	h := NewAuthHandler(
		repository.NewUserRepository(db),
		repository.NewTokenRepository(db),
		"handler-test-secret",
		"delivery-test",
		1,
		bcrypt.MinCost,
	)
	return h, db
}

func postJSON(t *testing.T, handle gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handle(c)
	return w
}

func TestRegister_PersistsUserAndLedgerRow(t *testing.T) {
	h, db := newAuthFixture(t, "auth_register")

	w := postJSON(t, h.Register, `{"username":"alice","password":"pw1","role":"USER","mail":"a@example.com"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("register: status = %d, body = %s", w.Code, w.Body.String())
	}

	var user models.User
	if err := db.Where("username = ?", "alice").First(&user).Error; err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if user.Role != models.RoleUser {
		t.Errorf("role = %q, want USER", user.Role)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw1")) != nil {
		t.Error("stored hash does not match the password")
	}

	var tokens []models.Token
	db.Where("user_id = ?", user.ID).Find(&tokens)
	if len(tokens) != 1 || tokens[0].Revoked {
		t.Errorf("ledger rows = %+v, want one unrevoked row", tokens)
	}
}

func TestRegister_RejectsUnknownRole(t *testing.T) {
	h, _ := newAuthFixture(t, "auth_register_role")

	w := postJSON(t, h.Register, `{"username":"alice","password":"pw1","role":"SUPERUSER"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown role: status = %d, want 400", w.Code)
	}
}

func TestRegister_ConflictWritesNothing(t *testing.T) {
	h, db := newAuthFixture(t, "auth_register_conflict")

	postJSON(t, h.Register, `{"username":"alice","password":"pw1","role":"USER"}`)
	w := postJSON(t, h.Register, `{"username":"alice","password":"pw2","role":"ADMIN"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("conflict register: status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "User already exists") {
		t.Errorf("conflict body = %s", w.Body.String())
	}

	var tokenCount int64
	db.Model(&models.Token{}).Count(&tokenCount)
	if tokenCount != 1 {
		t.Errorf("ledger rows after conflict = %d, want 1", tokenCount)
	}
}

func TestLogin_RevokeAllThenIssueOne(t *testing.T) {
	h, db := newAuthFixture(t, "auth_login_revoke")

	postJSON(t, h.Register, `{"username":"alice","password":"pw1","role":"USER"}`)
	// three logins in a row pile up ledger rows, only the last stays live
	for i := 0; i < 3; i++ {
		w := postJSON(t, h.Login, `{"username":"alice","password":"pw1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("login %d: status = %d, body = %s", i, w.Code, w.Body.String())
		}
	}

	var total, live int64
	db.Model(&models.Token{}).Count(&total)
	db.Model(&models.Token{}).Where("revoked = ?", false).Count(&live)
	if total != 4 {
		t.Errorf("total ledger rows = %d, want 4 (register + three logins)", total)
	}
	if live != 1 {
		t.Errorf("live ledger rows = %d, want 1", live)
	}
}

func TestRevokeAllUserTokens_NoTokensIsNoop(t *testing.T) {
	h, db := newAuthFixture(t, "auth_revoke_noop")

	user := models.User{Username: "bob", PasswordHash: "x", Role: models.RoleUser}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	if err := h.revokeAllUserTokens(user.ID); err != nil {
		t.Errorf("revokeAllUserTokens with empty ledger: %v", err)
	}
}
