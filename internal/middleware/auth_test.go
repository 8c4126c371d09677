package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func bearerCtx(header string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		c.Request.Header.Set("Authorization", header)
	}
	return c
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"missing header", "", ""},
		{"bearer token", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"case-insensitive scheme", "bearer abc", "abc"},
		{"basic scheme", "Basic dXNlcjpwdw==", ""},
		{"scheme only", "Bearer", ""},
		{"surrounding space trimmed", "Bearer   abc  ", "abc"},
	}
	for _, tc := range cases {
		if got := BearerToken(bearerCtx(tc.header)); got != tc.want {
			t.Errorf("%s: BearerToken = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestCurrentUser_Empty(t *testing.T) {
	c := bearerCtx("")
	if _, ok := CurrentUser(c); ok {
		t.Error("CurrentUser reported an identity on a fresh request")
	}
}
