package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	v := NewVerifier("webhook-secret")

	token, err := v.Issue("minio-prod", time.Hour)
	require.NoError(t, err)

	subject, err := v.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "minio-prod", subject)
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	token, err := NewVerifier("other-secret").Issue("minio", 0)
	require.NoError(t, err)

	_, err = NewVerifier("webhook-secret").Validate(token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	v := NewVerifier("webhook-secret")
	v.nowFunc = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := v.Issue("minio", time.Hour)
	require.NoError(t, err)

	_, err = NewVerifier("webhook-secret").Validate(token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestIssueWithoutSecret(t *testing.T) {
	_, err := NewVerifier("").Issue("minio", 0)
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	v := NewVerifier("webhook-secret")
	token, err := v.Issue("minio", time.Minute)
	require.NoError(t, err)

	cases := []struct {
		name     string
		verifier *Verifier
		header   string
		want     int
	}{
		{"disabled", NewVerifier(""), "", http.StatusOK},
		{"missing header", v, "", http.StatusUnauthorized},
		{"wrong scheme", v, "Basic abc", http.StatusUnauthorized},
		{"bad token", v, "Bearer nope", http.StatusUnauthorized},
		{"valid token", v, "Bearer " + token, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(Middleware(tc.verifier))
			r.POST("/hook", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodPost, "/hook", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.want, rr.Code)
		})
	}
}
