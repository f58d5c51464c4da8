package integration_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"talentia_backend/internal/models"
	"talentia_backend/test/helpers"
)

func TestAuthFlow_RegisterAndLogin(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	email := fmt.Sprintf("register_%d@test.com", time.Now().UnixNano())
	registerBody := map[string]interface{}{
		"email":     email,
		"password":  "super_password123",
		"role":      "faculty",
		"full_name": "Dr. Test Faculty",
		"country":   "ES",
	}

	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "Registration successful")

	// Registration created the profile alongside the user.
	var profile models.FacultyProfile
	err := ts.DB.Joins("JOIN users ON users.id = faculty_profiles.user_id").
		Where("users.email = ?", email).First(&profile).Error
	assert.NoError(t, err)
	assert.Equal(t, "Dr. Test Faculty", profile.FullName)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": "super_password123",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "access_token")
	assert.Contains(t, logBodyStr, "refresh_token")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	email := fmt.Sprintf("duplicate_%d@test.com", time.Now().UnixNano())
	body := map[string]interface{}{
		"email":            email,
		"password":         "super_password123",
		"role":             "institution",
		"institution_name": "Test University",
		"country":          "ES",
	}

	first, _ := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusCreated, first.StatusCode)

	second, secondBody := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, second.StatusCode)
	assert.Contains(t, secondBody, "already registered")
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	_, user, _ := helpers.CreateAndLoginFaculty(t, ts)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "not_the_password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid email or password")
}

func TestProtectedRoute_RequiresToken(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/faculty/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
