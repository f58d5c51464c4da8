package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"talentia_backend/internal/models"
)

// CreateUser inserts a user, hashing the password when it is still raw.
// Users start active and verified so tests can log in straight away.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		require.NoError(t, err, "Failed to hash test password")
		user.PasswordHash = string(hashed)
	}

	if user.Status == "" {
		user.Status = models.UserStatusActive
	}
	user.IsVerified = true

	require.NoError(t, db.Create(user).Error, "Failed to create test user %s", user.Email)
}

// CreateAndLoginUser creates a user and logs in through the API, returning
// the access token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	CreateUser(t, ts.DB, user)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "Login should succeed, got: "+bodyStr)

	var loginResponse struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	require.NotEmpty(t, loginResponse.AccessToken)

	return loginResponse.AccessToken, user
}

// CreateAndLoginFaculty creates a faculty user with a profile. The email is
// uniquified so parallel tests never collide.
func CreateAndLoginFaculty(t *testing.T, ts *TestServer) (string, *models.User, *models.FacultyProfile) {
	email := fmt.Sprintf("faculty_%d@test.com", time.Now().UnixNano())
	token, user := CreateAndLoginUser(t, ts, email, "password123", models.UserRoleFaculty)

	profile := &models.FacultyProfile{
		UserID:     user.ID,
		FullName:   "Test Faculty",
		Headline:   "Lecturer in Computer Science",
		Country:    "ES",
		Visibility: models.VisibilityPublic,
	}
	require.NoError(t, ts.DB.Create(profile).Error, "Failed to create faculty profile")

	return token, user, profile
}

// CreateAndLoginInstitution creates an institution user with its record.
func CreateAndLoginInstitution(t *testing.T, ts *TestServer) (string, *models.User, *models.Institution) {
	email := fmt.Sprintf("institution_%d@test.com", time.Now().UnixNano())
	token, user := CreateAndLoginUser(t, ts, email, "password123", models.UserRoleInstitution)

	institution := &models.Institution{
		UserID:  user.ID,
		Name:    "Test University",
		Country: "ES",
		Status:  models.InstitutionStatusActive,
	}
	require.NoError(t, ts.DB.Create(institution).Error, "Failed to create institution")

	return token, user, institution
}
