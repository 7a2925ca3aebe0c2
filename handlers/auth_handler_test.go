package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/smartpark/cwsms/database"
	"github.com/smartpark/cwsms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSuccess(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/login",
		`{"username":"admin","password":"admin123"}`, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Cookies())

	payload := decodeBody(t, resp)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "Login successful", payload["message"])
	assert.NotEmpty(t, payload["token"])

	user := payload["user"].(map[string]interface{})
	assert.Equal(t, "admin", user["username"])
}

func TestLoginBadCredentials(t *testing.T) {
	app := setupApp(t)

	for _, body := range []string{
		`{"username":"admin","password":"wrong"}`,
		`{"username":"nobody","password":"admin123"}`,
	} {
		resp := doJSON(t, app, fiber.MethodPost, "/api/auth/login", body, nil)
		payload := decodeBody(t, resp)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, false, payload["success"])
		assert.Equal(t, "Invalid username or password", payload["message"])
	}
}

func TestLoginMissingFields(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/login", `{"username":"admin"}`, nil)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUnauthenticatedDeleteIsRejected(t *testing.T) {
	app := setupApp(t)
	seedCar(t, "RAB123A")

	resp := doJSON(t, app, fiber.MethodDelete, "/api/cars/RAB123A", "", nil)
	payload := decodeBody(t, resp)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, false, payload["success"])

	// The car is still there.
	var n int64
	require.NoError(t, database.DB.Model(&models.Car{}).Where("plate_number = ?", "RAB123A").Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestBearerTokenFallback(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/login",
		`{"username":"admin","password":"admin123"}`, nil)
	payload := decodeBody(t, resp)
	token := payload["token"].(string)

	resp = doBearer(t, app, fiber.MethodGet, "/api/cars", token)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLogoutDestroysSession(t *testing.T) {
	app := setupApp(t)
	cookies := login(t, app)

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/logout", "", cookies)
	payload := decodeBody(t, resp)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, payload["success"])

	// The old cookie no longer authenticates.
	resp = doJSON(t, app, fiber.MethodGet, "/api/cars", "", cookies)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCheckAuth(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/auth/check", "", nil)
	payload := decodeBody(t, resp)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, false, payload["isAuthenticated"])

	cookies := login(t, app)
	resp = doJSON(t, app, fiber.MethodGet, "/api/auth/check", "", cookies)
	payload = decodeBody(t, resp)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, payload["isAuthenticated"])
}

func TestRegisterRequiresAuthAndRejectsDuplicates(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/register",
		`{"username":"cashier","password":"secret1"}`, nil)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	cookies := login(t, app)

	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/register",
		`{"username":"cashier","password":"secret1"}`, cookies)
	payload := decodeBody(t, resp)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, payload["success"])

	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/register",
		`{"username":"cashier","password":"secret1"}`, cookies)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}
