package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/smartpark/cwsms/database"
	"github.com/smartpark/cwsms/models"
	"github.com/smartpark/cwsms/routes"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupApp wires the full route table against a fresh in-memory store
// and seeds the admin account. Handlers read the global database.DB, so
// these tests must not run in parallel.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Package{},
		&models.Car{},
		&models.ServicePackage{},
		&models.Payment{},
		&models.User{},
		&models.Session{},
	))
	database.DB = db

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{Username: "admin", Password: string(hashed)}).Error)

	app := fiber.New()
	routes.AuthRoutes(app)
	routes.CarRoutes(app)
	routes.PackageRoutes(app)
	routes.ServicePackageRoutes(app)
	routes.PaymentRoutes(app)
	routes.UserRoutes(app)
	return app
}

func login(t *testing.T, app *fiber.App) []*http.Cookie {
	t.Helper()

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/login",
		`{"username":"admin","password":"admin123"}`, nil)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Cookies())
	return resp.Cookies()
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string, cookies []*http.Cookie) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func doBearer(t *testing.T, app *fiber.App, method, path, token string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload
}

func seedCar(t *testing.T, plate string) models.Car {
	t.Helper()
	car := models.Car{PlateNumber: plate, CarType: "Sedan", CarSize: "Medium", DriverName: "Jean Bosco", PhoneNumber: "0788123456"}
	require.NoError(t, database.DB.Create(&car).Error)
	return car
}

func seedPackage(t *testing.T) models.Package {
	t.Helper()
	pkg := models.Package{PackageName: "Basic wash", PackageDescription: "Exterior hand wash", PackagePrice: 5000}
	require.NoError(t, database.DB.Create(&pkg).Error)
	return pkg
}

func seedServiceRecord(t *testing.T, plate string, packageNumber uint) models.ServicePackage {
	t.Helper()
	record := models.ServicePackage{PlateNumber: plate, PackageNumber: packageNumber, ServiceDate: "2025-08-01"}
	require.NoError(t, database.DB.Create(&record).Error)
	return record
}

func seedPayment(t *testing.T, recordNumber uint, amount float64) models.Payment {
	t.Helper()
	payment := models.Payment{RecordNumber: recordNumber, AmountPaid: amount, PaymentDate: "2025-08-01"}
	require.NoError(t, database.DB.Create(&payment).Error)
	return payment
}
