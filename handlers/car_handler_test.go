package handlers_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/smartpark/cwsms/database"
	"github.com/smartpark/cwsms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCar(t *testing.T) {
	app := setupApp(t)
	cookies := login(t, app)

	body := `{"plateNumber":"RAB123A","carType":"Sedan","carSize":"Medium","driverName":"Jean Bosco","phoneNumber":"0788123456"}`
	resp := doJSON(t, app, fiber.MethodPost, "/api/cars", body, cookies)
	payload := decodeBody(t, resp)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "Car created successfully", payload["message"])

	// Duplicate plates are rejected.
	resp = doJSON(t, app, fiber.MethodPost, "/api/cars", body, cookies)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestCreateCarMissingFields(t *testing.T) {
	app := setupApp(t)
	cookies := login(t, app)

	resp := doJSON(t, app, fiber.MethodPost, "/api/cars",
		`{"plateNumber":"RAB123A","carType":"Sedan"}`, cookies)
	payload := decodeBody(t, resp)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "All fields are required", payload["message"])

	var n int64
	require.NoError(t, database.DB.Model(&models.Car{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestGetCarByPlateNumber(t *testing.T) {
	app := setupApp(t)
	cookies := login(t, app)
	seedCar(t, "RAB123A")

	resp := doJSON(t, app, fiber.MethodGet, "/api/cars/RAB123A", "", cookies)
	payload := decodeBody(t, resp)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, "RAB123A", data["plateNumber"])
	assert.Equal(t, "Jean Bosco", data["driverName"])

	resp = doJSON(t, app, fiber.MethodGet, "/api/cars/ZZZ999Z", "", cookies)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateCar(t *testing.T) {
	app := setupApp(t)
	cookies := login(t, app)
	seedCar(t, "RAB123A")

	body := `{"carType":"Truck","carSize":"Large","driverName":"Alice Uwase","phoneNumber":"0722987654"}`
	resp := doJSON(t, app, fiber.MethodPut, "/api/cars/RAB123A", body, cookies)
	payload := decodeBody(t, resp)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Car updated successfully", payload["message"])

	var car models.Car
	require.NoError(t, database.DB.Where("plate_number = ?", "RAB123A").First(&car).Error)
	assert.Equal(t, "Truck", car.CarType)
	assert.Equal(t, "Alice Uwase", car.DriverName)

	resp = doJSON(t, app, fiber.MethodPut, "/api/cars/ZZZ999Z", body, cookies)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// Deleting a car takes its whole wash history with it: the service
// record and its payment must be gone afterwards, and both lookups
// must report not-found.
func TestDeleteCarCascadesThroughAPI(t *testing.T) {
	app := setupApp(t)
	cookies := login(t, app)

	car := seedCar(t, "RAB123A")
	pkg := seedPackage(t)
	record := seedServiceRecord(t, car.PlateNumber, pkg.PackageNumber)
	payment := seedPayment(t, record.RecordNumber, 5000)

	resp := doJSON(t, app, fiber.MethodDelete, "/api/cars/RAB123A", "", cookies)
	payload := decodeBody(t, resp)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Car and all related records deleted successfully", payload["message"])

	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/service-packages/%d", record.RecordNumber), "", cookies)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/payments/%d", payment.PaymentNumber), "", cookies)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteCarNotFound(t *testing.T) {
	app := setupApp(t)
	cookies := login(t, app)

	resp := doJSON(t, app, fiber.MethodDelete, "/api/cars/ZZZ999Z", "", cookies)
	payload := decodeBody(t, resp)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Car not found", payload["message"])
}
