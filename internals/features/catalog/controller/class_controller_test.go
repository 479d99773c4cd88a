package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llc_backend/internals/features/catalog/model"
)

type fakeClassStore struct {
	classes     []model.ClassModel
	enrollCalls int
	enrollReply int64
}

func (f *fakeClassStore) ListByPopularity(_ context.Context) ([]model.ClassModel, error) {
	return f.classes, nil
}

func (f *fakeClassStore) Create(_ context.Context, class *model.ClassModel) error {
	class.ID = uuid.New()
	f.classes = append(f.classes, *class)
	return nil
}

func (f *fakeClassStore) RecordEnrollment(_ context.Context, _ uuid.UUID) (int64, error) {
	f.enrollCalls++
	return f.enrollReply, nil
}

func newClassTestApp(store *fakeClassStore) *fiber.App {
	ctrl := &ClassController{Store: store, Validate: validator.New()}
	app := fiber.New()
	app.Get("/classes", ctrl.ListClasses)
	app.Post("/classes", ctrl.Publish)
	app.Patch("/classes/:id", ctrl.RecordEnrollment)
	return app
}

func patchEnroll(t *testing.T, app *fiber.App, id string, seats int) *http.Response {
	t.Helper()
	body, err := json.Marshal(map[string]int{"available_seats": seats})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPatch, "/classes/"+id, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRecordEnrollment_ZeroSeatsIsNoop(t *testing.T) {
	store := &fakeClassStore{enrollReply: 1}
	app := newClassTestApp(store)

	resp := patchEnroll(t, app, uuid.NewString(), 0)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.EqualValues(t, 0, got["modified"])
	assert.Equal(t, 0, store.enrollCalls, "zero seats must not touch the store")
}

func TestRecordEnrollment_SeatsAvailable(t *testing.T) {
	store := &fakeClassStore{enrollReply: 1}
	app := newClassTestApp(store)

	resp := patchEnroll(t, app, uuid.NewString(), 5)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.EqualValues(t, 1, got["modified"])
	assert.Equal(t, 1, store.enrollCalls)
}

func TestRecordEnrollment_BadIDRejected(t *testing.T) {
	store := &fakeClassStore{}
	app := newClassTestApp(store)

	resp := patchEnroll(t, app, "not-a-uuid", 5)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, store.enrollCalls)
}

func TestListClasses_ReturnsCatalog(t *testing.T) {
	store := &fakeClassStore{classes: []model.ClassModel{
		{ID: uuid.New(), Name: "Piano", TotalEnroll: 40},
		{ID: uuid.New(), Name: "Violin", TotalEnroll: 12},
	}}
	app := newClassTestApp(store)

	req := httptest.NewRequest(http.MethodGet, "/classes", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var got []model.ClassModel
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Piano", got[0].Name)
}
