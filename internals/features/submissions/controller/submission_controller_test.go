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

	"llc_backend/internals/features/submissions/model"
	helper "llc_backend/internals/helpers"
)

type fakeSubmissionStore struct {
	submissions []model.SubmissionModel

	lastEditID    uuid.UUID
	lastEditEmail string
	editReply     int64

	lastStatusID uuid.UUID
	lastStatus   string
}

func (f *fakeSubmissionStore) Create(_ context.Context, s *model.SubmissionModel) error {
	s.ID = uuid.New()
	f.submissions = append(f.submissions, *s)
	return nil
}

func (f *fakeSubmissionStore) List(_ context.Context, submitterEmail string) ([]model.SubmissionModel, error) {
	if submitterEmail == "" {
		return f.submissions, nil
	}
	var out []model.SubmissionModel
	for _, s := range f.submissions {
		if s.SubmitterEmail == submitterEmail {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubmissionStore) UpdateFields(_ context.Context, id uuid.UUID, submitterEmail, _ string, _ float64, _ int) (int64, error) {
	f.lastEditID = id
	f.lastEditEmail = submitterEmail
	return f.editReply, nil
}

func (f *fakeSubmissionStore) UpdateStatus(_ context.Context, id uuid.UUID, status string) (int64, error) {
	f.lastStatusID = id
	f.lastStatus = status
	return 1, nil
}

func (f *fakeSubmissionStore) UpdateFeedback(_ context.Context, id uuid.UUID, feedback string) (int64, error) {
	for i := range f.submissions {
		if f.submissions[i].ID == id {
			f.submissions[i].Feedback = &feedback
			return 1, nil
		}
	}
	return 0, nil
}

// asUser plants the authenticated identity the way the auth middleware would.
func asUser(email string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(helper.LocUserEmail, email)
		return c.Next()
	}
}

func newSubmissionTestApp(store *fakeSubmissionStore, email string) *fiber.App {
	ctrl := &SubmissionController{Store: store, Validate: validator.New()}
	app := fiber.New()
	app.Use(asUser(email))
	app.Post("/addedClasses", ctrl.Submit)
	app.Get("/addedClasses", ctrl.List)
	app.Put("/addedClasses/:id", ctrl.Edit)
	app.Patch("/addedClasses/:status/:id", ctrl.SetStatus)
	app.Patch("/addedClasses/:id", ctrl.SetFeedback)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestNormalizeStatus_ExactStringEquality(t *testing.T) {
	cases := map[string]string{
		"Approve":  model.StatusApprove,
		"approve":  model.StatusDeny,
		"APPROVE":  model.StatusDeny,
		"Deny":     model.StatusDeny,
		"Rejected": model.StatusDeny,
		"":         model.StatusDeny,
	}
	for input, want := range cases {
		assert.Equal(t, want, model.NormalizeStatus(input), "input %q", input)
	}
}

func TestSubmit_DefaultsToPendingAndTokenEmail(t *testing.T) {
	store := &fakeSubmissionStore{}
	app := newSubmissionTestApp(store, "teach@example.com")

	resp := doJSON(t, app, http.MethodPost, "/addedClasses", map[string]interface{}{
		"name":            "Guitar 101",
		"price":           25.0,
		"available_seats": 10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, store.submissions, 1)
	assert.Equal(t, model.StatusPending, store.submissions[0].Status)
	assert.Equal(t, "teach@example.com", store.submissions[0].SubmitterEmail)
}

func TestSetStatus_CoercesToDeny(t *testing.T) {
	store := &fakeSubmissionStore{}
	app := newSubmissionTestApp(store, "admin@example.com")
	id := uuid.New()

	resp := doJSON(t, app, http.MethodPatch, "/addedClasses/Approve/"+id.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, model.StatusApprove, store.lastStatus)

	resp = doJSON(t, app, http.MethodPatch, "/addedClasses/anything-else/"+id.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, model.StatusDeny, store.lastStatus)
	assert.Equal(t, id, store.lastStatusID)
}

func TestEdit_ScopedToSubmitter(t *testing.T) {
	store := &fakeSubmissionStore{editReply: 0}
	app := newSubmissionTestApp(store, "mallory@example.com")
	id := uuid.New()

	resp := doJSON(t, app, http.MethodPut, "/addedClasses/"+id.String(), map[string]interface{}{
		"name":            "Hijacked",
		"price":           1.0,
		"available_seats": 1,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.EqualValues(t, 0, got["modified"])
	assert.Equal(t, "mallory@example.com", store.lastEditEmail, "edit must carry the token identity")
	assert.Equal(t, id, store.lastEditID)
}

func TestList_FiltersBySubmitter(t *testing.T) {
	store := &fakeSubmissionStore{submissions: []model.SubmissionModel{
		{ID: uuid.New(), SubmitterEmail: "a@example.com", Name: "A"},
		{ID: uuid.New(), SubmitterEmail: "b@example.com", Name: "B"},
	}}
	app := newSubmissionTestApp(store, "admin@example.com")

	resp := doJSON(t, app, http.MethodGet, "/addedClasses?email=a@example.com", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	var got []model.SubmissionModel
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Name)

	resp = doJSON(t, app, http.MethodGet, "/addedClasses", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ = io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Len(t, got, 2)
}
