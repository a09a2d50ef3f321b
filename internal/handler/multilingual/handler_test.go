package multilingual

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chloe-app/backend/internal/model/assistant"
	assistantService "github.com/chloe-app/backend/internal/service/assistant"
	"github.com/chloe-app/backend/pkg/utils"
)

type resolverFunc func() (assistant.IDs, error)

func (f resolverFunc) Resolve() (assistant.IDs, error) { return f() }

func setEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CHLOE_ENGLISH_ASSISTANT_ID", "asst_en")
	t.Setenv("CHLOE_SPANISH_ASSISTANT_ID", "asst_es")
	t.Setenv("CHLOE_GERMAN_ASSISTANT_ID", "asst_de")
	t.Setenv("CHLOE_DUTCH_ASSISTANT_ID", "asst_nl")
}

func setupRouter(resolver Resolver) *chi.Mux {
	r := chi.NewRouter()
	r.MethodNotAllowed(utils.MethodNotAllowed)
	New(resolver, zap.NewNop()).RegisterRoutes(r)
	return r
}

func get(r http.Handler, method string) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(method, "/multilingual-config", nil))
	return resp
}

func TestConfigAllPresent(t *testing.T) {
	setEnv(t)
	r := setupRouter(assistantService.NewResolver(nil))

	resp := get(r, http.MethodGet)
	require.Equal(t, http.StatusOK, resp.Code)

	var got struct {
		AssistantIDs map[string]string `json:"assistantIds"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, map[string]string{
		"English": "asst_en",
		"Spanish": "asst_es",
		"German":  "asst_de",
		"Dutch":   "asst_nl",
	}, got.AssistantIDs)
}

func TestConfigMissingDutch(t *testing.T) {
	setEnv(t)
	t.Setenv("CHLOE_DUTCH_ASSISTANT_ID", "")
	r := setupRouter(assistantService.NewResolver(nil))

	resp := get(r, http.MethodGet)
	require.Equal(t, http.StatusInternalServerError, resp.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Missing assistant IDs for: Dutch", body["error"])
	assert.NotContains(t, body, "assistantIds")
}

func TestConfigUnexpectedError(t *testing.T) {
	r := setupRouter(resolverFunc(func() (assistant.IDs, error) {
		return assistant.IDs{}, errors.New("vault sealed")
	}))

	resp := get(r, http.MethodGet)
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, resp.Body.String())
}

func TestConfigWrongMethod(t *testing.T) {
	setEnv(t)
	r := setupRouter(assistantService.NewResolver(nil))

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		assert.Equal(t, http.StatusMethodNotAllowed, get(r, method).Code, method)
	}
}
