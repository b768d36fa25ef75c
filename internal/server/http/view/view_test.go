package view

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestJSONRenderer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	NewJSONRenderer().Render(c, http.StatusConflict, PageRegister, Attributes{"msg": "taken"})

	if recorder.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", recorder.Code)
	}
	var body struct {
		Page       string         `json:"page"`
		Attributes map[string]any `json:"attributes"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Page != PageRegister || body.Attributes["msg"] != "taken" {
		t.Fatalf("unexpected body %+v", body)
	}

	recorder = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(recorder)
	NewJSONRenderer().Render(c, http.StatusOK, PageAbout, nil)
	if got := recorder.Body.String(); got != `{"attributes":{},"page":"aboutUs"}` {
		t.Fatalf("unexpected body %s", got)
	}
}
