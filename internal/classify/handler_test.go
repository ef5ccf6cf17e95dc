package classify

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/textprep"
	"resume-builder/resume/model"
)

// keywordModel predicts "Data Science" when "python" is present, otherwise "HR".
type keywordModel struct{}

func (keywordModel) Labels() []model.Category {
	return []model.Category{"Data Science", "HR"}
}

func (keywordModel) Predict(text textprep.PreprocessedText) (model.CategoryPrediction, error) {
	for _, tok := range text.Tokens {
		if tok == "python" {
			return model.CategoryPrediction{Label: "Data Science", Confidence: 0.9}, nil
		}
	}
	return model.CategoryPrediction{Label: "HR", Confidence: 0.6}, nil
}

func newRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func errorCode(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, resp.Body.String())
	}
	return body.Error.Code
}

func TestClassifyReturnsPrediction(t *testing.T) {
	r := newRouter(NewService(keywordModel{}))
	resp := postJSON(t, r, "/api/v1/classify", map[string]string{"resumeText": "Built Python data pipelines"})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var res Result
	if err := json.Unmarshal(resp.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Prediction.Label != "Data Science" {
		t.Fatalf("unexpected label %q", res.Prediction.Label)
	}
	if res.Tokens != 4 {
		t.Fatalf("expected 4 tokens, got %d", res.Tokens)
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	r := newRouter(NewService(keywordModel{}))
	resp := postJSON(t, r, "/api/v1/classify", map[string]string{"resumeText": "  \n\t "})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if code := errorCode(t, resp); code != "empty_input" {
		t.Fatalf("unexpected code %q", code)
	}
}

func TestClassifyWithoutModel(t *testing.T) {
	r := newRouter(NewService(nil))
	resp := postJSON(t, r, "/api/v1/classify", map[string]string{"resumeText": "Python developer"})

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
	if code := errorCode(t, resp); code != "model_not_loaded" {
		t.Fatalf("unexpected code %q", code)
	}
}

func TestHealthReportsModelState(t *testing.T) {
	for _, tc := range []struct {
		name   string
		model  Predictor
		loaded bool
	}{
		{"loaded", keywordModel{}, true},
		{"missing", nil, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(NewService(tc.model))
			resp := httptest.NewRecorder()
			r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
			if resp.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", resp.Code)
			}
			var body struct {
				OK          bool `json:"ok"`
				ModelLoaded bool `json:"modelLoaded"`
			}
			if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !body.OK || body.ModelLoaded != tc.loaded {
				t.Fatalf("unexpected health %+v", body)
			}
		})
	}
}

func TestCategoriesListsLabels(t *testing.T) {
	r := newRouter(NewService(keywordModel{}))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Data Science") {
		t.Fatalf("expected labels in body: %s", resp.Body.String())
	}
}

func uploadRequest(t *testing.T, fileName string, content []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write(content); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadClassifiesPlainText(t *testing.T) {
	r := newRouter(NewService(keywordModel{}))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, uploadRequest(t, "resume.txt", []byte("Jane Doe\nPython, SQL")))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var res FileResult
	if err := json.Unmarshal(resp.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Prediction.Label != "Data Science" || res.FileName != "resume.txt" || res.TextLength != len("Jane Doe\nPython, SQL") {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	r := newRouter(NewService(keywordModel{}))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, uploadRequest(t, "photo.png", []byte("\x89PNG\r\n\x1a\n0000")))

	if resp.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d", resp.Code)
	}
	if code := errorCode(t, resp); code != "unsupported_file_type" {
		t.Fatalf("unexpected code %q", code)
	}
}

func TestUploadRequiresFile(t *testing.T) {
	r := newRouter(NewService(keywordModel{}))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify/upload", strings.NewReader(""))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
