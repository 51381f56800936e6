package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	BatchID  string   `json:"batchId" binding:"required,batchid"`
	Batch    string   `json:"batch" binding:"omitempty,batchrange"`
	Category string   `json:"category" binding:"omitempty,category"`
	URL      string   `json:"url" binding:"omitempty,httpurl"`
	Year     int      `json:"year" binding:"omitempty,projectyear"`
	Name     string   `json:"name" binding:"omitempty,notblank"`
	Tags     []string `json:"tags" binding:"omitempty,max=2"`
}

func bind(body string) (string, bool) {
	gin.SetMode(gin.TestMode)
	Init()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req sampleRequest
	return BindJSON(c, &req)
}

func TestBindJSON(t *testing.T) {
	now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "valid", body: `{"batchId":"cse2027","batch":"2023-2027","category":"research","url":"https://x.io","year":2026,"name":"Solar"}`},
		{name: "missing required", body: `{}`, wantMsg: "batchId is required"},
		{name: "bad batch id", body: `{"batchId":"CSE-2027"}`, wantMsg: "batchId must contain only uppercase letters and numbers"},
		{name: "batch id too long", body: `{"batchId":"ABCDEFGHIJKLMNOPQRSTU"}`, wantMsg: "batchId must contain only uppercase letters and numbers"},
		{name: "bad range", body: `{"batchId":"CSE2027","batch":"2023/2027"}`, wantMsg: "batch must be in format YYYY-YYYY"},
		{name: "bad category", body: `{"batchId":"CSE2027","category":"hobby"}`, wantMsg: "category must be one of undergraduate, capstone, research, internship"},
		{name: "bad url", body: `{"batchId":"CSE2027","url":"ftp://x.io"}`, wantMsg: "url must be a valid http or https URL"},
		{name: "year too old", body: `{"batchId":"CSE2027","year":1999}`, wantMsg: "year must be between 2000 and next year"},
		{name: "year too far", body: `{"batchId":"CSE2027","year":2027}`, wantMsg: "year must be between 2000 and next year"},
		{name: "blank name", body: `{"batchId":"CSE2027","name":"   "}`, wantMsg: "name cannot be blank"},
		{name: "too many tags", body: `{"batchId":"CSE2027","tags":["a","b","c"]}`, wantMsg: "tags must contain at maximum 2 items"},
		{name: "wrong type", body: `{"batchId":"CSE2027","year":"soon"}`, wantMsg: "year has an invalid type"},
		{name: "empty body", body: ``, wantMsg: "Request body is required"},
		{name: "truncated", body: `{"batchId":`, wantMsg: "Request body is not valid JSON"},
		{name: "garbage", body: `{batchId}`, wantMsg: "Request body is not valid JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := bind(tt.body)
			assert.Equal(t, tt.wantMsg == "", ok)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestInitIsIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Init()
		Init()
	})
}
