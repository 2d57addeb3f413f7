package cases

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, req *http.Request) (*AddCaseForm, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = req
	f, err := NewAddCaseForm().ParseAndValidate(c)
	if err != nil {
		return nil, err
	}
	return f.(*AddCaseForm), nil
}

func multipartRequest(t *testing.T, fields map[string]string, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" || content != nil {
		fw, err := w.CreateFormFile(FieldFile, filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, "/cases/add", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestParseMultipartWithFile(t *testing.T) {
	req := multipartRequest(t, map[string]string{
		FieldTitle:       " Cache ",
		FieldDescription: "Design a cache",
		FieldDifficulty:  "senior",
	}, "cache.excalidraw", []byte(`{"elements":[]}`))

	f, err := parse(t, req)
	require.NoError(t, err)
	assert.Equal(t, " Cache ", f.Title, "trimming is the service's job")
	assert.Equal(t, "Design a cache", f.Description)
	assert.Equal(t, "senior", f.Difficulty)
	require.NotNil(t, f.Attachment)
	assert.Equal(t, "cache.excalidraw", f.Attachment.Filename)
	assert.Equal(t, `{"elements":[]}`, string(f.Attachment.Content))

	sub := f.Submission()
	assert.Equal(t, f.Attachment, sub.Attachment)
	assert.Equal(t, "cache.excalidraw", f.ConvertToMap()[FieldFile])
}

func TestParseMultipartWithoutFile(t *testing.T) {
	f, err := parse(t, multipartRequest(t, map[string]string{FieldDescription: "d", FieldDifficulty: "junior"}, "", nil))
	require.NoError(t, err)
	assert.Nil(t, f.Attachment)
}

func TestParseMultipartWithEmptyFilePart(t *testing.T) {
	// Browsers send an empty part when no file is picked.
	f, err := parse(t, multipartRequest(t, map[string]string{FieldDescription: "d", FieldDifficulty: "junior"}, "", []byte{}))
	require.NoError(t, err)
	assert.Nil(t, f.Attachment)
}

func TestParseURLEncoded(t *testing.T) {
	form := url.Values{FieldDescription: {"d"}, FieldDifficulty: {"middle"}}
	req := httptest.NewRequest(http.MethodPost, "/cases/add", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	f, err := parse(t, req)
	require.NoError(t, err)
	assert.Equal(t, "middle", f.Difficulty)
	assert.Nil(t, f.Attachment)
}
