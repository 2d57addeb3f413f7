package cases

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/casebook/internal/http/forms"
	"github.com/yungbote/casebook/internal/platform/apierr"
	"github.com/yungbote/casebook/internal/services"
)

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDifficulty  = "difficulty"
	FieldFile        = "excalidraw_file"
)

type AddCaseForm struct {
	Title       string
	Description string
	Difficulty  string
	Attachment  *services.Attachment
}

func NewAddCaseForm() *AddCaseForm {
	return &AddCaseForm{}
}

// ParseAndValidate reads the multipart (or urlencoded) add-case form. The
// uploaded file, if any, is read fully into memory.
func (f *AddCaseForm) ParseAndValidate(c *gin.Context) (forms.Former, error) {
	f.Title = c.PostForm(FieldTitle)
	f.Description = c.PostForm(FieldDescription)
	f.Difficulty = c.PostForm(FieldDifficulty)

	if err := f.readAttachment(c); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *AddCaseForm) readAttachment(c *gin.Context) error {
	fh, err := c.FormFile(FieldFile)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil
	}
	if err != nil {
		return apierr.New(http.StatusBadRequest, "invalid_form", fmt.Errorf("parse upload: %w", err))
	}
	if fh.Filename == "" {
		return nil
	}

	file, err := fh.Open()
	if err != nil {
		return apierr.New(http.StatusBadRequest, "invalid_form", fmt.Errorf("open upload: %w", err))
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return apierr.New(http.StatusBadRequest, "invalid_form", fmt.Errorf("read upload: %w", err))
	}
	f.Attachment = &services.Attachment{Filename: fh.Filename, Content: content}
	return nil
}

func (f *AddCaseForm) Submission() services.CaseSubmission {
	return services.CaseSubmission{
		Title:       f.Title,
		Description: f.Description,
		Difficulty:  f.Difficulty,
		Attachment:  f.Attachment,
	}
}

func (f *AddCaseForm) ConvertToMap() map[string]interface{} {
	filename := ""
	if f.Attachment != nil {
		filename = f.Attachment.Filename
	}
	return map[string]interface{}{
		FieldTitle:       f.Title,
		FieldDescription: f.Description,
		FieldDifficulty:  f.Difficulty,
		FieldFile:        filename,
	}
}
