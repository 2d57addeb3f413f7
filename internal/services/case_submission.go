package services

import (
	"encoding/json"
	"errors"
	"strings"
	"unicode/utf8"

	types "github.com/yungbote/casebook/internal/domain/cases"
	"github.com/yungbote/casebook/internal/platform/apierr"
)

var (
	ErrMissingFields    = errors.New("required fields are missing")
	ErrInvalidExtension = errors.New("diagram file must have the " + types.DiagramExtension + " extension")
	ErrInvalidContent   = errors.New("diagram file must be valid UTF-8 JSON")
)

const (
	CodeMissingFields    = "missing_fields"
	CodeInvalidExtension = "invalid_extension"
	CodeInvalidContent   = "invalid_content"
)

// Attachment is an uploaded diagram file, read fully into memory.
type Attachment struct {
	Filename string
	Content  []byte
}

// CaseSubmission is the raw, untrusted input of the add-case form.
type CaseSubmission struct {
	Title       string
	Description string
	Difficulty  string
	Attachment  *Attachment
}

// SubmissionPolicy parameterizes the one validation pipeline every entry
// point (form, CLI, seed file) goes through.
type SubmissionPolicy struct {
	AttachmentRequired bool
}

// Validate checks a submission in a fixed order and returns the case to
// persist. The first failing check wins; a failed submission yields no case.
func (p SubmissionPolicy) Validate(sub CaseSubmission) (*types.Case, error) {
	title := strings.TrimSpace(sub.Title)
	description := strings.TrimSpace(sub.Description)
	difficulty := sub.Difficulty
	attachment := sub.Attachment
	if attachment != nil && attachment.Filename == "" {
		attachment = nil
	}

	if description == "" || difficulty == "" || (p.AttachmentRequired && attachment == nil) {
		return nil, apierr.Validation(CodeMissingFields, ErrMissingFields)
	}

	var content *string
	if attachment != nil {
		if !strings.HasSuffix(attachment.Filename, types.DiagramExtension) {
			return nil, apierr.Validation(CodeInvalidExtension, ErrInvalidExtension)
		}
		text, err := decodeDiagram(attachment.Content)
		if err != nil {
			return nil, err
		}
		content = &text
	}

	c := &types.Case{
		Description:       description,
		Difficulty:        difficulty,
		ExcalidrawContent: content,
	}
	if title != "" {
		c.Title = &title
	}
	return c, nil
}

func decodeDiagram(raw []byte) (string, error) {
	if !utf8.Valid(raw) || !json.Valid(raw) {
		return "", apierr.Validation(CodeInvalidContent, ErrInvalidContent)
	}
	return string(raw), nil
}
