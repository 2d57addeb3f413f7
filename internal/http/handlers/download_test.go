package handlers

import (
	"strconv"
	"testing"
)

func itoa(v int64) string { return strconv.FormatInt(v, 10) }

func TestContentDisposition(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My_Case.excalidraw", "attachment; filename=My_Case.excalidraw"},
		{"case_7.excalidraw", "attachment; filename=case_7.excalidraw"},
		{`Case_"A"_\_B.excalidraw`, `attachment; filename="Case_\"A\"_\\_B.excalidraw"`},
		{"tab\there.excalidraw", "attachment; filename=tabhere.excalidraw"},
		{"dir/name.excalidraw", "attachment; filename=dir_name.excalidraw"},
		{"Кейс_1.excalidraw", "attachment; filename*=utf-8''%D0%9A%D0%B5%D0%B9%D1%81_1.excalidraw"},
		{"   ", "attachment"},
	}
	for _, tt := range tests {
		if got := contentDisposition(tt.in); got != tt.want {
			t.Fatalf("contentDisposition(%q): got=%q want=%q", tt.in, got, tt.want)
		}
	}
}
