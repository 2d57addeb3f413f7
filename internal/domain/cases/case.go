package cases

import (
	"strconv"
	"time"
)

// UntitledPlaceholder is shown wherever a case without a title is displayed.
const UntitledPlaceholder = "Untitled case"

// DiagramExtension is the filename suffix every uploaded diagram must carry.
const DiagramExtension = ".excalidraw"

type Case struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       *string `gorm:"column:title;size:200" json:"title"`
	Description string  `gorm:"column:description;type:text;not null" json:"description"`
	Difficulty  string  `gorm:"column:difficulty;size:50;not null;index" json:"difficulty"`

	// Raw Excalidraw JSON as uploaded. Checked for syntax once at creation.
	ExcalidrawContent *string `gorm:"column:excalidraw_content;type:text" json:"excalidraw_content,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;not null;index" json:"created_at"`
}

func (Case) TableName() string { return "cases" }

func (c *Case) DisplayTitle() string {
	if c == nil || c.Title == nil || *c.Title == "" {
		return UntitledPlaceholder
	}
	return *c.Title
}

func (c *Case) HasDiagram() bool {
	return c != nil && c.ExcalidrawContent != nil
}

func (c *Case) String() string {
	if c == nil {
		return "<Case nil>"
	}
	return "<Case " + strconv.FormatInt(c.ID, 10) + ": " + c.DisplayTitle() + ">"
}
