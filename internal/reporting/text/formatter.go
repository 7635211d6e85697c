package text

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olusolaa/stack-tail/internal/core/domain"
)

const (
	timestampLayout         = "2006-01-02 15:04:05 -07:00"
	timestampLayoutWithZone = "2006-01-02 15:04:05 MST"

	glyphComplete   = "✅"
	glyphDeleted    = "⚰️ "
	glyphFailed     = "❌"
	glyphInProgress = "🔄"
)

var (
	bold      = color.New(color.Bold).SprintFunc()
	dim       = color.New(color.FgHiBlack).SprintFunc()
	completeF = color.New(color.Bold, color.FgHiGreen).SprintFunc()
	failedF   = color.New(color.Bold, color.FgHiRed).SprintFunc()
)

// Formatter renders a StatusRecord as one tab-delimited row.
type Formatter struct {
	// Location, when set, converts timestamps before printing. The instant is unchanged.
	Location   *time.Location
	ShowReason bool
}

func NewFormatter(loc *time.Location, showReason bool) Formatter {
	return Formatter{Location: loc, ShowReason: showReason}
}

func (f Formatter) Format(record domain.StatusRecord) string {
	cols := []string{
		f.Timestamp(record.Timestamp),
		bold(record.ResourceID),
		dim(record.ResourceType),
		Status(record),
	}
	if f.ShowReason {
		cols = append(cols, dim(record.Reason))
	}
	return strings.Join(cols, "\t")
}

func (f Formatter) Timestamp(ts time.Time) string {
	if f.Location == nil {
		return ts.Format(timestampLayout)
	}
	return ts.In(f.Location).Format(timestampLayoutWithZone)
}

// Status decorates the raw status with a lifecycle glyph and color.
func Status(record domain.StatusRecord) string {
	switch record.Lifecycle() {
	case domain.LifecycleCompleted:
		glyph := glyphComplete
		if record.IsDeletion() {
			glyph = glyphDeleted
		}
		return fmt.Sprintf("%s %s", glyph, completeF(record.Status))
	case domain.LifecycleFailed:
		return fmt.Sprintf("%s %s", glyphFailed, failedF(record.Status))
	default:
		return fmt.Sprintf("%s %s", glyphInProgress, record.Status)
	}
}
