package json

import (
	"context"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/olusolaa/stack-tail/internal/core/domain"
	"github.com/olusolaa/stack-tail/internal/core/ports"
	"github.com/olusolaa/stack-tail/internal/errors"
)

const RendererTypeJSON = "json"

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Renderer writes one JSON document per tick, newline delimited.
type Renderer struct {
	writer io.Writer
	logger ports.Logger
}

func NewRenderer(logger ports.Logger) *Renderer {
	return NewRendererWithWriter(os.Stdout, logger)
}

func NewRendererWithWriter(w io.Writer, logger ports.Logger) *Renderer {
	return &Renderer{writer: w, logger: logger}
}

type jsonTick struct {
	PreviousCount int              `json:"previous_count"`
	Count         int              `json:"count"`
	Records       []jsonStatusItem `json:"records"`
}

type jsonStatusItem struct {
	domain.StatusRecord
	Lifecycle domain.Lifecycle `json:"lifecycle"`
}

func (r *Renderer) Render(ctx context.Context, tick domain.Tick) error {
	doc := jsonTick{
		PreviousCount: tick.PreviousCount,
		Count:         len(tick.Records),
		Records:       make([]jsonStatusItem, 0, len(tick.Records)),
	}
	for _, rec := range tick.Records {
		doc.Records = append(doc.Records, jsonStatusItem{StatusRecord: rec, Lifecycle: rec.Lifecycle()})
	}

	data, err := jsonAPI.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to marshal tick to JSON")
	}
	data = append(data, '\n')
	if _, err := r.writer.Write(data); err != nil {
		r.logger.Debugf(ctx, "writing JSON tick failed: %v", err)
	}
	return nil
}
