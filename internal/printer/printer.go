// Package printer renders a parsed value tree as a readable inspection
// listing. The notation names each variant explicitly and is not JSON;
// the parser core deliberately has no serializer.
package printer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mcncl/jsontree/internal/config"
	"github.com/mcncl/jsontree/internal/models"
)

// Renderer formats value trees according to a render configuration.
type Renderer struct {
	cfg config.RenderConfig
}

// NewRenderer creates a Renderer for the given render configuration.
func NewRenderer(cfg config.RenderConfig) *Renderer {
	return &Renderer{cfg: cfg}
}

// Render returns the inspection listing for a value tree, ending without
// a trailing newline.
func (r *Renderer) Render(value models.Value) (string, error) {
	var sb strings.Builder
	if err := r.render(&sb, value, 0); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (r *Renderer) render(sb *strings.Builder, value models.Value, depth int) error {
	switch v := value.(type) {
	case models.Null:
		sb.WriteString("Null")
	case models.Bool:
		fmt.Fprintf(sb, "Bool(%t)", bool(v))
	case models.Number:
		fmt.Fprintf(sb, "Number(%s)", strconv.FormatFloat(float64(v), 'g', -1, 64))
	case models.String:
		fmt.Fprintf(sb, "String(%s)", strconv.Quote(string(v)))
	case models.Array:
		return r.renderArray(sb, v, depth)
	case models.Object:
		return r.renderObject(sb, v, depth)
	default:
		return fmt.Errorf("unsupported value kind %T", value)
	}
	return nil
}

func (r *Renderer) renderArray(sb *strings.Builder, arr models.Array, depth int) error {
	if len(arr) == 0 {
		sb.WriteString("Array[]")
		return nil
	}
	if r.elided(depth) {
		fmt.Fprintf(sb, "Array[... %d elements ...]", len(arr))
		return nil
	}

	sb.WriteString("Array[\n")
	for _, elem := range arr {
		sb.WriteString(r.indent(depth + 1))
		if err := r.render(sb, elem, depth+1); err != nil {
			return err
		}
		sb.WriteString(",\n")
	}
	sb.WriteString(r.indent(depth))
	sb.WriteString("]")
	return nil
}

func (r *Renderer) renderObject(sb *strings.Builder, obj models.Object, depth int) error {
	if len(obj) == 0 {
		sb.WriteString("Object{}")
		return nil
	}
	if r.elided(depth) {
		fmt.Fprintf(sb, "Object{... %d keys ...}", len(obj))
		return nil
	}

	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	if r.cfg.SortKeys {
		sort.Strings(keys)
	}

	sb.WriteString("Object{\n")
	for _, key := range keys {
		sb.WriteString(r.indent(depth + 1))
		fmt.Fprintf(sb, "%s: ", strconv.Quote(key))
		if err := r.render(sb, obj[key], depth+1); err != nil {
			return err
		}
		sb.WriteString(",\n")
	}
	sb.WriteString(r.indent(depth))
	sb.WriteString("}")
	return nil
}

// elided reports whether children at this depth fall beyond the
// configured maximum and should be collapsed.
func (r *Renderer) elided(depth int) bool {
	return r.cfg.MaxDepth > 0 && depth >= r.cfg.MaxDepth
}

func (r *Renderer) indent(depth int) string {
	return strings.Repeat(" ", r.cfg.Indent*depth)
}
