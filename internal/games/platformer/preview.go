package platformer

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// PreviewFooter is the last line of the preview screen.
const PreviewFooter = "Ctrl+R: Run Level   |   Ctrl+B: Reset Game"

type previewEntity struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W int     `yaml:"w,omitempty"`
	H int     `yaml:"h,omitempty"`
}

type previewEnemy struct {
	Type EnemyType `yaml:"type"`
	X    float64   `yaml:"x"`
	Y    float64   `yaml:"y"`
	VX   float64   `yaml:"vx"`
	MinX float64   `yaml:"min_x"`
	MaxX float64   `yaml:"max_x"`
}

type previewDoc struct {
	Level     int             `yaml:"level"`
	Surface   string          `yaml:"surface"`
	Player    previewEntity   `yaml:"player"`
	Goal      previewEntity   `yaml:"goal"`
	Platforms []previewEntity `yaml:"platforms"`
	Enemies   []previewEnemy  `yaml:"enemies,omitempty"`
	Planes    []previewEntity `yaml:"planes,omitempty"`
	Lava      []previewEntity `yaml:"lava,omitempty"`
}

func hazardEntities(hs []Hazard) []previewEntity {
	out := make([]previewEntity, 0, len(hs))
	for _, h := range hs {
		out = append(out, previewEntity{X: float64(h.X), Y: float64(h.Y), W: h.W, H: h.H})
	}
	return out
}

func newPreviewDoc(lvl *Level) previewDoc {
	doc := previewDoc{
		Level:   lvl.Number,
		Surface: fmt.Sprintf("%dx%d", lvl.Width, lvl.Height),
		Player:  previewEntity{X: lvl.Player.X, Y: lvl.Player.Y, W: lvl.Player.Width, H: lvl.Player.Height},
		Goal:    previewEntity{X: float64(lvl.Goal.X), Y: float64(lvl.Goal.Y), W: lvl.Goal.Width, H: lvl.Goal.Height},
		Planes:  hazardEntities(lvl.Planes),
		Lava:    hazardEntities(lvl.Lava),
	}
	for _, p := range lvl.Platforms {
		doc.Platforms = append(doc.Platforms, previewEntity{X: float64(p.X), Y: float64(p.Y), W: p.W, H: p.H})
	}
	for _, e := range lvl.Enemies {
		doc.Enemies = append(doc.Enemies, previewEnemy{Type: e.Type, X: e.X, Y: e.Y, VX: e.VX, MinX: e.MinX, MaxX: e.MaxX})
	}
	return doc
}

// flowLeaves switches every mapping whose values are all scalars to flow
// style, so each entity prints on one line.
func flowLeaves(n *yaml.Node) {
	if n.Kind == yaml.MappingNode {
		leaf := true
		for i := 1; i < len(n.Content); i += 2 {
			if n.Content[i].Kind != yaml.ScalarNode {
				leaf = false
				break
			}
		}
		if leaf {
			n.Style = yaml.FlowStyle
			return
		}
	}
	for _, c := range n.Content {
		flowLeaves(c)
	}
}

// DumpLevel returns a YAML description of the level's structure.
func DumpLevel(lvl *Level) (string, error) {
	var node yaml.Node
	if err := node.Encode(newPreviewDoc(lvl)); err != nil {
		return "", fmt.Errorf("platformer: cannot encode level %d: %w", lvl.Number, err)
	}
	flowLeaves(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return "", fmt.Errorf("platformer: cannot encode level %d: %w", lvl.Number, err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("platformer: cannot encode level %d: %w", lvl.Number, err)
	}
	return plainKeys.Replace(strings.TrimRight(buf.String(), "\n")), nil
}

// plainKeys undoes the quoting yaml.v3 applies to keys that YAML 1.1 would
// read as booleans. Only "y" occurs in a dump.
var plainKeys = strings.NewReplacer(`"y": `, "y: ")

// DrawPreview returns the preview screen for lvl: the dump clipped to the
// top h-2 rows and w columns, then the footer on the last row.
func DrawPreview(lvl *Level, w, h int) core.DrawList {
	dump, err := DumpLevel(lvl)
	if err != nil {
		dump = err.Error()
	}

	var d core.DrawList
	for row, line := range strings.Split(dump, "\n") {
		if row >= h-2 {
			break
		}
		runes := []rune(line)
		if len(runes) > w {
			runes = runes[:w]
		}
		d.Text(row, 0, string(runes), core.ColorDefault)
	}
	d.Text(h-1, 0, PreviewFooter, core.ColorCyan)
	return d
}
