package trellis

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// layoutFile is the top-level YAML structure of a layout description.
type layoutFile struct {
	Panels []layoutPanel `yaml:"panels"`
}

type layoutPanel struct {
	Name     string       `yaml:"name"`
	Title    string       `yaml:"title"`
	Width    float64      `yaml:"width"`
	Height   float64      `yaml:"height"`
	Border   bool         `yaml:"border"`
	Flags    []string     `yaml:"flags"`
	Children []layoutNode `yaml:"children"`
}

// layoutNode is one child entry. Exactly one field must be set.
type layoutNode struct {
	Panel  *layoutPanel  `yaml:"panel"`
	Button *layoutButton `yaml:"button"`
	Text   *layoutText   `yaml:"text"`
	Input  *layoutInput  `yaml:"input"`
}

type layoutButton struct {
	Name   string  `yaml:"name"`
	Title  string  `yaml:"title"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type layoutText struct {
	Name string `yaml:"name"`
	Text string `yaml:"text"`
}

type layoutInput struct {
	Name      string  `yaml:"name"`
	Title     string  `yaml:"title"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Multiline bool    `yaml:"multiline"`
}

var windowFlagNames = map[string]WindowFlags{
	"no-title-bar": WindowNoTitleBar,
	"no-resize":    WindowNoResize,
	"no-move":      WindowNoMove,
	"auto-resize":  WindowAutoResize,
}

// Layout holds the views built by LoadLayout, indexed by their YAML names
// so callbacks can be attached after loading.
type Layout struct {
	panels []*Panel
	named  map[string]View
}

// LoadLayout parses a YAML view-tree description and builds it in vp.
// Top-level entries become top-level panels in document order. On error
// nothing is left registered with vp.
func LoadLayout(vp *Viewport, data []byte) (*Layout, error) {
	var file layoutFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse layout: empty document")
		}
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if len(file.Panels) == 0 {
		return nil, fmt.Errorf("parse layout: no panels")
	}

	l := &Layout{named: make(map[string]View)}
	for i := range file.Panels {
		p, err := l.buildPanel(vp, &file.Panels[i])
		if err != nil {
			for _, built := range l.panels {
				built.Destroy()
			}
			if p != nil {
				p.Destroy()
			}
			return nil, fmt.Errorf("parse layout: panels[%d]: %w", i, err)
		}
		l.panels = append(l.panels, p)
	}
	return l, nil
}

// buildPanel creates the panel described by lp and its subtree. The panel
// is returned even on error so the caller can destroy it.
func (l *Layout) buildPanel(vp *Viewport, lp *layoutPanel) (*Panel, error) {
	p := vp.NewPanel(lp.Title, Size{Width: lp.Width, Height: lp.Height})
	p.Border = lp.Border
	for _, name := range lp.Flags {
		f, ok := windowFlagNames[name]
		if !ok {
			return p, fmt.Errorf("panel %q: unknown flag %q", lp.Title, name)
		}
		p.Flags |= f
	}
	if err := l.name(lp.Name, p); err != nil {
		return p, err
	}

	for i := range lp.Children {
		child, err := l.buildNode(vp, &lp.Children[i])
		if child != nil {
			p.Append(child)
		}
		if err != nil {
			return p, fmt.Errorf("%q children[%d]: %w", lp.Title, i, err)
		}
	}
	return p, nil
}

func (l *Layout) buildNode(vp *Viewport, n *layoutNode) (View, error) {
	set := 0
	for _, ok := range []bool{n.Panel != nil, n.Button != nil, n.Text != nil, n.Input != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("entry must have exactly one of panel, button, text, input (has %d)", set)
	}

	switch {
	case n.Panel != nil:
		return l.buildPanel(vp, n.Panel)
	case n.Button != nil:
		b := NewButton(n.Button.Title, Size{Width: n.Button.Width, Height: n.Button.Height})
		return b, l.name(n.Button.Name, b)
	case n.Text != nil:
		t := NewText(n.Text.Text)
		return t, l.name(n.Text.Name, t)
	default:
		in := NewTextInput(n.Input.Title, Size{Width: n.Input.Width, Height: n.Input.Height})
		in.Multiline = n.Input.Multiline
		return in, l.name(n.Input.Name, in)
	}
}

func (l *Layout) name(name string, v View) error {
	if name == "" {
		return nil
	}
	if _, dup := l.named[name]; dup {
		return fmt.Errorf("duplicate name %q", name)
	}
	l.named[name] = v
	return nil
}

// Panels returns the top-level panels built from the document, in order.
func (l *Layout) Panels() []*Panel {
	return l.panels
}

// View returns the view registered under name, or nil.
func (l *Layout) View(name string) View {
	return l.named[name]
}

// Panel returns the panel registered under name, or nil if the name is
// unknown or names another kind of view.
func (l *Layout) Panel(name string) *Panel {
	p, _ := l.named[name].(*Panel)
	return p
}

// Button returns the button registered under name, or nil.
func (l *Layout) Button(name string) *Button {
	b, _ := l.named[name].(*Button)
	return b
}

// Text returns the text view registered under name, or nil.
func (l *Layout) Text(name string) *Text {
	t, _ := l.named[name].(*Text)
	return t
}

// Input returns the text input registered under name, or nil.
func (l *Layout) Input(name string) *TextInput {
	in, _ := l.named[name].(*TextInput)
	return in
}
