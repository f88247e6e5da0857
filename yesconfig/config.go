// Package yesconfig loads a small game-style configuration schema from a
// YES document: a !version global, window/volume/lang sections, and named
// controls sections with key bindings. It exists as a worked example of
// layering schema validation on top of parse results.
package yesconfig

import (
	"fmt"
	"strconv"

	yes "github.com/TheMaverickProgrammer/go-yes-parser"
	"github.com/TheMaverickProgrammer/go-yes-parser/yesparser"
)

type Window struct {
	Width      int
	Height     int
	Fullscreen bool
}

type Volume struct {
	Sfx   float64
	Music float64
}

type Controller struct {
	Name    string
	Keys    map[string]int
	InvertY bool
}

type Config struct {
	Version           string
	Window            Window
	Volume            Volume
	Lang              string
	Controllers       map[string]*Controller
	DefaultController string
}

// loader walks parse results in order, tracking which section the last
// standard element opened so that property elements (invert_y, key) can
// attach to it.
type loader struct {
	config     *Config
	section    string
	controller *Controller
}

// FromString parses body and builds a Config from it. The first parse
// error other than a blank line aborts the load.
func FromString(body string) (*Config, error) {
	return fromDocument(yes.ParseString(body))
}

// FromFile reads and loads the configuration at path.
func FromFile(path string) (*Config, error) {
	doc, err := yes.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return fromDocument(doc)
}

func fromDocument(doc *yes.Document) (*Config, error) {
	l := &loader{
		config: &Config{
			Window:      Window{Width: 800, Height: 600},
			Volume:      Volume{Sfx: 1.0, Music: 1.0},
			Controllers: make(map[string]*Controller),
		},
	}

	for _, r := range doc.Results() {
		if r.Err != nil {
			// Blank lines are expected in hand-written documents.
			if r.Err.Code == yesparser.EolNoData {
				continue
			}
			return nil, r.Err
		}
		if err := l.process(r.Line, r.Data); err != nil {
			return nil, err
		}
	}

	l.commitController()
	return l.config, nil
}

func (l *loader) process(line int, data yesparser.ElementKind) error {
	switch t := data.(type) {
	case *yesparser.Standard:
		return l.consumeStandard(line, t)
	case *yesparser.Global:
		return l.consumeGlobal(line, &t.Data)
	default:
		// Comments carry nothing the config cares about.
		return nil
	}
}

func (l *loader) consumeGlobal(line int, element *yesparser.Element) error {
	if element.Text != "version" {
		return yesparser.CustomError(line, fmt.Sprintf("Unknown global %s!", element.Text))
	}
	if len(element.Args) != 1 {
		return yesparser.CustomError(line, "version expects exactly one value")
	}
	l.config.Version = element.Args[0].Val
	return nil
}

func (l *loader) consumeStandard(line int, std *yesparser.Standard) error {
	element := &std.Data
	switch l.updateSection(element.Text) {
	case "window":
		return l.handleWindowField(line, element)
	case "volume":
		return l.handleVolumeField(line, element)
	case "lang":
		return l.handleLangField(line, element)
	case "controls":
		return l.handleControlsSection(line, std)
	default:
		return yesparser.CustomError(line, fmt.Sprintf("Unexpected section %s!", element.Text))
	}
}

var sectionNames = map[string]bool{
	"window":   true,
	"volume":   true,
	"lang":     true,
	"controls": true,
}

// updateSection enters a new section when text names one; otherwise the
// element is a property of whatever section is current.
func (l *loader) updateSection(text string) string {
	if sectionNames[text] {
		l.section = text
	}
	return l.section
}

func (l *loader) handleWindowField(line int, element *yesparser.Element) error {
	for _, arg := range element.Args {
		// A bare "fullscreen" value implies fullscreen=true.
		if arg.Nameless() {
			if arg.Val == "fullscreen" {
				l.config.Window.Fullscreen = true
			}
			continue
		}
		switch arg.Key {
		case "width":
			n, err := strconv.Atoi(arg.Val)
			if err != nil {
				return yesparser.CustomError(line, err.Error())
			}
			l.config.Window.Width = n
		case "height":
			n, err := strconv.Atoi(arg.Val)
			if err != nil {
				return yesparser.CustomError(line, err.Error())
			}
			l.config.Window.Height = n
		default:
			return yesparser.CustomError(line, fmt.Sprintf("Unknown field %s for section window", arg.Key))
		}
	}
	return nil
}

func (l *loader) handleVolumeField(line int, element *yesparser.Element) error {
	for _, arg := range element.Args {
		if arg.Nameless() {
			continue
		}
		switch arg.Key {
		case "sfx":
			f, err := strconv.ParseFloat(arg.Val, 64)
			if err != nil {
				return yesparser.CustomError(line, err.Error())
			}
			l.config.Volume.Sfx = f
		case "music":
			f, err := strconv.ParseFloat(arg.Val, 64)
			if err != nil {
				return yesparser.CustomError(line, err.Error())
			}
			l.config.Volume.Music = f
		default:
			return yesparser.CustomError(line, fmt.Sprintf("Unknown field %s for section volume", arg.Key))
		}
	}
	return nil
}

func (l *loader) handleLangField(line int, element *yesparser.Element) error {
	if len(element.Args) != 1 {
		return yesparser.CustomError(line, fmt.Sprintf("Mismatch argument length %d for lang. Expected only 1!", len(element.Args)))
	}
	l.config.Lang = element.Args[0].Val
	return nil
}

func (l *loader) handleControlsSection(line int, std *yesparser.Standard) error {
	element := &std.Data
	switch element.Text {
	case "controls":
		return l.handleNewControls(line, std)
	case "invert_y":
		if l.controller == nil {
			return yesparser.CustomError(line, "Expected a controls entry before property invert_y.")
		}
		l.controller.InvertY = true
		return nil
	case "key":
		if l.controller == nil {
			return yesparser.CustomError(line, "Expected a controls entry before property key.")
		}
		args := element.Args
		if len(args) != 2 {
			return yesparser.CustomError(line, "key property expects the following format: `key <action> <code>`.")
		}
		// Positional arguments: action first, code second.
		if !args[0].Nameless() || !args[1].Nameless() {
			return yesparser.CustomError(line, "key property fields do not match expected format: `key <action> <code>`.")
		}
		code, err := strconv.Atoi(args[1].Val)
		if err != nil {
			return yesparser.CustomError(line, err.Error())
		}
		l.controller.Keys[args[0].Val] = code
		return nil
	default:
		return yesparser.CustomError(line, fmt.Sprintf("Unknown property %s for section controls", element.Text))
	}
}

func (l *loader) handleNewControls(line int, std *yesparser.Standard) error {
	element := &std.Data
	if len(element.Args) != 1 {
		return yesparser.CustomError(line, "A new controls section expects a name!")
	}

	arg := element.Args[0]
	if !arg.Nameless() && arg.Key != "name" {
		return yesparser.CustomError(line, fmt.Sprintf("Unknown field %s. Expected `name` or leave blank!", arg.Key))
	}

	l.commitController()
	l.controller = &Controller{
		Name: arg.Val,
		Keys: make(map[string]int),
	}

	// An @default attribute on the section marks the preferred controller.
	for _, attr := range std.Attrs {
		if attr.Text == "default" {
			l.config.DefaultController = arg.Val
		}
	}
	return nil
}

// commitController stages the controller being built into the config.
func (l *loader) commitController() {
	if l.controller == nil {
		return
	}
	l.config.Controllers[l.controller.Name] = l.controller
	l.controller = nil
}
