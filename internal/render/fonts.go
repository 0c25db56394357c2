package render

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/aellingwood/storeshots/internal/logger"
)

// Base point sizes for each role at scale 1.0.
const (
	titleSize    = 72
	subtitleSize = 36
	labelSize    = 24
	stepSize     = 48
	numSize      = 36
)

// FontFiles names the font file used for each text role, relative to the
// font directory.
type FontFiles struct {
	Title    string
	Subtitle string
	Label    string
	Step     string
	Num      string
}

// DefaultFontFiles returns the font files the scenes are designed around.
func DefaultFontFiles() FontFiles {
	return FontFiles{
		Title:    "InstrumentSans-Bold.ttf",
		Subtitle: "InstrumentSans-Regular.ttf",
		Label:    "GeistMono-Regular.ttf",
		Step:     "InstrumentSans-Bold.ttf",
		Num:      "GeistMono-Bold.ttf",
	}
}

// FontSet holds one face per text role at a particular scale.
type FontSet struct {
	Title    font.Face
	Subtitle font.Face
	Label    font.Face
	Step     font.Face
	Num      font.Face

	// Fallback is true when the configured fonts could not be loaded and
	// the built-in Go fonts were used instead.
	Fallback bool
}

// roleFonts is the parsed font for each role.
type roleFonts struct {
	title, subtitle, label, step, num *truetype.Font
}

// FontLoader loads the configured fonts once and hands out scaled faces.
// It is safe for concurrent use.
type FontLoader struct {
	dir   string
	files FontFiles

	mu       sync.Mutex
	loaded   bool
	fonts    roleFonts
	fallback bool
	err      error
}

// NewFontLoader returns a loader reading files from dir.
func NewFontLoader(dir string, files FontFiles) *FontLoader {
	return &FontLoader{dir: dir, files: files}
}

// Load returns faces for every role scaled by scale. If any configured font
// is missing or unreadable, all roles fall back to the built-in Go fonts and
// a warning is logged once.
func (l *FontLoader) Load(scale float64) *FontSet {
	fonts, fallback := l.resolve()
	return &FontSet{
		Title:    newFace(fonts.title, titleSize, scale),
		Subtitle: newFace(fonts.subtitle, subtitleSize, scale),
		Label:    newFace(fonts.label, labelSize, scale),
		Step:     newFace(fonts.step, stepSize, scale),
		Num:      newFace(fonts.num, numSize, scale),
		Fallback: fallback,
	}
}

// Err returns the reason the loader fell back to built-in fonts, or nil.
func (l *FontLoader) Err() error {
	l.resolve()
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Fingerprint identifies the fonts the loader would use. It hashes file
// contents so replacing a font changes the result.
func (l *FontLoader) Fingerprint() string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\n", l.dir)
	for _, name := range l.names() {
		data, err := os.ReadFile(filepath.Join(l.dir, name))
		if err != nil {
			fmt.Fprintf(h, "%s:missing\n", name)
			continue
		}
		fmt.Fprintf(h, "%s:%d\n", name, len(data))
		h.Write(data)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func (l *FontLoader) names() []string {
	return []string{l.files.Title, l.files.Subtitle, l.files.Label, l.files.Step, l.files.Num}
}

func (l *FontLoader) resolve() (roleFonts, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.loaded {
		return l.fonts, l.fallback
	}
	l.loaded = true

	fonts, err := l.parseAll()
	if err != nil {
		l.err = err
		l.fallback = true
		l.fonts = builtinFonts()
		logger.L().Warn("fonts unavailable, using built-in fonts", "dir", l.dir, "error", err)
		return l.fonts, true
	}
	l.fonts = fonts
	return fonts, false
}

func (l *FontLoader) parseAll() (roleFonts, error) {
	cache := make(map[string]*truetype.Font)
	parse := func(name string) (*truetype.Font, error) {
		path := filepath.Join(l.dir, name)
		if f, ok := cache[path]; ok {
			return f, nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading font %s: %w", path, err)
		}
		f, err := truetype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing font %s: %w", path, err)
		}
		cache[path] = f
		return f, nil
	}

	var rf roleFonts
	targets := []struct {
		name string
		dst  **truetype.Font
	}{
		{l.files.Title, &rf.title},
		{l.files.Subtitle, &rf.subtitle},
		{l.files.Label, &rf.label},
		{l.files.Step, &rf.step},
		{l.files.Num, &rf.num},
	}
	for _, t := range targets {
		f, err := parse(t.name)
		if err != nil {
			return roleFonts{}, err
		}
		*t.dst = f
	}
	return rf, nil
}

var (
	builtinOnce sync.Once
	builtin     roleFonts
)

// builtinFonts returns the Go fonts shipped with golang.org/x/image. They
// are embedded in the binary so parsing cannot fail.
func builtinFonts() roleFonts {
	builtinOnce.Do(func() {
		bold := mustParse(gobold.TTF)
		builtin = roleFonts{
			title:    bold,
			subtitle: mustParse(goregular.TTF),
			label:    mustParse(gomono.TTF),
			step:     bold,
			num:      mustParse(gomonobold.TTF),
		}
	})
	return builtin
}

func mustParse(ttf []byte) *truetype.Font {
	f, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("render: parsing built-in font: %v", err))
	}
	return f
}

func newFace(f *truetype.Font, base int, scale float64) font.Face {
	size := max(int(float64(base)*scale), 1)
	return truetype.NewFace(f, &truetype.Options{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
