// Package build orchestrates screenshot generation. It walks every
// configured platform and template, renders each scene, encodes it in the
// configured formats and reports what was written.
package build

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aellingwood/storeshots/internal/config"
	"github.com/aellingwood/storeshots/internal/copydeck"
	"github.com/aellingwood/storeshots/internal/logger"
	"github.com/aellingwood/storeshots/internal/output"
	"github.com/aellingwood/storeshots/internal/render"
	"github.com/aellingwood/storeshots/internal/scenes"
)

// rendererVersion is mixed into every cache fingerprint. Bump it whenever a
// scene's pixels change for the same inputs.
const rendererVersion = "1"

// CacheDir is the render cache location relative to the project root.
const CacheDir = ".storeshots/cache"

// BuildOptions controls the behaviour of a generation run.
type BuildOptions struct {
	ProjectRoot string
	Platforms   []string // platform names to render; empty means all
	Templates   []string // template names to render; empty means all
	Force       bool     // ignore the render cache
	Clean       bool     // empty the output directory first
	ConfigPath  string   // config file in use, protected from Clean
	Out         io.Writer
}

// BuildResult contains statistics about a completed run.
type BuildResult struct {
	Rendered     int
	Skipped      int
	FilesWritten int
	Duration     time.Duration
	OutputSize   int64
	OutputDir    string
	Files        []string // paths of all written files
}

// Builder renders screenshots for a configuration.
type Builder struct {
	config  *config.Config
	options BuildOptions
}

// NewBuilder creates a new Builder with the given configuration and options.
func NewBuilder(cfg *config.Config, opts BuildOptions) *Builder {
	return &Builder{
		config:  cfg,
		options: opts,
	}
}

// Build renders every selected template for every selected platform.
// Progress lines are written to the Out writer. Font loading problems
// degrade to built-in fonts; every other error aborts the run.
func (b *Builder) Build(ctx context.Context) (*BuildResult, error) {
	start := time.Now()
	result := &BuildResult{}

	projectRoot := b.options.ProjectRoot
	if projectRoot == "" {
		var err error
		projectRoot, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("determining project root: %w", err)
		}
	}
	out := b.options.Out
	if out == nil {
		out = io.Discard
	}
	if err := b.config.Validate(); err != nil {
		return nil, err
	}

	platforms, err := b.config.SelectPlatforms(b.options.Platforms)
	if err != nil {
		return nil, err
	}
	templates, err := selectTemplates(b.options.Templates)
	if err != nil {
		return nil, err
	}

	deck := copydeck.Default()
	if b.config.Copy != "" {
		deck, err = copydeck.Load(resolvePath(projectRoot, b.config.Copy))
		if err != nil {
			return nil, fmt.Errorf("loading copy deck: %w", err)
		}
	}

	formats := make([]string, 0, len(b.config.Formats))
	for _, f := range b.config.Formats {
		formats = append(formats, config.NormalizeFormat(f))
	}

	outputDir := resolvePath(projectRoot, b.config.Output)
	result.OutputDir = outputDir
	fontsDir := resolvePath(projectRoot, b.config.Fonts.Dir)
	if b.options.Clean {
		protected := []string{
			projectRoot,
			fontsDir,
			filepath.Join(projectRoot, CacheDir),
			resolvePath(projectRoot, b.config.Copy),
			resolvePath(projectRoot, b.options.ConfigPath),
		}
		if err := checkCleanTarget(outputDir, protected); err != nil {
			return nil, err
		}
		if err := CleanDir(outputDir); err != nil {
			return nil, fmt.Errorf("cleaning output directory: %w", err)
		}
	}

	loader := render.NewFontLoader(fontsDir, b.config.Fonts.Files())

	var cache *output.Cache
	if b.config.Cache && !b.options.Force {
		cache, err = output.NewCache(filepath.Join(projectRoot, CacheDir))
		if err != nil {
			logger.L().Warn("render cache unavailable", "error", err)
			cache = nil
		}
	}
	shared := []string{
		outputDir,
		deck.Fingerprint(),
		loader.Fingerprint(),
		strings.Join(formats, ","),
		strconv.Itoa(b.config.Quality),
		rendererVersion,
	}

	var (
		mu    sync.Mutex
		upper = cases.Upper(language.English)
	)
	printf := func(format string, args ...any) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(out, format, args...)
	}

	fmt.Fprintln(out, "Generating App Store screenshots for all platforms...")

	for _, p := range platforms {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		platformDir := filepath.Join(outputDir, p.Name)
		if err := os.MkdirAll(platformDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", platformDir, err)
		}
		fmt.Fprintf(out, "\n%s (%s):\n", upper.String(p.Name), p.Size())

		frame := scenes.NewFrame(p.Width, p.Height)
		jobs := make([]job, 0, len(templates))
		for _, t := range templates {
			key := p.Name + "/" + t.Name
			fp := output.Fingerprint(append([]string{p.Name, p.Size(), t.Name}, shared...)...)

			jobs = append(jobs, job{
				platform: p.Name,
				template: t.Name,
				run: func() error {
					printf("  Creating %s...\n", t.Filename(output.Extension(formats[0])))

					files := make([]string, 0, len(formats))
					for _, format := range formats {
						files = append(files, TargetPath(outputDir, p, t, format))
					}

					if cache != nil {
						if cache.Lookup(key, fp, files) {
							logger.L().Debug("cache hit", "screenshot", key)
							mu.Lock()
							result.Skipped++
							result.Files = append(result.Files, files...)
							mu.Unlock()
							return nil
						}
					}

					began := time.Now()
					// Faces keep per-glyph caches and are not safe to share
					// between goroutines, so every job gets its own set.
					img := t.Render(frame, loader.Load(frame.Scale), deck)

					for i, format := range formats {
						if err := output.Encode(img, files[i], format, b.config.Quality); err != nil {
							return fmt.Errorf("writing %s: %w", files[i], err)
						}
					}
					logger.L().Debug("rendered screenshot", "screenshot", key, "elapsed", time.Since(began))

					if cache != nil {
						if err := cache.Store(key, fp, files); err != nil {
							logger.L().Warn("updating render cache", "screenshot", key, "error", err)
						}
					}

					mu.Lock()
					result.Rendered++
					result.FilesWritten += len(files)
					result.Files = append(result.Files, files...)
					mu.Unlock()
					return nil
				},
			})
		}

		if b.config.Jobs > 1 {
			err = runParallel(ctx, jobs, b.config.Jobs)
		} else {
			err = runSequential(ctx, jobs)
		}
		if err != nil {
			return nil, err
		}
	}

	fmt.Fprintf(out, "\nDone! Screenshots saved to: %s\n", outputDir)
	width := 8
	for _, p := range platforms {
		width = max(width, len(p.Name)+1)
	}
	for _, p := range platforms {
		fmt.Fprintf(out, "  - %-*s (%s)\n", width, p.Name+"/", p.Size())
	}

	if size, err := DirSize(outputDir); err == nil {
		result.OutputSize = size
	}
	result.Duration = time.Since(start)
	return result, nil
}

// selectTemplates returns the templates named in names, in output order.
// An empty list selects every template.
func selectTemplates(names []string) ([]scenes.Template, error) {
	all := scenes.All()
	if len(names) == 0 {
		return all, nil
	}
	for _, n := range names {
		if _, err := scenes.Lookup(n); err != nil {
			return nil, err
		}
	}
	var out []scenes.Template
	for _, t := range all {
		if slices.Contains(names, t.Name) {
			out = append(out, t)
		}
	}
	return out, nil
}

// TargetPath returns the file a template is written to for a platform.
func TargetPath(outputDir string, p config.Platform, t scenes.Template, format string) string {
	return filepath.Join(outputDir, p.Name, t.Filename(output.Extension(config.NormalizeFormat(format))))
}
