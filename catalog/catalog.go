// Package catalog builds the browsable channel catalog of a set of UDBF file
// sources: one descriptor per readable channel, with stable IDs, neutral
// element types, and the sample period reported by the representative file.
package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/meshmon/udbf/errs"
	"github.com/meshmon/udbf/file"
	"github.com/meshmon/udbf/format"
	"github.com/meshmon/udbf/internal/hash"
	"github.com/meshmon/udbf/internal/options"
)

// Channel is one catalog entry. It is recomputed on every build, never
// persisted.
type Channel struct {
	// ID is the stable 64-bit identity derived from the source id and the
	// raw channel name.
	ID uint64

	// Name is the sanitized catalog identifier.
	Name string

	// RawName is the original on-disk channel name; reads resolve against
	// this exact form.
	RawName string

	// Unit is the display unit string, passed through unchanged.
	Unit string

	// SourceID is the id of the owning file source.
	SourceID string

	// Groups are the source's catalog group labels.
	Groups []string

	// Element is the channel's neutral element type.
	Element format.ElementType

	// SamplePeriod is the duration of one sample step of the source's clock.
	SamplePeriod time.Duration
}

// FileLocator finds one representative file for a source. The host platform
// supplies its date-template matcher through this interface.
type FileLocator interface {
	// FindFirst returns the path of the first file matching the source rule,
	// or errs.ErrNoMatchingFile.
	FindFirst(ctx context.Context, src SourceConfig) (string, error)
}

// GlobLocator is a FileLocator over plain filepath globs. It honors the
// explicit override list first, then Directory/Pattern, returning the
// lexically first match so builds are deterministic.
type GlobLocator struct{}

var _ FileLocator = GlobLocator{}

func (GlobLocator) FindFirst(_ context.Context, src SourceConfig) (string, error) {
	if len(src.Files) > 0 {
		return src.Files[0], nil
	}

	matches, err := filepath.Glob(filepath.Join(src.Directory, src.Pattern))
	if err != nil {
		return "", fmt.Errorf("glob %s: %w", src.Pattern, err)
	}
	if len(matches) == 0 {
		return "", errs.ErrNoMatchingFile
	}
	sort.Strings(matches)

	return matches[0], nil
}

// Builder produces catalogs from a configuration. The zero value is not
// usable; construct with NewBuilder.
type Builder struct {
	locator FileLocator
	log     *zap.Logger
}

// Option configures a Builder.
type Option = options.Option[*Builder]

// WithLogger sets the builder's logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return options.NoError(func(b *Builder) {
		b.log = log
	})
}

// NewBuilder creates a Builder using the given locator.
func NewBuilder(locator FileLocator, opts ...Option) (*Builder, error) {
	b := &Builder{
		locator: locator,
		log:     zap.NewNop(),
	}
	if err := options.Apply(b, opts...); err != nil {
		return nil, err
	}

	return b, nil
}

// Build produces the channel catalog for cfg.
//
// Sources are visited in sorted id order. A source whose file cannot be
// located, opened, or parsed is logged and skipped; the build only fails on
// cancellation. Within a file, a channel is emitted only if its direction is
// input-capable, its element type is specified, and its sanitized name is a
// valid identifier.
func (b *Builder) Build(ctx context.Context, cfg *Config) ([]Channel, error) {
	ids := make([]string, 0, len(cfg.Sources))
	for id := range cfg.Sources {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var channels []Channel
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		src := cfg.Sources[id]

		path, err := b.locator.FindFirst(ctx, src)
		if err != nil {
			b.log.Warn("skipping file source: no file located",
				zap.String("source", id), zap.Error(err))
			continue
		}

		r, err := file.Open(path)
		if err != nil {
			b.log.Warn("skipping file source: unreadable representative file",
				zap.String("source", id), zap.String("path", path), zap.Error(err))
			continue
		}

		channels = append(channels, b.sourceChannels(id, src, r)...)
	}

	return channels, nil
}

func (b *Builder) sourceChannels(id string, src SourceConfig, r *file.Reader) []Channel {
	vars := r.Variables()
	period := r.SamplePeriod()

	channels := make([]Channel, 0, len(vars))
	for i := range vars {
		v := &vars[i]

		if !v.Direction.Readable() {
			continue
		}

		element := v.Type.Element()
		if element == format.ElementUnspecified {
			b.log.Debug("excluding channel without element representation",
				zap.String("source", id), zap.String("channel", v.Name),
				zap.Stringer("type", v.Type))
			continue
		}

		name, ok := SanitizeName(v.Name)
		if !ok {
			b.log.Debug("excluding channel with unsanitizable name",
				zap.String("source", id), zap.String("channel", v.Name))
			continue
		}

		channels = append(channels, Channel{
			ID:           hash.ID(id, v.Name),
			Name:         name,
			RawName:      v.Name,
			Unit:         v.Unit,
			SourceID:     id,
			Groups:       src.Groups,
			Element:      element,
			SamplePeriod: period,
		})
	}

	return channels
}
