// Package adapter is the host-facing surface of the UDBF data source: the
// batched read call that fills host-supplied sample and status buffers from
// physical files, and a describe call for inspection.
//
// Each request performs its own open and parse and shares no state with any
// other request, so the host may fan requests out across parallel workers
// without coordination. The trade of repeated I/O for lock-free safety is
// deliberate: it also guarantees every read reflects the file's current
// physical size.
package adapter

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/meshmon/udbf/errs"
	"github.com/meshmon/udbf/file"
	"github.com/meshmon/udbf/internal/options"
	"github.com/meshmon/udbf/internal/pool"
	"github.com/meshmon/udbf/section"
)

// Request asks for one channel's sample range from one physical file.
//
// Data must hold exactly Count * element-size bytes for the channel's element
// type, and Status exactly Count bytes, both pre-initialized by the host
// (typically to zero). After a successful read, Status[i] == 1 marks a sample
// actually delivered into Data; entries left at 0 were not present in the
// file.
type Request struct {
	// Path is the physical file, plain or archived.
	Path string

	// Channel is the original on-disk channel name.
	Channel string

	// Offset is the file-relative index of the first requested sample.
	Offset int

	// Count is the number of requested samples.
	Count int

	// Data is the host-supplied destination buffer.
	Data []byte

	// Status is the host-supplied per-sample presence mask.
	Status []byte
}

// Service executes read batches. It is stateless apart from its logger and
// safe for concurrent use.
type Service struct {
	log *zap.Logger
}

// Option configures a Service.
type Option = options.Option[*Service]

// WithLogger sets the service logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return options.NoError(func(s *Service) {
		s.log = log
	})
}

// NewService creates a read Service.
func NewService(opts ...Option) (*Service, error) {
	s := &Service{log: zap.NewNop()}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

// Read executes a batch of requests in order, checking ctx before each file.
//
// Per-file degradation is the rule, not the exception: a file that is
// missing, unparseable, or lacking the requested channel contributes an
// all-absent status mask and the batch continues. Only two things fail the
// batch: cancellation, and a destination buffer whose size does not match the
// request, which is a host programming error.
func (s *Service) Read(ctx context.Context, reqs []Request) error {
	for i := range reqs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.read(&reqs[i]); err != nil {
			return fmt.Errorf("request %d (%s %q): %w", i, reqs[i].Path, reqs[i].Channel, err)
		}
	}

	return nil
}

func (s *Service) read(req *Request) error {
	r, err := file.Open(req.Path)
	if err != nil {
		// Missing or undecodable file: no data from this file. The catalog
		// build already warned about it once; at read time this is routine.
		s.log.Debug("read degraded: file unavailable",
			zap.String("path", req.Path), zap.Error(err))

		return nil
	}

	elemSize, err := elementSize(r, req.Channel)
	if err != nil {
		s.log.Debug("read degraded: channel unavailable",
			zap.String("path", req.Path), zap.String("channel", req.Channel),
			zap.Error(err))

		return nil
	}

	if len(req.Data) != req.Count*elemSize || len(req.Status) != req.Count {
		return errs.ErrInvalidBufferSize
	}

	buf := pool.GetChannelBuffer()
	defer pool.PutChannelBuffer(buf)

	buf.B, err = r.AppendChannelBytes(buf.B, req.Channel)
	if err != nil {
		// Unreachable after elementSize succeeded, but degrade all the same.
		s.log.Debug("read degraded: channel extraction failed",
			zap.String("path", req.Path), zap.String("channel", req.Channel),
			zap.Error(err))

		return nil
	}

	copied := file.SliceInto(buf.B, req.Offset, req.Count, elemSize, req.Data, req.Status)
	s.log.Debug("read complete",
		zap.String("path", req.Path), zap.String("channel", req.Channel),
		zap.Int("requested", req.Count), zap.Int("copied", copied))

	return nil
}

// elementSize resolves the element size of the named channel in r.
func elementSize(r *file.Reader, channel string) (int, error) {
	for _, v := range r.Variables() {
		if v.Name != channel {
			continue
		}
		if size := v.ElementSize(); size > 0 {
			return size, nil
		}

		return 0, errs.ErrUnspecifiedType
	}

	return 0, errs.ErrChannelNotFound
}

// Describe opens one file and returns its header and descriptor table. It is
// a convenience for hosts and tooling; failures here are real errors, not
// degraded reads.
func (s *Service) Describe(ctx context.Context, path string) (section.Header, []section.Variable, error) {
	if err := ctx.Err(); err != nil {
		return section.Header{}, nil, err
	}

	r, err := file.Open(path)
	if err != nil {
		return section.Header{}, nil, err
	}

	return r.Header(), r.Variables(), nil
}
