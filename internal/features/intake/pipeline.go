// Package intake screens and decodes batches of selected image files into
// previews.
package intake

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xyz-asif/findme/internal/pkg/logger"
	"github.com/xyz-asif/findme/internal/pkg/notify"
	"github.com/xyz-asif/findme/internal/pkg/taskgroup"
)

// Target is where a decoded batch lands. Append must be atomic with its
// ceiling check.
type Target interface {
	Count() int
	Append(previews []Preview) error
}

// Outcome summarizes what one batch did.
type Outcome struct {
	Added    int  `json:"added"`
	Rejected int  `json:"rejected"`
	TooMany  bool `json:"tooMany"`
	Failed   bool `json:"failed"`
}

type Pipeline struct {
	MaxImages   int
	MaxFileSize int64
	// DecodeLimit caps concurrent decodes; zero means one task per file.
	DecodeLimit int

	log *logger.Logger
}

func NewPipeline() *Pipeline {
	return &Pipeline{
		MaxImages:   MaxImages,
		MaxFileSize: MaxFileSize,
		log:         logger.Default().Named("intake"),
	}
}

func tooManyNotice(max int) notify.Notice {
	return notify.Failure("Too many images", fmt.Sprintf("You can upload a maximum of %d images", max))
}

// Process runs one batch against target and reports the result through sink.
func (p *Pipeline) Process(ctx context.Context, target Target, batch []File, sink notify.Sink) Outcome {
	var out Outcome
	if len(batch) == 0 {
		return out
	}

	if target.Count()+len(batch) > p.MaxImages {
		sink.Notify(tooManyNotice(p.MaxImages))
		out.TooMany = true
		return out
	}

	valid := make([]File, 0, len(batch))
	for _, f := range batch {
		if p.accepts(f) {
			valid = append(valid, f)
		} else {
			out.Rejected++
		}
	}
	if out.Rejected > 0 {
		sink.Notify(notify.Failure("Invalid files",
			fmt.Sprintf("%d file(s) were rejected. Please upload images smaller than 5MB.", out.Rejected)))
	}
	if len(valid) == 0 {
		return out
	}

	previews, err := taskgroup.RunLimit(ctx, p.DecodeLimit, len(valid), func(ctx context.Context, i int) (Preview, error) {
		return p.decode(ctx, valid[i])
	})
	if err != nil {
		p.log.Warn("decode batch of %d failed: %v", len(valid), err)
		sink.Notify(notify.Failure("Error", "Failed to read some images"))
		out.Failed = true
		return out
	}

	// another batch may have landed while this one decoded
	if err := target.Append(previews); err != nil {
		sink.Notify(tooManyNotice(p.MaxImages))
		out.TooMany = true
		return out
	}

	out.Added = len(previews)
	sink.Notify(notify.Info("Images added", fmt.Sprintf("%d image(s) added successfully", out.Added)))
	return out
}

func (p *Pipeline) accepts(f File) bool {
	return f.Size() <= p.MaxFileSize && strings.HasPrefix(f.ContentType(), "image/")
}

func (p *Pipeline) decode(ctx context.Context, f File) (Preview, error) {
	if err := ctx.Err(); err != nil {
		return Preview{}, err
	}
	rc, err := f.Open()
	if err != nil {
		return Preview{}, fmt.Errorf("open %s: %w", f.Name(), err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, p.MaxFileSize+1))
	if err != nil {
		return Preview{}, fmt.Errorf("read %s: %w", f.Name(), err)
	}
	if int64(len(data)) > p.MaxFileSize {
		return Preview{}, fmt.Errorf("read %s: larger than declared", f.Name())
	}

	return Preview{
		Name:        f.Name(),
		ContentType: f.ContentType(),
		Size:        int64(len(data)),
		DataURL:     EncodeDataURL(f.ContentType(), data),
	}, nil
}
