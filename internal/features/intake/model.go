package intake

import (
	"fmt"
	"io"

	apperrors "github.com/xyz-asif/findme/pkg/errors"
)

const (
	MaxImages   = 10
	MaxFileSize = 5 << 20
)

var (
	ErrTooManyImages   = fmt.Errorf("%w: at most %d images", apperrors.ErrBadRequest, MaxImages)
	ErrIndexOutOfRange = fmt.Errorf("%w: image index out of range", apperrors.ErrNotFound)
)

// File is one selected file as the pipeline sees it.
type File interface {
	Name() string
	Size() int64
	ContentType() string
	Open() (io.ReadCloser, error)
}

// Preview is a decoded image ready to render or submit.
type Preview struct {
	Name        string `json:"name" example:"photo.jpg"`
	ContentType string `json:"contentType" example:"image/jpeg"`
	Size        int64  `json:"size" example:"20480"`
	DataURL     string `json:"dataUrl"`
}

// List is an ordered preview list capped at Max (MaxImages when zero).
// It is not safe for concurrent use.
type List struct {
	Max   int
	items []Preview
}

func (l *List) limit() int {
	if l.Max > 0 {
		return l.Max
	}
	return MaxImages
}

func (l *List) Count() int { return len(l.items) }

// Items returns a copy of the previews in display order.
func (l *List) Items() []Preview {
	return append([]Preview{}, l.items...)
}

// Append adds previews after the existing ones. Nothing is added if the
// result would exceed the cap.
func (l *List) Append(previews []Preview) error {
	if len(l.items)+len(previews) > l.limit() {
		return ErrTooManyImages
	}
	l.items = append(l.items, previews...)
	return nil
}

// Remove deletes the preview at index i.
func (l *List) Remove(i int) error {
	if i < 0 || i >= len(l.items) {
		return ErrIndexOutOfRange
	}
	l.items = append(l.items[:i:i], l.items[i+1:]...)
	return nil
}

// Clear drops every preview and returns how many there were.
func (l *List) Clear() int {
	n := len(l.items)
	l.items = nil
	return n
}
