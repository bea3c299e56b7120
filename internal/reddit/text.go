package reddit

import "fmt"

// TextField names the post field the analysis reads.
type TextField string

const (
	FieldTitle   TextField = "title"
	FieldContent TextField = "content"
)

// MissingFieldError reports that no post carries the requested field.
type MissingFieldError struct {
	Field TextField
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field '%s'", e.Field)
}

// Texts extracts the chosen field of every post. Posts without the field
// contribute a nil entry so callers keep positional alignment.
func Texts(posts []Post, field TextField) ([]*string, error) {
	out := make([]*string, len(posts))
	for i := range posts {
		switch field {
		case FieldTitle:
			out[i] = posts[i].Title
		case FieldContent:
			out[i] = &posts[i].Content
		default:
			return nil, &MissingFieldError{Field: field}
		}
	}
	return out, nil
}

// PreferredField picks titles when any post has one and falls back to the
// body text otherwise.
func PreferredField(posts []Post) TextField {
	for _, p := range posts {
		if p.Title != nil {
			return FieldTitle
		}
	}
	return FieldContent
}
