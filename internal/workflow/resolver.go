package workflow

import (
	"context"
	"strings"

	"github.com/quaywork/warehousectl/internal/shipstation"
)

// TagSource is the slice of the order store client the resolver needs.
type TagSource interface {
	ListTags(ctx context.Context) ([]shipstation.Tag, error)
}

// ResolveTag maps a tag display name to its numeric identifier,
// case-insensitively, against a fresh fetch of the catalog.
//
// found is false when no tag with that name exists; that is not an error.
// The tag must be created upstream first, so callers report it rather than
// retry. err is non-nil only when the catalog fetch itself failed.
func ResolveTag(ctx context.Context, src TagSource, name string) (id int64, found bool, err error) {
	tags, err := src.ListTags(ctx)
	if err != nil {
		return 0, false, err
	}
	for _, tag := range tags {
		if strings.EqualFold(tag.Name, name) {
			return tag.TagID, true, nil
		}
	}
	return 0, false, nil
}
