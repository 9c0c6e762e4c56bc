package repositories

import (
	"complaint-triage/domain"
	"context"
	"fmt"
	"log/slog"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
)

const (
	idField       = "_id"
	textField     = "text"
	categoryField = "category"
)

// ComplaintIndex keeps a full-text index of complaint texts for operator lookup.
type ComplaintIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewComplaintIndex(writer *bluge.Writer, log *slog.Logger) *ComplaintIndex {
	return &ComplaintIndex{writer: writer, log: log}
}

func (i *ComplaintIndex) Index(complaint domain.Complaint) error {
	doc := bluge.NewDocument(complaint.ID.String()).
		AddField(bluge.NewTextField(textField, complaint.Text)).
		AddField(bluge.NewKeywordField(categoryField, string(complaint.Category)).StoreValue())
	if err := i.writer.Update(doc.ID(), doc); err != nil {
		return fmt.Errorf("index complaint %s: %w", complaint.ID, err)
	}
	return nil
}

// Search returns the ids of the best matching complaints.
func (i *ComplaintIndex) Search(ctx context.Context, query string, limit int) ([]uuid.UUID, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("open index reader: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	request := bluge.NewTopNSearch(limit, bluge.NewMatchQuery(query).SetField(textField))
	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	var ids []uuid.UUID
	match, err := iterator.Next()
	for err == nil && match != nil {
		var visitErr error
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field != idField {
				return true
			}
			var id uuid.UUID
			id, visitErr = uuid.ParseBytes(value)
			if visitErr == nil {
				ids = append(ids, id)
			}
			return false
		})
		if err == nil && visitErr != nil {
			i.log.Warn("Skipping index entry with invalid id", "error", visitErr)
		}
		if err != nil {
			break
		}
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, fmt.Errorf("iterate search results: %w", err)
	}
	return ids, nil
}
