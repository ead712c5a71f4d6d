package session

import (
	"time"

	"connectplatform/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BuildUpdate translates a partial session update into a single Mongo update
// document. Note and document appends go through $push; status and
// recording_url replacements through $set, so any combination still reaches
// the store as one call.
func BuildUpdate(input models.SessionUpdateInput, now time.Time) bson.M {
	push := bson.M{}
	set := bson.M{}

	author := input.AuthorID
	if author == "" {
		author = "unknown"
	}

	if input.Note != "" {
		push["notes"] = models.SessionNote{
			Text:      input.Note,
			AuthorID:  author,
			Timestamp: now,
		}
	}
	if input.Document != "" {
		name := input.DocumentName
		if name == "" {
			name = "Untitled"
		}
		push["shared_documents"] = models.SessionDocument{
			URL:       input.Document,
			Name:      name,
			AuthorID:  author,
			Timestamp: now,
		}
	}
	if input.RecordingURL != nil {
		set["recording_url"] = *input.RecordingURL
	}
	if input.Status != nil {
		set["status"] = *input.Status
	}

	update := bson.M{}
	if len(push) > 0 {
		update["$push"] = push
	}
	if len(set) > 0 {
		update["$set"] = set
	}
	return update
}
