package profile

import "connectplatform/models"

// profile fields that map onto the typed schema; everything else a client
// sends lands in the extension map.
var knownProfileKeys = map[string]bool{
	"user_id":      true,
	"role":         true,
	"name":         true,
	"email":        true,
	"bio":          true,
	"photo_url":    true,
	"topics":       true,
	"profile_data": true,
	"created_at":   true,
	"updated_at":   true,
	"extra":        true,
}

// FromRequest builds a typed Profile from a loosely shaped request body.
// Clients send either a flat document or the profile fields nested under
// "profile_data"; unknown fields are kept in the extension map instead of
// being merged into the record shape.
func FromRequest(raw map[string]any) models.Profile {
	p := models.Profile{
		UserID: stringField(raw, "user_id"),
		Role:   stringField(raw, "role"),
	}

	fields := raw
	if nested, ok := raw["profile_data"].(map[string]any); ok {
		fields = nested
	}

	p.Name = stringField(fields, "name")
	p.Email = stringField(fields, "email")
	p.Bio = stringField(fields, "bio")
	p.PhotoURL = stringField(fields, "photo_url")
	p.Topics = stringSliceField(fields, "topics")

	for key, value := range fields {
		if knownProfileKeys[key] {
			continue
		}
		if p.Extra == nil {
			p.Extra = make(map[string]any)
		}
		p.Extra[key] = value
	}
	return p
}

func stringField(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func stringSliceField(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
