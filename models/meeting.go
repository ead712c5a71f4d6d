package models

// MediaPlacement holds the connection endpoints Chime assigns to a meeting.
type MediaPlacement struct {
	AudioHostURL     string `bson:"audio_host_url,omitempty" json:"audio_host_url,omitempty"`
	AudioFallbackURL string `bson:"audio_fallback_url,omitempty" json:"audio_fallback_url,omitempty"`
	SignalingURL     string `bson:"signaling_url,omitempty" json:"signaling_url,omitempty"`
	TurnControlURL   string `bson:"turn_control_url,omitempty" json:"turn_control_url,omitempty"`
}

// MeetingInfo is the meeting snapshot persisted on the owning session.
type MeetingInfo struct {
	MeetingID         string         `bson:"meeting_id" json:"meeting_id"`
	ExternalMeetingID string         `bson:"external_meeting_id" json:"external_meeting_id"`
	MediaRegion       string         `bson:"media_region" json:"media_region"`
	MediaPlacement    MediaPlacement `bson:"media_placement" json:"media_placement"`
}

// AttendeeInfo is returned when a user joins a meeting.
type AttendeeInfo struct {
	AttendeeID     string `json:"attendee_id"`
	ExternalUserID string `json:"external_user_id"`
	JoinToken      string `json:"join_token"`
}
