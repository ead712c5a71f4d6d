package meeting

import (
	"context"

	profileRepo "connectplatform/database/repository/profile"
	sessionRepo "connectplatform/database/repository/session"
	"connectplatform/models"

	"github.com/aws/aws-sdk-go-v2/service/chimesdkmeetings"
)

// ChimeAPI is the subset of the Chime SDK meetings client the service uses.
// The concrete *chimesdkmeetings.Client satisfies it.
type ChimeAPI interface {
	CreateMeeting(ctx context.Context, params *chimesdkmeetings.CreateMeetingInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.CreateMeetingOutput, error)
	GetMeeting(ctx context.Context, params *chimesdkmeetings.GetMeetingInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.GetMeetingOutput, error)
	DeleteMeeting(ctx context.Context, params *chimesdkmeetings.DeleteMeetingInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.DeleteMeetingOutput, error)
	CreateAttendee(ctx context.Context, params *chimesdkmeetings.CreateAttendeeInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.CreateAttendeeOutput, error)
}

// MeetingService provisions and tears down video meetings for sessions.
type MeetingService interface {
	// EnsureMeeting returns the session's live meeting, provisioning one if
	// none exists or the stored one is gone. The second return reports
	// whether a new meeting was created.
	EnsureMeeting(ctx context.Context, sessionID string) (*models.MeetingInfo, bool, error)
	// Lookup returns the session's meeting and whether one is active; a
	// session without a meeting is not an error.
	Lookup(ctx context.Context, sessionID string) (*models.MeetingInfo, bool, error)
	// AddAttendee joins a user to the session's meeting. Only the session's
	// teacher or student may join; the display name comes from the profile.
	AddAttendee(ctx context.Context, sessionID, userID string) (*models.AttendeeInfo, string, error)
	// EndMeeting deletes the meeting and unlinks it from the session.
	// Ending a session with no (or an already gone) meeting is a no-op.
	EndMeeting(ctx context.Context, sessionID string) error
}

// DefaultMeetingService is the production MeetingService.
type DefaultMeetingService struct {
	Chime       ChimeAPI
	Sessions    sessionRepo.SessionRepository
	Profiles    profileRepo.ProfileRepository
	MediaRegion string
}
