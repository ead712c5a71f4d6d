package meeting

import (
	"context"
	"errors"
	"fmt"

	"connectplatform/models"
	"connectplatform/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/chimesdkmeetings"
	"github.com/aws/aws-sdk-go-v2/service/chimesdkmeetings/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// meetingGone classifies Chime errors that mean the meeting id no longer
// resolves to a live meeting, as opposed to a real backend failure.
func meetingGone(err error) bool {
	var notFound *types.NotFoundException
	var badRequest *types.BadRequestException
	var forbidden *types.ForbiddenException
	return errors.As(err, &notFound) || errors.As(err, &badRequest) || errors.As(err, &forbidden)
}

func meetingInfoFrom(m *types.Meeting) *models.MeetingInfo {
	info := &models.MeetingInfo{
		MeetingID:         aws.ToString(m.MeetingId),
		ExternalMeetingID: aws.ToString(m.ExternalMeetingId),
		MediaRegion:       aws.ToString(m.MediaRegion),
	}
	if m.MediaPlacement != nil {
		info.MediaPlacement = models.MediaPlacement{
			AudioHostURL:     aws.ToString(m.MediaPlacement.AudioHostUrl),
			AudioFallbackURL: aws.ToString(m.MediaPlacement.AudioFallbackUrl),
			SignalingURL:     aws.ToString(m.MediaPlacement.SignalingUrl),
			TurnControlURL:   aws.ToString(m.MediaPlacement.TurnControlUrl),
		}
	}
	return info
}

// EnsureMeeting makes provisioning idempotent: a still-valid meeting linked
// to the session is returned as-is, anything else results in a fresh meeting
// persisted back onto the session.
func (s *DefaultMeetingService) EnsureMeeting(ctx context.Context, sessionID string) (*models.MeetingInfo, bool, error) {
	logger := utils.GetLogger()

	session, err := s.Sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, false, utils.InternalError("Error fetching session", err)
	}
	if session == nil {
		return nil, false, utils.NotFoundError("Session not found")
	}

	if session.ChimeMeetingID != "" {
		out, err := s.Chime.GetMeeting(ctx, &chimesdkmeetings.GetMeetingInput{
			MeetingId: aws.String(session.ChimeMeetingID),
		})
		if err == nil && out.Meeting != nil {
			return meetingInfoFrom(out.Meeting), false, nil
		}
		if err != nil && !meetingGone(err) {
			logger.Warn("Could not check existing meeting, provisioning a new one",
				zap.String("sessionID", sessionID), zap.Error(err))
		}
	}

	created, err := s.Chime.CreateMeeting(ctx, &chimesdkmeetings.CreateMeetingInput{
		ClientRequestToken: aws.String(uuid.New().String()),
		ExternalMeetingId:  aws.String(fmt.Sprintf("session-meeting-%s", sessionID)),
		MediaRegion:        aws.String(s.MediaRegion),
		MeetingFeatures: &types.MeetingFeaturesConfiguration{
			Audio: &types.AudioFeatures{
				EchoReduction: types.MeetingFeatureStatusAvailable,
			},
		},
	})
	if err != nil {
		return nil, false, utils.InternalError("Error creating video meeting", err)
	}

	info := meetingInfoFrom(created.Meeting)
	if err := s.Sessions.SetMeeting(ctx, sessionID, info.MeetingID, info); err != nil {
		return nil, false, utils.InternalError("Error linking meeting to session", err)
	}

	logger.Info("Meeting provisioned",
		zap.String("sessionID", sessionID),
		zap.String("meetingID", info.MeetingID))
	return info, true, nil
}

// Lookup reports the session's meeting without provisioning. A stored
// snapshot is served directly; a bare meeting id is refreshed from Chime and
// re-persisted.
func (s *DefaultMeetingService) Lookup(ctx context.Context, sessionID string) (*models.MeetingInfo, bool, error) {
	session, err := s.Sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, false, utils.InternalError("Error fetching session", err)
	}
	if session == nil {
		return nil, false, utils.NotFoundError("Session not found")
	}

	if session.Meeting != nil {
		return session.Meeting, true, nil
	}

	if session.ChimeMeetingID == "" {
		return nil, false, nil
	}

	out, err := s.Chime.GetMeeting(ctx, &chimesdkmeetings.GetMeetingInput{
		MeetingId: aws.String(session.ChimeMeetingID),
	})
	if err != nil {
		if meetingGone(err) {
			return nil, false, nil
		}
		return nil, false, utils.InternalError("Error getting meeting information", err)
	}

	info := meetingInfoFrom(out.Meeting)
	if err := s.Sessions.SetMeeting(ctx, sessionID, info.MeetingID, info); err != nil {
		return nil, false, utils.InternalError("Error refreshing meeting on session", err)
	}
	return info, true, nil
}

// AddAttendee joins an authorized user to the session's live meeting.
func (s *DefaultMeetingService) AddAttendee(ctx context.Context, sessionID, userID string) (*models.AttendeeInfo, string, error) {
	session, err := s.Sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, "", utils.InternalError("Error fetching session", err)
	}
	if session == nil {
		return nil, "", utils.NotFoundError("Session not found")
	}
	if userID != session.TeacherID && userID != session.StudentID {
		return nil, "", utils.ForbiddenError("User is not authorized to join this session")
	}
	if session.ChimeMeetingID == "" {
		return nil, "", utils.ValidationError("No active meeting for this session")
	}

	out, err := s.Chime.CreateAttendee(ctx, &chimesdkmeetings.CreateAttendeeInput{
		MeetingId:      aws.String(session.ChimeMeetingID),
		ExternalUserId: aws.String(userID),
	})
	if err != nil {
		return nil, "", utils.InternalError("Error joining video meeting", err)
	}

	userName := "Participant"
	if profile, err := s.Profiles.GetByID(ctx, userID); err == nil && profile != nil && profile.Name != "" {
		userName = profile.Name
	}

	attendee := &models.AttendeeInfo{
		AttendeeID:     aws.ToString(out.Attendee.AttendeeId),
		ExternalUserID: aws.ToString(out.Attendee.ExternalUserId),
		JoinToken:      aws.ToString(out.Attendee.JoinToken),
	}
	return attendee, userName, nil
}

// EndMeeting tears the meeting down. The session's meeting fields are
// cleared even when Chime reports the meeting already gone, so repeated
// calls converge on the same state.
func (s *DefaultMeetingService) EndMeeting(ctx context.Context, sessionID string) error {
	logger := utils.GetLogger()

	session, err := s.Sessions.GetByID(ctx, sessionID)
	if err != nil {
		return utils.InternalError("Error fetching session", err)
	}
	if session == nil {
		return utils.NotFoundError("Session not found")
	}
	if session.ChimeMeetingID == "" {
		return nil
	}

	_, err = s.Chime.DeleteMeeting(ctx, &chimesdkmeetings.DeleteMeetingInput{
		MeetingId: aws.String(session.ChimeMeetingID),
	})
	if err != nil && !meetingGone(err) {
		return utils.InternalError("Error ending meeting", err)
	}
	if err != nil {
		logger.Info("Meeting already ended, cleaning up session link",
			zap.String("sessionID", sessionID))
	}

	if err := s.Sessions.ClearMeeting(ctx, sessionID); err != nil {
		return utils.InternalError("Error clearing meeting on session", err)
	}
	return nil
}
