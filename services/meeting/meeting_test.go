package meeting

import (
	"context"
	"testing"

	"connectplatform/models"
	"connectplatform/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/chimesdkmeetings"
	"github.com/aws/aws-sdk-go-v2/service/chimesdkmeetings/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// MockSessionRepo is a mock implementation of sessionRepo.SessionRepository
type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Insert(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepo) GetByID(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionRepo) FindByBookingID(ctx context.Context, bookingID string) (*models.Session, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionRepo) ApplyUpdate(ctx context.Context, sessionID string, update bson.M) (*models.Session, error) {
	args := m.Called(ctx, sessionID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionRepo) SetMeeting(ctx context.Context, sessionID, meetingID string, info *models.MeetingInfo) error {
	args := m.Called(ctx, sessionID, meetingID, info)
	return args.Error(0)
}

func (m *MockSessionRepo) ClearMeeting(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// MockProfileRepo is a mock implementation of profileRepo.ProfileRepository
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByID(ctx context.Context, userID string) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepo) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepo) ListTeachers(ctx context.Context) ([]models.Profile, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Profile), args.Error(1)
}

// fakeChime is a hand-rolled ChimeAPI double. Calls are recorded; responses
// and errors are programmable per method.
type fakeChime struct {
	createCalls   int
	getErr        error
	deleteErr     error
	deleteCalls   int
	attendeeCalls int
}

func (f *fakeChime) CreateMeeting(ctx context.Context, params *chimesdkmeetings.CreateMeetingInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.CreateMeetingOutput, error) {
	f.createCalls++
	return &chimesdkmeetings.CreateMeetingOutput{
		Meeting: &types.Meeting{
			MeetingId:         aws.String("meeting-new"),
			ExternalMeetingId: params.ExternalMeetingId,
			MediaRegion:       params.MediaRegion,
			MediaPlacement: &types.MediaPlacement{
				AudioHostUrl: aws.String("audio.example.com"),
				SignalingUrl: aws.String("wss://signal.example.com"),
			},
		},
	}, nil
}

func (f *fakeChime) GetMeeting(ctx context.Context, params *chimesdkmeetings.GetMeetingInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.GetMeetingOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &chimesdkmeetings.GetMeetingOutput{
		Meeting: &types.Meeting{
			MeetingId:   params.MeetingId,
			MediaRegion: aws.String("us-east-1"),
		},
	}, nil
}

func (f *fakeChime) DeleteMeeting(ctx context.Context, params *chimesdkmeetings.DeleteMeetingInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.DeleteMeetingOutput, error) {
	f.deleteCalls++
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &chimesdkmeetings.DeleteMeetingOutput{}, nil
}

func (f *fakeChime) CreateAttendee(ctx context.Context, params *chimesdkmeetings.CreateAttendeeInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.CreateAttendeeOutput, error) {
	f.attendeeCalls++
	return &chimesdkmeetings.CreateAttendeeOutput{
		Attendee: &types.Attendee{
			AttendeeId:     aws.String("attendee-1"),
			ExternalUserId: params.ExternalUserId,
			JoinToken:      aws.String("token-abc"),
		},
	}, nil
}

func sessionWithMeeting() *models.Session {
	return &models.Session{
		SessionID:      "session-1",
		TeacherID:      "teacher-1",
		StudentID:      "student-1",
		ChimeMeetingID: "meeting-live",
	}
}

func TestEnsureMeeting_reusesLiveMeeting(t *testing.T) {
	sessions := &MockSessionRepo{}
	chime := &fakeChime{}
	svc := &DefaultMeetingService{Chime: chime, Sessions: sessions, MediaRegion: "us-east-1"}

	sessions.On("GetByID", mock.Anything, "session-1").Return(sessionWithMeeting(), nil)

	info, created, err := svc.EnsureMeeting(context.Background(), "session-1")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "meeting-live", info.MeetingID)
	assert.Zero(t, chime.createCalls)
}

func TestEnsureMeeting_provisionsWhenStoredMeetingGone(t *testing.T) {
	sessions := &MockSessionRepo{}
	chime := &fakeChime{getErr: &types.NotFoundException{}}
	svc := &DefaultMeetingService{Chime: chime, Sessions: sessions, MediaRegion: "us-east-1"}

	sessions.On("GetByID", mock.Anything, "session-1").Return(sessionWithMeeting(), nil)
	sessions.On("SetMeeting", mock.Anything, "session-1", "meeting-new", mock.AnythingOfType("*models.MeetingInfo")).Return(nil)

	info, created, err := svc.EnsureMeeting(context.Background(), "session-1")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "meeting-new", info.MeetingID)
	assert.Equal(t, "session-meeting-session-1", info.ExternalMeetingID)
	assert.Equal(t, 1, chime.createCalls)
	sessions.AssertExpectations(t)
}

func TestEnsureMeeting_sessionMissing(t *testing.T) {
	sessions := &MockSessionRepo{}
	svc := &DefaultMeetingService{Chime: &fakeChime{}, Sessions: sessions}

	sessions.On("GetByID", mock.Anything, "session-missing").Return(nil, nil)

	_, _, err := svc.EnsureMeeting(context.Background(), "session-missing")
	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, utils.CodeNotFound, appErr.Code)
}

func TestLookup_sessionWithoutMeeting(t *testing.T) {
	sessions := &MockSessionRepo{}
	svc := &DefaultMeetingService{Chime: &fakeChime{}, Sessions: sessions}

	sessions.On("GetByID", mock.Anything, "session-1").Return(&models.Session{SessionID: "session-1"}, nil)

	info, active, err := svc.Lookup(context.Background(), "session-1")
	require.NoError(t, err)
	assert.False(t, active)
	assert.Nil(t, info)
}

func TestLookup_storedSnapshotServedDirectly(t *testing.T) {
	sessions := &MockSessionRepo{}
	chime := &fakeChime{getErr: &types.NotFoundException{}}
	svc := &DefaultMeetingService{Chime: chime, Sessions: sessions}

	stored := sessionWithMeeting()
	stored.Meeting = &models.MeetingInfo{MeetingID: "meeting-live"}
	sessions.On("GetByID", mock.Anything, "session-1").Return(stored, nil)

	info, active, err := svc.Lookup(context.Background(), "session-1")
	require.NoError(t, err)
	assert.True(t, active)
	assert.Equal(t, "meeting-live", info.MeetingID)
}

func TestAddAttendee_outsiderForbidden(t *testing.T) {
	sessions := &MockSessionRepo{}
	chime := &fakeChime{}
	svc := &DefaultMeetingService{Chime: chime, Sessions: sessions, Profiles: &MockProfileRepo{}}

	sessions.On("GetByID", mock.Anything, "session-1").Return(sessionWithMeeting(), nil)

	_, _, err := svc.AddAttendee(context.Background(), "session-1", "stranger-9")
	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, utils.CodeForbidden, appErr.Code)
	assert.Zero(t, chime.attendeeCalls)
}

func TestAddAttendee_participantJoinsWithProfileName(t *testing.T) {
	sessions := &MockSessionRepo{}
	profiles := &MockProfileRepo{}
	svc := &DefaultMeetingService{Chime: &fakeChime{}, Sessions: sessions, Profiles: profiles}

	sessions.On("GetByID", mock.Anything, "session-1").Return(sessionWithMeeting(), nil)
	profiles.On("GetByID", mock.Anything, "student-1").Return(&models.Profile{UserID: "student-1", Name: "Dev"}, nil)

	attendee, name, err := svc.AddAttendee(context.Background(), "session-1", "student-1")
	require.NoError(t, err)
	assert.Equal(t, "Dev", name)
	assert.Equal(t, "attendee-1", attendee.AttendeeID)
	assert.Equal(t, "token-abc", attendee.JoinToken)
}

func TestAddAttendee_fallbackNameWithoutProfile(t *testing.T) {
	sessions := &MockSessionRepo{}
	profiles := &MockProfileRepo{}
	svc := &DefaultMeetingService{Chime: &fakeChime{}, Sessions: sessions, Profiles: profiles}

	sessions.On("GetByID", mock.Anything, "session-1").Return(sessionWithMeeting(), nil)
	profiles.On("GetByID", mock.Anything, "teacher-1").Return(nil, nil)

	_, name, err := svc.AddAttendee(context.Background(), "session-1", "teacher-1")
	require.NoError(t, err)
	assert.Equal(t, "Participant", name)
}

func TestAddAttendee_noMeetingYet(t *testing.T) {
	sessions := &MockSessionRepo{}
	svc := &DefaultMeetingService{Chime: &fakeChime{}, Sessions: sessions}

	sessions.On("GetByID", mock.Anything, "session-1").Return(&models.Session{
		SessionID: "session-1",
		TeacherID: "teacher-1",
		StudentID: "student-1",
	}, nil)

	_, _, err := svc.AddAttendee(context.Background(), "session-1", "student-1")
	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, utils.CodeValidation, appErr.Code)
}

func TestEndMeeting_noMeetingIsNoOp(t *testing.T) {
	sessions := &MockSessionRepo{}
	chime := &fakeChime{}
	svc := &DefaultMeetingService{Chime: chime, Sessions: sessions}

	sessions.On("GetByID", mock.Anything, "session-1").Return(&models.Session{SessionID: "session-1"}, nil)

	err := svc.EndMeeting(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Zero(t, chime.deleteCalls)
	sessions.AssertNotCalled(t, "ClearMeeting", mock.Anything, mock.Anything)
}

func TestEndMeeting_alreadyGoneStillCleansUp(t *testing.T) {
	sessions := &MockSessionRepo{}
	chime := &fakeChime{deleteErr: &types.NotFoundException{}}
	svc := &DefaultMeetingService{Chime: chime, Sessions: sessions}

	sessions.On("GetByID", mock.Anything, "session-1").Return(sessionWithMeeting(), nil)
	sessions.On("ClearMeeting", mock.Anything, "session-1").Return(nil)

	err := svc.EndMeeting(context.Background(), "session-1")
	require.NoError(t, err)
	sessions.AssertExpectations(t)
}

func TestEndMeeting_deletesAndClears(t *testing.T) {
	sessions := &MockSessionRepo{}
	chime := &fakeChime{}
	svc := &DefaultMeetingService{Chime: chime, Sessions: sessions}

	sessions.On("GetByID", mock.Anything, "session-1").Return(sessionWithMeeting(), nil)
	sessions.On("ClearMeeting", mock.Anything, "session-1").Return(nil)

	err := svc.EndMeeting(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Equal(t, 1, chime.deleteCalls)
	sessions.AssertExpectations(t)
}
