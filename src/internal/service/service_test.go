package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/spride/spride-web/src/internal/auth"
	"github.com/spride/spride-web/src/internal/backend"
	"github.com/spride/spride-web/src/internal/locale"
	"github.com/spride/spride-web/src/internal/model"
	"github.com/spride/spride-web/src/internal/schedule"
	"github.com/spride/spride-web/src/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Logout(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockBackend) GetProfile(ctx context.Context) (model.Profile, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Profile), args.Error(1)
}

func (m *MockBackend) UpdateProfile(ctx context.Context, upd model.ProfileUpdate) error {
	args := m.Called(ctx, upd)
	return args.Error(0)
}

func (m *MockBackend) UploadProfileImage(ctx context.Context, filename string, image io.Reader) error {
	args := m.Called(ctx, filename, image)
	return args.Error(0)
}

func (m *MockBackend) ListArticles(ctx context.Context, articleType string) ([]model.Article, error) {
	args := m.Called(ctx, articleType)
	return args.Get(0).([]model.Article), args.Error(1)
}

func (m *MockBackend) GetArticle(ctx context.Context, id int64) (model.Article, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Article), args.Error(1)
}

func (m *MockBackend) CreateArticle(ctx context.Context, a model.NewArticle) (model.Article, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(model.Article), args.Error(1)
}

func (m *MockBackend) ListComments(ctx context.Context, articleID int64) ([]model.Comment, error) {
	args := m.Called(ctx, articleID)
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockBackend) CreateComment(ctx context.Context, articleID int64, content string) error {
	args := m.Called(ctx, articleID, content)
	return args.Error(0)
}

func (m *MockBackend) ListShuttleLogs(ctx context.Context, tripIDs []int) (map[int]model.TripStatus, error) {
	args := m.Called(ctx, tripIDs)
	return args.Get(0).(map[int]model.TripStatus), args.Error(1)
}

func (m *MockBackend) CreateShuttleLog(ctx context.Context, entry backend.NewShuttleLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockPrefs struct {
	mock.Mock
}

func (m *MockPrefs) GetPreference(ctx context.Context, key string) (model.Preference, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(model.Preference), args.Error(1)
}

func (m *MockPrefs) SetPreference(ctx context.Context, key, value string) (model.Preference, error) {
	args := m.Called(ctx, key, value)
	return args.Get(0).(model.Preference), args.Error(1)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func (c fixedClock) Ticker(time.Duration) (<-chan time.Time, func()) {
	return make(chan time.Time), func() {}
}

var testTrips = []model.Trip{
	{ID: 1, Route: model.RouteBaekseok, Direction: model.DirectionToSchool, DepartureTime: "09:00"},
	{ID: 2, Route: model.RouteSamsong, Direction: model.DirectionToSchool, DepartureTime: "09:40"},
	{ID: 3, Route: model.RouteBaekseok, Direction: model.DirectionFromSchool, DepartureTime: "17:00"},
}

func newTestService(b *MockBackend, p *MockPrefs, loggedIn bool) *Service {
	logger := zap.NewNop()
	store := session.NewStore(logger)
	if loggedIn {
		store.Login()
	}
	now := time.Date(2025, 3, 4, 9, 10, 0, 0, time.UTC)
	view := schedule.NewView(testTrips, fixedClock{now: now}, logger)
	return NewService(Deps{
		Session:  store,
		Schedule: view,
		Notices:  schedule.NewCarousel(schedule.DefaultNotices, time.Second, fixedClock{now: now}),
		Backend:  b,
		Prefs:    p,
		Trips:    testTrips,
	}, logger)
}

func TestLanguage_StoredPreferenceWins(t *testing.T) {
	p := new(MockPrefs)
	p.On("GetPreference", mock.Anything, locale.PreferenceKey).Return(model.Preference{Key: "lang", Value: "ko"}, nil)
	s := newTestService(new(MockBackend), p, false)

	assert.Equal(t, locale.Korean, s.Language(context.Background(), "en-US"))
}

func TestLanguage_FallsBackToHeader(t *testing.T) {
	p := new(MockPrefs)
	p.On("GetPreference", mock.Anything, locale.PreferenceKey).Return(model.Preference{}, model.ErrNotFound)
	s := newTestService(new(MockBackend), p, false)

	assert.Equal(t, locale.Korean, s.Language(context.Background(), "ko-KR,ko;q=0.9"))
}

func TestSetLanguage(t *testing.T) {
	p := new(MockPrefs)
	p.On("SetPreference", mock.Anything, locale.PreferenceKey, "en").Return(model.Preference{}, nil).Once()
	s := newTestService(new(MockBackend), p, false)

	lang, err := s.SetLanguage(context.Background(), "en")
	require.NoError(t, err)
	assert.Equal(t, locale.English, lang)

	_, err = s.SetLanguage(context.Background(), "fr")
	assert.ErrorIs(t, err, model.ErrValidation)
	p.AssertExpectations(t)
}

func TestLogout_ClearsLocalStateAndCallsBackend(t *testing.T) {
	b := new(MockBackend)
	b.On("Logout", mock.Anything).Once()
	s := newTestService(b, new(MockPrefs), true)

	s.Logout(context.Background())

	assert.False(t, s.Session.Snapshot().Authenticated)
	b.AssertExpectations(t)
}

func TestBoard_OverlayForVisibleTrips(t *testing.T) {
	b := new(MockBackend)
	b.On("ListShuttleLogs", mock.Anything, []int{2}).
		Return(map[int]model.TripStatus{2: {TripID: 2, CrowdLevel: model.CrowdFull}}, nil)
	s := newTestService(b, new(MockPrefs), false)

	board := s.Board(context.Background())

	require.Len(t, board.Schedule.Entries, 1)
	assert.Equal(t, 2, board.Schedule.Entries[0].Trip.ID)
	assert.Equal(t, model.CrowdFull, board.Overlay[2].CrowdLevel)
	assert.Equal(t, "noticeTitle1", board.Notice.TitleKey)
}

func TestBoard_OverlayFailureIsEmpty(t *testing.T) {
	b := new(MockBackend)
	b.On("ListShuttleLogs", mock.Anything, mock.Anything).
		Return(map[int]model.TripStatus{}, errors.New("down"))
	s := newTestService(b, new(MockPrefs), false)

	board := s.Board(context.Background())
	assert.NotNil(t, board.Overlay)
	assert.Empty(t, board.Overlay)
	assert.Len(t, board.Schedule.Entries, 1)
}

func TestTrip_NotFound(t *testing.T) {
	s := newTestService(new(MockBackend), new(MockPrefs), false)
	_, err := s.Trip(context.Background(), 99)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestReportStatus(t *testing.T) {
	ctx := context.Background()

	anon := newTestService(new(MockBackend), new(MockPrefs), false)
	assert.ErrorIs(t, anon.ReportStatus(ctx, 1, "FULL", "WAITING"), model.ErrUnauthenticated)

	b := new(MockBackend)
	b.On("CreateShuttleLog", mock.Anything, backend.NewShuttleLog{
		TripID: 1, CrowdLevel: model.CrowdFull, BoardingStatus: model.BoardingWaiting,
	}).Return(nil).Once()
	s := newTestService(b, new(MockPrefs), true)

	assert.ErrorIs(t, s.ReportStatus(ctx, 1, "PACKED", "WAITING"), model.ErrValidation)
	assert.ErrorIs(t, s.ReportStatus(ctx, 1, "FULL", "LATE"), model.ErrValidation)
	assert.ErrorIs(t, s.ReportStatus(ctx, 42, "FULL", "WAITING"), model.ErrNotFound)
	assert.NoError(t, s.ReportStatus(ctx, 1, "FULL", "WAITING"))
	b.AssertExpectations(t)
}

func TestCreateTaxi_ContentRequiredBlocksRemoteCall(t *testing.T) {
	b := new(MockBackend)
	s := newTestService(b, new(MockPrefs), true)

	_, err := s.CreateTaxi(context.Background(), TaxiForm{Route: "BAEKSEOK", Direction: "TO_SCHOOL", Content: "   "})

	var verr *auth.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "contentRequired", verr.Key)
	b.AssertNotCalled(t, "CreateArticle", mock.Anything, mock.Anything)
}

func TestCreateTaxi_Success(t *testing.T) {
	b := new(MockBackend)
	b.On("CreateArticle", mock.Anything, model.NewArticle{
		Type: model.ArticleTypeTaxi, Route: "BAEKSEOK", Direction: "TO_SCHOOL", Content: "2 seats left",
	}).Return(model.Article{ID: 5}, nil).Once()
	s := newTestService(b, new(MockPrefs), true)

	a, err := s.CreateTaxi(context.Background(), TaxiForm{Route: "BAEKSEOK", Direction: "TO_SCHOOL", Content: " 2 seats left "})
	require.NoError(t, err)
	assert.Equal(t, int64(5), a.ID)
}

func TestTaxiDetail_SortsCommentsAndToleratesCommentFailure(t *testing.T) {
	t0 := time.Date(2025, 3, 4, 8, 0, 0, 0, time.UTC)
	b := new(MockBackend)
	b.On("GetArticle", mock.Anything, int64(7)).Return(model.Article{ID: 7}, nil)
	b.On("ListComments", mock.Anything, int64(7)).Return([]model.Comment{
		{ID: 2, CreatedAt: t0.Add(time.Minute)},
		{ID: 1, CreatedAt: t0},
	}, nil).Once()
	s := newTestService(b, new(MockPrefs), false)

	a, err := s.TaxiDetail(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, a.Comments, 2)
	assert.Equal(t, int64(1), a.Comments[0].ID)

	b2 := new(MockBackend)
	b2.On("GetArticle", mock.Anything, int64(7)).Return(model.Article{ID: 7, Comments: []model.Comment{{ID: 9}}}, nil)
	b2.On("ListComments", mock.Anything, int64(7)).Return([]model.Comment{}, errors.New("down"))
	s2 := newTestService(b2, new(MockPrefs), false)

	a, err = s2.TaxiDetail(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, a.Comments, 1)
}

func TestAddComment(t *testing.T) {
	b := new(MockBackend)
	b.On("CreateComment", mock.Anything, int64(3), "me too").Return(nil).Once()
	s := newTestService(b, new(MockPrefs), true)

	assert.ErrorIs(t, s.AddComment(context.Background(), 3, ""), model.ErrValidation)
	assert.NoError(t, s.AddComment(context.Background(), 3, "me too"))
	b.AssertExpectations(t)
}

func TestProfile_ProgressWithinBand(t *testing.T) {
	b := new(MockBackend)
	b.On("GetProfile", mock.Anything).Return(model.Profile{Nickname: "fairy", Score: 250, Level: model.LevelSilver}, nil)
	s := newTestService(b, new(MockPrefs), true)

	v, err := s.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.LevelSilver, v.Band.Level)
	assert.InDelta(t, 75.0, v.Progress, 0.001)
}

func TestProfile_ErrorPropagates(t *testing.T) {
	b := new(MockBackend)
	b.On("GetProfile", mock.Anything).Return(model.Profile{}, errors.New("unauthorized"))
	s := newTestService(b, new(MockPrefs), true)

	_, err := s.Profile(context.Background())
	assert.Error(t, err)
}

func TestUpdateProfile_ValidatesBeforeCall(t *testing.T) {
	b := new(MockBackend)
	b.On("UpdateProfile", mock.Anything, model.ProfileUpdate{Nickname: "neo", IntroText: "hello"}).Return(nil).Once()
	s := newTestService(b, new(MockPrefs), true)

	assert.ErrorIs(t, s.UpdateProfile(context.Background(), strings.Repeat("x", 11), ""), model.ErrValidation)
	assert.ErrorIs(t, s.UpdateProfile(context.Background(), "neo", strings.Repeat("x", 51)), model.ErrValidation)
	assert.NoError(t, s.UpdateProfile(context.Background(), "neo", "hello"))
	b.AssertExpectations(t)
}

func TestUploadProfileImage_MissingFile(t *testing.T) {
	b := new(MockBackend)
	s := newTestService(b, new(MockPrefs), true)

	err := s.UploadProfileImage(context.Background(), "", nil)
	var verr *auth.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "uploadMissing", verr.Key)
}
