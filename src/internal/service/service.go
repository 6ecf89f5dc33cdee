package service

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"

	"github.com/spride/spride-web/src/internal/auth"
	"github.com/spride/spride-web/src/internal/backend"
	"github.com/spride/spride-web/src/internal/locale"
	"github.com/spride/spride-web/src/internal/model"
	"github.com/spride/spride-web/src/internal/nav"
	"github.com/spride/spride-web/src/internal/schedule"
	"github.com/spride/spride-web/src/internal/session"
	"github.com/spride/spride-web/src/internal/store"

	"go.uber.org/zap"
)

type Backend interface {
	Logout(ctx context.Context)
	GetProfile(ctx context.Context) (model.Profile, error)
	UpdateProfile(ctx context.Context, upd model.ProfileUpdate) error
	UploadProfileImage(ctx context.Context, filename string, image io.Reader) error
	ListArticles(ctx context.Context, articleType string) ([]model.Article, error)
	GetArticle(ctx context.Context, id int64) (model.Article, error)
	CreateArticle(ctx context.Context, a model.NewArticle) (model.Article, error)
	ListComments(ctx context.Context, articleID int64) ([]model.Comment, error)
	CreateComment(ctx context.Context, articleID int64, content string) error
	ListShuttleLogs(ctx context.Context, tripIDs []int) (map[int]model.TripStatus, error)
	CreateShuttleLog(ctx context.Context, entry backend.NewShuttleLog) error
}

// Deps groups the long-lived collaborators the views share.
type Deps struct {
	Session  *session.Store
	Schedule *schedule.View
	Notices  *schedule.Carousel
	Nav      *nav.Stack
	Auth     *auth.Flow
	Backend  Backend
	Prefs    store.Repository
	Trips    []model.Trip
}

// Service is the application context handed to every view handler.
type Service struct {
	Session  *session.Store
	Schedule *schedule.View
	Notices  *schedule.Carousel
	Nav      *nav.Stack
	Auth     *auth.Flow

	backend Backend
	prefs   store.Repository
	trips   []model.Trip
	log     *zap.Logger
}

func NewService(d Deps, logger *zap.Logger) *Service {
	return &Service{
		Session:  d.Session,
		Schedule: d.Schedule,
		Notices:  d.Notices,
		Nav:      d.Nav,
		Auth:     d.Auth,
		backend:  d.Backend,
		prefs:    d.Prefs,
		trips:    d.Trips,
		log:      logger,
	}
}

// Language resolves the display language from the stored preference and the
// request's Accept-Language header.
func (s *Service) Language(ctx context.Context, acceptLanguage string) locale.Lang {
	var stored string
	p, err := s.prefs.GetPreference(ctx, locale.PreferenceKey)
	switch {
	case err == nil:
		stored = p.Value
	case errors.Is(err, model.ErrNotFound):
	default:
		s.log.Warn("read language preference", zap.Error(err))
	}
	return locale.Resolve(stored, acceptLanguage)
}

func (s *Service) SetLanguage(ctx context.Context, raw string) (locale.Lang, error) {
	lang, ok := locale.Parse(raw)
	if !ok {
		return "", &auth.ValidationError{Field: "lang", Key: "language"}
	}
	if _, err := s.prefs.SetPreference(ctx, locale.PreferenceKey, string(lang)); err != nil {
		return "", err
	}
	return lang, nil
}

// Logout signs out locally and then tells the backend; the remote result is
// ignored.
func (s *Service) Logout(ctx context.Context) {
	s.Session.Logout()
	s.backend.Logout(ctx)
}

func (s *Service) requireLogin() error {
	if !s.Session.Snapshot().Authenticated {
		return model.ErrUnauthenticated
	}
	return nil
}

type Board struct {
	Schedule schedule.Snapshot
	Overlay  map[int]model.TripStatus
	Notice   schedule.Notice
	NoticeAt int
}

// Board builds the shuttle page: the filtered schedule plus the status
// overlay for the visible trips. A failed overlay fetch leaves it empty.
func (s *Service) Board(ctx context.Context) Board {
	snap := s.Schedule.Snapshot()
	overlay, err := s.backend.ListShuttleLogs(ctx, snap.TripIDs())
	if err != nil {
		s.log.Warn("shuttle status overlay unavailable", zap.Error(err))
		overlay = map[int]model.TripStatus{}
	}
	b := Board{Schedule: snap, Overlay: overlay}
	if s.Notices != nil {
		b.Notice, b.NoticeAt = s.Notices.Current()
	}
	return b
}

type TripDetail struct {
	Trip      model.Trip
	Status    model.TripStatus
	HasStatus bool
}

func (s *Service) Trip(ctx context.Context, id int) (TripDetail, error) {
	t, ok := schedule.Find(s.trips, id)
	if !ok {
		return TripDetail{}, model.ErrNotFound
	}
	d := TripDetail{Trip: t}
	overlay, err := s.backend.ListShuttleLogs(ctx, []int{id})
	if err != nil {
		s.log.Warn("trip status unavailable", zap.Int("trip", id), zap.Error(err))
		return d, nil
	}
	d.Status, d.HasStatus = overlay[id]
	return d, nil
}

func (s *Service) ReportStatus(ctx context.Context, tripID int, crowd, status string) error {
	if err := s.requireLogin(); err != nil {
		return err
	}
	if !model.ValidCrowdLevel(crowd) {
		return &auth.ValidationError{Field: "crowdLevel", Key: "crowdLevel"}
	}
	if !model.ValidBoardingStatus(status) {
		return &auth.ValidationError{Field: "status", Key: "boardingStatus"}
	}
	if _, ok := schedule.Find(s.trips, tripID); !ok {
		return model.ErrNotFound
	}
	return s.backend.CreateShuttleLog(ctx, backend.NewShuttleLog{
		TripID:         tripID,
		CrowdLevel:     model.CrowdLevel(crowd),
		BoardingStatus: model.BoardingStatus(status),
	})
}

// TaxiBoard lists taxi-pool posts; on failure the list is empty and the error
// is returned for an inline message.
func (s *Service) TaxiBoard(ctx context.Context) ([]model.Article, error) {
	return s.backend.ListArticles(ctx, model.ArticleTypeTaxi)
}

type TaxiForm struct {
	Route     string
	Direction string
	Content   string
}

func (s *Service) CreateTaxi(ctx context.Context, f TaxiForm) (model.Article, error) {
	if err := s.requireLogin(); err != nil {
		return model.Article{}, err
	}
	content := strings.TrimSpace(f.Content)
	if content == "" {
		return model.Article{}, &auth.ValidationError{Field: "content", Key: "contentRequired"}
	}
	if _, ok := model.ParseRoute(f.Route); !ok {
		return model.Article{}, &auth.ValidationError{Field: "route", Key: "route"}
	}
	if _, ok := model.ParseDirection(f.Direction); !ok {
		return model.Article{}, &auth.ValidationError{Field: "direction", Key: "direction"}
	}
	return s.backend.CreateArticle(ctx, model.NewArticle{
		Type:      model.ArticleTypeTaxi,
		Route:     f.Route,
		Direction: f.Direction,
		Content:   content,
	})
}

// TaxiDetail loads a post and its comments, oldest first. A failed comment
// fetch falls back to whatever the post embedded.
func (s *Service) TaxiDetail(ctx context.Context, id int64) (model.Article, error) {
	a, err := s.backend.GetArticle(ctx, id)
	if err != nil {
		return model.Article{}, err
	}
	comments, err := s.backend.ListComments(ctx, id)
	if err != nil {
		s.log.Warn("comments unavailable", zap.Int64("article", id), zap.Error(err))
	} else {
		a.Comments = comments
	}
	sort.SliceStable(a.Comments, func(i, j int) bool {
		return a.Comments[i].CreatedAt.Before(a.Comments[j].CreatedAt)
	})
	return a, nil
}

func (s *Service) AddComment(ctx context.Context, articleID int64, content string) error {
	if err := s.requireLogin(); err != nil {
		return err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return &auth.ValidationError{Field: "content", Key: "commentRequired"}
	}
	return s.backend.CreateComment(ctx, articleID, content)
}

type ProfileView struct {
	Profile  model.Profile
	Band     model.LevelBand
	Progress float64
}

func (s *Service) Profile(ctx context.Context) (ProfileView, error) {
	p, err := s.backend.GetProfile(ctx)
	if err != nil {
		return ProfileView{}, err
	}
	band := p.Band()
	return ProfileView{Profile: p, Band: band, Progress: band.Progress(p.Score)}, nil
}

func (s *Service) UpdateProfile(ctx context.Context, nickname, intro string) error {
	if err := s.requireLogin(); err != nil {
		return err
	}
	if err := auth.ValidateNickname(nickname); err != nil {
		return err
	}
	if err := auth.ValidateIntro(intro); err != nil {
		return err
	}
	return s.backend.UpdateProfile(ctx, model.ProfileUpdate{Nickname: strings.TrimSpace(nickname), IntroText: intro})
}

func (s *Service) UploadProfileImage(ctx context.Context, filename string, image io.Reader) error {
	if err := s.requireLogin(); err != nil {
		return err
	}
	if image == nil || filename == "" {
		return &auth.ValidationError{Field: "profileImage", Key: "uploadMissing"}
	}
	return s.backend.UploadProfileImage(ctx, filename, image)
}
