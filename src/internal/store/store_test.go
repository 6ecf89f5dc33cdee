package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/spride/spride-web/src/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type PreferenceSuite struct {
	suite.Suite
	repos *Repositories
}

func (s *PreferenceSuite) SetupTest() {
	dsn := "file:" + filepath.Join(s.T().TempDir(), "prefs.db")
	logger := zap.NewNop()

	s.Require().NoError(Migrate(dsn, logger))
	db, dialect, err := Open(dsn, 1, 0, logger)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = db.Close() })

	s.repos = NewRepositories(db, dialect, logger)
	s.repos.now = func() time.Time { return time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC) }
}

func (s *PreferenceSuite) TestMissingKey() {
	_, err := s.repos.GetPreference(context.Background(), "lang")
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *PreferenceSuite) TestSetThenGet() {
	ctx := context.Background()
	_, err := s.repos.SetPreference(ctx, "lang", "ko")
	s.Require().NoError(err)

	p, err := s.repos.GetPreference(ctx, "lang")
	s.Require().NoError(err)
	s.Equal("ko", p.Value)
	s.Equal(time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC), p.UpdatedAt)
}

func (s *PreferenceSuite) TestOverwrite() {
	ctx := context.Background()
	_, err := s.repos.SetPreference(ctx, "lang", "ko")
	s.Require().NoError(err)
	_, err = s.repos.SetPreference(ctx, "lang", "en")
	s.Require().NoError(err)

	p, err := s.repos.GetPreference(ctx, "lang")
	s.Require().NoError(err)
	s.Equal("en", p.Value)
}

func (s *PreferenceSuite) TestMigrateIsIdempotent() {
	dsn := "file:" + filepath.Join(s.T().TempDir(), "again.db")
	s.NoError(Migrate(dsn, zap.NewNop()))
	s.NoError(Migrate(dsn, zap.NewNop()))
}

func TestPreferenceSuite(t *testing.T) {
	suite.Run(t, new(PreferenceSuite))
}

func TestDialectFor(t *testing.T) {
	assert.Equal(t, Postgres, DialectFor("postgres://u:p@db:5432/x?sslmode=disable"))
	assert.Equal(t, Postgres, DialectFor("postgresql://db/x"))
	assert.Equal(t, SQLite, DialectFor("file:spride.db"))
}

func TestRebind(t *testing.T) {
	pg := &Repositories{Dialect: Postgres}
	require.Equal(t, "a = $1 AND b = $2", pg.rebind("a = ? AND b = ?"))
	lite := &Repositories{Dialect: SQLite}
	require.Equal(t, "a = ?", lite.rebind("a = ?"))
}
