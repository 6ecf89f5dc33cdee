package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spride/spride-web/src/internal/locale"
	"github.com/spride/spride-web/src/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cliTrips = []model.Trip{
	{ID: 1, Route: model.RouteBaekseok, Direction: model.DirectionToSchool, DepartureTime: "09:30"},
	{ID: 2, Route: model.RouteSamsong, Direction: model.DirectionToSchool, DepartureTime: "09:45"},
	{ID: 3, Route: model.RouteBaekseok, Direction: model.DirectionToSchool, DepartureTime: "10:45"},
	{ID: 4, Route: model.RouteBaekseok, Direction: model.DirectionToSchool, DepartureTime: "11:00"},
}

func TestClockTime(t *testing.T) {
	base := time.Date(2025, 3, 4, 13, 0, 0, 0, time.UTC)
	got, err := clockTime("09:31", base)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 4, 9, 31, 0, 0, time.UTC), got)

	got, err = clockTime("", base)
	require.NoError(t, err)
	assert.Equal(t, base, got)

	_, err = clockTime("9am", base)
	assert.Error(t, err)
}

func TestPrintSchedule(t *testing.T) {
	now := time.Date(2025, 3, 4, 9, 31, 0, 0, time.UTC)
	var buf bytes.Buffer

	require.NoError(t, printSchedule(&buf, cliTrips, model.DirectionToSchool, "", now, locale.English))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "09:45")
	assert.Contains(t, lines[0], "14 min left")
	assert.Contains(t, lines[1], "1h 14m left")
	assert.Contains(t, lines[2], "1h 29m left")
}

func TestPrintSchedule_Empty(t *testing.T) {
	now := time.Date(2025, 3, 4, 23, 0, 0, 0, time.UTC)
	var buf bytes.Buffer

	require.NoError(t, printSchedule(&buf, cliTrips, model.DirectionToSchool, "", now, locale.English))
	assert.Equal(t, locale.T(locale.English, "noShuttleInfo")+"\n", buf.String())
}

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "spride version")
}
