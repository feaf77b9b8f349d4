package feed

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shenikar/wildfire_dashboard/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() (*logrus.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	return logger, buf
}

func TestParse_10MinQuotedDecimalComma(t *testing.T) {
	logger, _ := newTestLogger()
	payload := "lat,lon,satelite,data_hora\n\"-9,50\",\"-47,30\",\"SAT1\",\"2024-01-01\"\n"

	res := Parse(models.Period10Min, payload, logger)

	require.Len(t, res.Records, 1)
	assert.Equal(t, 1, res.Parsed)
	assert.InDelta(t, -9.50, res.Records[0].Latitude, 1e-9)
	assert.InDelta(t, -47.30, res.Records[0].Longitude, 1e-9)
	assert.Equal(t, "SAT1", res.Records[0].Satellite)
	assert.Equal(t, "2024-01-01", res.Records[0].Timestamp)
}

func TestParse_MonthlyColumnLayout(t *testing.T) {
	logger, _ := newTestLogger()
	payload := strings.Join([]string{
		"id,lat,lon,data_hora_gmt,satelite",
		"999,-10.25,-50.5,2024-08-01 13:20:00,AQUA_M-T",
	}, "\n")

	res := Parse(models.PeriodMensal, payload, logger)

	require.Len(t, res.Records, 1)
	rec := res.Records[0]
	assert.Equal(t, -10.25, rec.Latitude)
	assert.Equal(t, -50.5, rec.Longitude)
	assert.Equal(t, "AQUA_M-T", rec.Satellite)
	assert.Equal(t, "2024-08-01 13:20:00", rec.Timestamp)
}

func TestParse_AnnualUsesMonthlyLayout(t *testing.T) {
	logger, _ := newTestLogger()
	payload := "h\nx,1.5,2.5,2023-12-31,NOAA-20\n"

	res := Parse(models.PeriodAnual, payload, logger)

	require.Len(t, res.Records, 1)
	assert.Equal(t, 1.5, res.Records[0].Latitude)
	assert.Equal(t, "NOAA-20", res.Records[0].Satellite)
}

func TestParse_ShortRowsSkippedSilently(t *testing.T) {
	logger, logs := newTestLogger()
	payload := "header\n-9.5,-47.3,SAT1\n1,2\n\n-8.1,-40.2,SAT2,2024-01-02\n"

	var res Result
	require.NotPanics(t, func() {
		res = Parse(models.Period10Min, payload, logger)
	})

	assert.Equal(t, 1, res.Parsed)
	assert.Equal(t, 3, res.Skipped)
	assert.Equal(t, 0, res.Invalid)
	assert.Empty(t, logs.String())
}

func TestParse_MonthlyShortRowSkipped(t *testing.T) {
	logger, _ := newTestLogger()
	payload := "header\n-9.5,-47.3,SAT1,2024-01-01\n"

	res := Parse(models.PeriodMensal, payload, logger)

	assert.True(t, res.Empty())
	assert.Equal(t, 1, res.Skipped)
}

func TestParse_EmptyCoordinateSkipped(t *testing.T) {
	logger, logs := newTestLogger()
	payload := "header\n,-47.3,SAT1,2024-01-01\n-9.5,,SAT1,2024-01-01\n"

	res := Parse(models.Period10Min, payload, logger)

	assert.True(t, res.Empty())
	assert.Equal(t, 2, res.Skipped)
	assert.Empty(t, logs.String())
}

func TestParse_InvalidNumberLoggedAndSkipped(t *testing.T) {
	logger, logs := newTestLogger()
	payload := "header\nabc,-47.3,SAT1,2024-01-01\nInf,1,SAT1,2024\nNaN,1,SAT1,2024\n-1,-2,SAT3,2024\n"

	res := Parse(models.Period10Min, payload, logger)

	assert.Equal(t, 1, res.Parsed)
	assert.Equal(t, 3, res.Invalid)
	assert.Equal(t, 3, res.Skipped)
	assert.Contains(t, logs.String(), "Could not process CSV row")
}

func TestParse_HeaderOnly(t *testing.T) {
	logger, _ := newTestLogger()

	res := Parse(models.PeriodMensal, "id,lat,lon,data,satelite\n", logger)

	assert.True(t, res.Empty())
	assert.Zero(t, res.Skipped)
}

func TestParse_UnknownMode(t *testing.T) {
	logger, _ := newTestLogger()

	res := Parse(models.PeriodMode("semanal"), "h\n1,2,3,4,5\n", logger)

	assert.True(t, res.Empty())
	assert.Nil(t, res.Records)
}

func TestParse_CRLFLineEndings(t *testing.T) {
	logger, _ := newTestLogger()
	payload := "lat,lon,sat,data\r\n-3.1,-60.0,GOES-16,2024-09-01T10:00Z\r\n"

	res := Parse(models.Period10Min, payload, logger)

	require.Len(t, res.Records, 1)
	assert.Equal(t, "2024-09-01T10:00Z", res.Records[0].Timestamp)
}

func TestParseCoordinate(t *testing.T) {
	v, err := ParseCoordinate("-15,78")
	require.NoError(t, err)
	assert.InDelta(t, -15.78, v, 1e-9)

	v, err = ParseCoordinate("47.93")
	require.NoError(t, err)
	assert.Equal(t, 47.93, v)

	_, err = ParseCoordinate("1,2,3")
	assert.Error(t, err)

	_, err = ParseCoordinate("+Inf")
	assert.ErrorContains(t, err, "non-finite")
}
