package cli

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateValue(t *testing.T) {
	now := func() time.Time { return time.Date(2025, 3, 15, 18, 30, 0, 0, time.UTC) }

	var d time.Time
	fs := pflag.NewFlagSet("t", pflag.ContinueOnError)
	addDateFlag(fs, &d, now, "")

	require.NoError(t, fs.Parse([]string{"--date", "today"}))
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), d)

	require.NoError(t, fs.Set("date", "Yesterday"))
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), d)

	require.NoError(t, fs.Set("date", "2024-12-31"))
	assert.Equal(t, "2024-12-31", fs.Lookup("date").Value.String())
	assert.Equal(t, "date", fs.Lookup("date").Value.Type())

	assert.Error(t, fs.Set("date", "31-12-2024"))
}

func TestOptionalFlags(t *testing.T) {
	fs := pflag.NewFlagSet("t", pflag.ContinueOnError)
	fs.Float64("sleep", 0, "")
	fs.Int("mood", 0, "")
	fs.Bool("ill", false, "")
	fs.Int("energy", 0, "")

	require.NoError(t, fs.Parse([]string{"--sleep", "0", "--mood", "6", "--ill"}))

	require.NotNil(t, flagFloat(fs, "sleep"))
	assert.Zero(t, *flagFloat(fs, "sleep"), "an explicit zero is still logged")
	assert.Equal(t, 6, *flagInt(fs, "mood"))
	assert.True(t, *flagBool(fs, "ill"))
	assert.Nil(t, flagInt(fs, "energy"))
}

func TestDateOr(t *testing.T) {
	now := time.Date(2025, 3, 15, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), dateOr(time.Time{}, now))
	assert.Equal(t, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), dateOr(time.Date(2025, 1, 2, 5, 0, 0, 0, time.UTC), now))
}
