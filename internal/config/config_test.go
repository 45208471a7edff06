package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goatkit/contactform/internal/helpdesk"
	"github.com/goatkit/contactform/internal/thread"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	cfg, err := Load()
	require.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Nil(t, cfg)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvAPIKey, "sk_test_123")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sk_test_123", cfg.APIKey)
	assert.Equal(t, helpdesk.DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Empty(t, cfg.LabelTypeIDs)
}

func TestLoadLabelConfig(t *testing.T) {
	t.Setenv(EnvAPIKey, "sk_test_123")
	t.Setenv("PLAIN_LABEL_TYPE_ID_BUG", "lt_bug")
	t.Setenv("PLAIN_LABEL_TYPE_ID_SECURITY", "lt_sec")
	t.Setenv("PLAIN_LABEL_TYPE_ID_DEMO", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, thread.LabelConfig{
		thread.CategoryBug:      "lt_bug",
		thread.CategorySecurity: "lt_sec",
	}, cfg.LabelTypeIDs)
	_, ok := cfg.LabelTypeIDs[thread.CategoryDemo]
	assert.False(t, ok, "blank label configuration is omitted, not an error")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(EnvAPIKey, "sk_test_123")
	t.Setenv(EnvAPIURL, "http://localhost:9999")
	t.Setenv(EnvListenAddr, ":3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", cfg.APIURL)
	assert.Equal(t, ":3000", cfg.ListenAddr)
}

func TestLoadLabels(t *testing.T) {
	t.Setenv("PLAIN_LABEL_TYPE_ID_QUESTION", "lt_q")

	labels := LoadLabels()
	assert.Equal(t, "lt_q", labels[thread.CategoryQuestion])
}
