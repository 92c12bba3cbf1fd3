// Test Type: Unit Test
// Description: Tests for building rule sets from configuration

package config_test

import (
	"testing"

	"github.com/arthur-debert/duscan/pkg/config"
	"github.com/arthur-debert/duscan/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestBuildSet(t *testing.T) {
	cfg := &config.Config{
		Rules: []config.RuleConfig{
			{Pattern: `\.bak$`},
			{Pattern: `^core$`, Enabled: boolPtr(false)},
			{Pattern: `~$`, Enabled: boolPtr(true)},
		},
	}

	set, err := cfg.BuildSet()
	require.NoError(t, err)
	require.Equal(t, 3, set.Len())

	assert.True(t, set.Match("foo.bak"))
	assert.False(t, set.Match("core"), "disabled rule must not match")
	assert.True(t, set.Match("foo~"))

	// order and enabled flags survive into the set
	var patterns []string
	var enabled []bool
	for rule := range set.Rules() {
		patterns = append(patterns, rule.Pattern())
		enabled = append(enabled, rule.IsEnabled())
	}
	assert.Equal(t, []string{`\.bak$`, `^core$`, `~$`}, patterns)
	assert.Equal(t, []bool{true, false, true}, enabled)
}

func TestBuildSet_EmptySet(t *testing.T) {
	cfg := &config.Config{}

	set, err := cfg.BuildSet()
	require.NoError(t, err)

	assert.Equal(t, 0, set.Len())
	assert.False(t, set.Match("anything"))
}

func TestBuildSet_MalformedPattern(t *testing.T) {
	cfg := &config.Config{
		Rules: []config.RuleConfig{
			{Pattern: `\.bak$`},
			{Pattern: `[unclosed`},
		},
	}

	set, err := cfg.BuildSet()
	require.Error(t, err)
	assert.Nil(t, set)

	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))

	var duscanErr *errors.DuscanError
	require.ErrorAs(t, err, &duscanErr)
	assert.Equal(t, "[unclosed", duscanErr.Details["pattern"])
	assert.Equal(t, 1, duscanErr.Details["index"])
}

func TestBuildSet_EmptyPattern(t *testing.T) {
	cfg := &config.Config{
		Rules: []config.RuleConfig{{Pattern: ""}},
	}

	_, err := cfg.BuildSet()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRuleInvalid))
}

func TestRuleConfig_IsEnabled(t *testing.T) {
	assert.True(t, config.RuleConfig{Pattern: "x"}.IsEnabled(), "omitted enabled means enabled")
	assert.True(t, config.RuleConfig{Pattern: "x", Enabled: boolPtr(true)}.IsEnabled())
	assert.False(t, config.RuleConfig{Pattern: "x", Enabled: boolPtr(false)}.IsEnabled())
}
