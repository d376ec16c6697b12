package migration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSourceURL(t *testing.T) {
	got, err := SourceURL("migrations")

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "file://"))
	assert.True(t, strings.HasSuffix(got, "/migrations"))
}

func TestRun_UnsupportedAction(t *testing.T) {
	err := Run("sideways", "migrations", "postgres://localhost/none", zap.NewNop())

	assert.EqualError(t, err, `unsupported action "sideways"`)
}

func TestIsSupported(t *testing.T) {
	for _, action := range []string{ActionUp, ActionDown, ActionDrop, ActionVersion} {
		assert.True(t, IsSupported(action), action)
	}
	assert.False(t, IsSupported("force"))
}
