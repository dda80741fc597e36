package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "demo_plugin_nudge_time", Key("demo_plugin", fieldTime))
	assert.Equal(t, "demo_plugin_nudge_dismissed", Key("demo_plugin", fieldDismissed))
	assert.NotEqual(t, Key("a", "b"), Key("b", "a"))
}
