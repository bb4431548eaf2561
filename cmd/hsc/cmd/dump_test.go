package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/go-hsc/pkg/hsc"
	"github.com/cwbudde/go-hsc/types"
)

func TestBuildDump(t *testing.T) {
	instance := hsc.New(types.TargetAny)
	require.NoError(t, instance.LoadSource([]byte("(global short x 5)"), "x.hsc"))
	require.NoError(t, instance.Compile())

	dump := buildDump(instance)

	assert.Equal(t, []string{"x.hsc"}, dump.Files)
	require.Len(t, dump.Globals, 1)
	assert.Equal(t, "x", dump.Globals[0].Name)
	assert.Equal(t, "short", dump.Globals[0].Type)

	init := dump.Nodes[dump.Globals[0].FirstNode]
	require.NotNil(t, init.ShortValue)
	assert.Equal(t, int16(5), *init.ShortValue)
	assert.Nil(t, init.StringData)
	assert.True(t, init.Primitive)
}

func TestDumpIsStableJSON(t *testing.T) {
	compileOnceToDump := func() []byte {
		instance := hsc.New(types.TargetAny)
		require.NoError(t, instance.LoadSource([]byte("(script startup s (sleep 30))"), "s.hsc"))
		require.NoError(t, instance.Compile())
		data, err := json.Marshal(buildDump(instance))
		require.NoError(t, err)
		return data
	}

	assert.Equal(t, string(compileOnceToDump()), string(compileOnceToDump()))
}
