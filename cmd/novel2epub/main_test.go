package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/ykawada/webnovel/cmd/novel2epub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "novel2epub")
	assert.Contains(t, stdout.String(), "book")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_UnknownFlag(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--bogus", "https://ncode.syosetu.com/n1234ab/"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_InvalidChapterRange(t *testing.T) {
	t.Parallel()

	m := main.NewMain()

	for _, in := range []string{"abc", "3", "5-2", "0-4"} {
		t.Run(in, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := m.Run(context.Background(), []string{"-c", in, "https://ncode.syosetu.com/n1234ab/"}, &stdout, &stderr)
			assert.Error(t, err)
		})
	}
}
