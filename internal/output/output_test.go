package output

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrotarget/internal/options"
	"github.com/retroenv/retrotarget/internal/session"
	"github.com/retroenv/retrotarget/internal/target"
)

func TestSelectTarget(t *testing.T) {
	logger := log.NewTestLogger(t)

	t.Run("known target", func(t *testing.T) {
		sess := session.New()
		assert.NoError(t, SelectTarget(logger, sess, "geos"))
		assert.Equal(t, target.GEOSCBM, sess.Target())
	})

	t.Run("unknown target", func(t *testing.T) {
		sess := session.New()
		err := SelectTarget(logger, sess, "nonexistent-platform")
		assert.True(t, errors.Is(err, target.ErrUnknownTarget))
		assert.ErrorContains(t, err, "nonexistent-platform")
		assert.False(t, sess.TargetSet())
	})

	t.Run("target selected twice", func(t *testing.T) {
		sess := session.New()
		assert.NoError(t, SelectTarget(logger, sess, "c64"))
		err := SelectTarget(logger, sess, "pet")
		assert.True(t, errors.Is(err, session.ErrTargetAlreadySet))
	})
}

func TestProcess(t *testing.T) {
	sess := session.New()
	assert.NoError(t, sess.SetTarget(target.C64))

	opts := options.Program{
		Parameters: options.Parameters{Encode: "Hi\n"},
		Flags:      options.Flags{Charmap: true},
	}
	writerOpts := options.NewWriter()

	var buf bytes.Buffer
	assert.NoError(t, Process(sess, opts, writerOpts, &buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "; Target: c64\n"))
	assert.True(t, strings.Contains(out, ".setcpu \"6502\"\n"))
	assert.True(t, strings.Contains(out, "; petscii character map\n"))
	assert.True(t, strings.Contains(out, ".charmap $41, $C1\n"))
	assert.True(t, strings.Contains(out, "text:\n  .byte $c8, $49, $0d"))
}

func TestProcessWithoutCharmap(t *testing.T) {
	sess := session.New()
	assert.NoError(t, sess.SetTarget(target.Apple2Enh))

	var buf bytes.Buffer
	assert.NoError(t, Process(sess, options.Program{}, options.NewWriter(), &buf))

	out := buf.String()
	assert.True(t, strings.Contains(out, ".setcpu \"65C02\"\n"))
	assert.False(t, strings.Contains(out, ".charmap"))
	assert.False(t, strings.Contains(out, ".byte"))
}

func TestProcessUnsupportedText(t *testing.T) {
	sess := session.New()
	assert.NoError(t, sess.SetTarget(target.PET))

	opts := options.Program{Parameters: options.Parameters{Encode: "☃"}}
	var buf bytes.Buffer
	assert.Error(t, Process(sess, opts, options.NewWriter(), &buf))
}

func TestProcessFile(t *testing.T) {
	sess := session.New()
	assert.NoError(t, sess.SetTarget(target.Atari))

	path := filepath.Join(t.TempDir(), "atari.inc")
	opts := options.Program{
		Parameters: options.Parameters{Output: path},
		Flags:      options.Flags{Charmap: true},
	}
	assert.NoError(t, ProcessFile(sess, opts, options.NewWriter()))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(string(data), ".charmap $0A, $9B\n"))
}

func TestListTargets(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, ListTargets(&buf))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, len(target.Names()), len(lines))
	assert.Equal(t, "agat", lines[0])
	assert.True(t, strings.Contains(buf.String(), "-> geos-cbm\n"))
}
