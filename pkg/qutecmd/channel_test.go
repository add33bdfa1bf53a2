// SPDX-License-Identifier: MPL-2.0

package qutecmd

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/qutekit/qutekit/internal/testutil"
	"github.com/qutekit/qutekit/pkg/platform"
	"github.com/qutekit/qutekit/pkg/quteenv"
	"github.com/qutekit/qutekit/pkg/types"

	"github.com/charmbracelet/log"
)

func TestChannel_SendWritesExactBytes(t *testing.T) {
	t.Parallel()

	path := testutil.MustChannelFile(t)
	ch := New(types.FilesystemPath(path))

	if err := ch.Send("enter-mode insert"); err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if got := testutil.MustReadFile(t, path); got != "enter-mode insert" {
		t.Errorf("channel contents = %q, want %q", got, "enter-mode insert")
	}
}

func TestChannel_SendKeepsCallerNewlines(t *testing.T) {
	t.Parallel()

	path := testutil.MustChannelFile(t)
	ch := New(types.FilesystemPath(path))

	if err := ch.Send("open -t https://example.com\n"); err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if err := ch.Send("message-info done\n"); err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	want := "open -t https://example.com\nmessage-info done\n"
	if got := testutil.MustReadFile(t, path); got != want {
		t.Errorf("channel contents = %q, want %q", got, want)
	}
}

func TestChannel_SendNonexistentPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "gone")
	ch := New(types.FilesystemPath(path))

	err := ch.Send("enter-mode normal")
	if !errors.Is(err, ErrChannel) {
		t.Fatalf("Send() error = %v, want ErrChannel", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Send() error = %v, want fs.ErrNotExist in chain", err)
	}
	var chErr *ChannelError
	if !errors.As(err, &chErr) || chErr.Op != "open" || chErr.Path != types.FilesystemPath(path) {
		t.Errorf("Send() error = %#v, want open *ChannelError for %s", err, path)
	}
	if matches, _ := filepath.Glob(filepath.Join(dir, "*")); len(matches) != 0 {
		t.Errorf("Send() created %v, want nothing written", matches)
	}
}

func TestChannel_EnterMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode Mode
		want string
	}{
		{ModeNormal, "enter-mode normal"},
		{ModeInsert, "enter-mode insert"},
		{ModeCaret, "enter-mode caret"},
		{ModePassthrough, "enter-mode passthrough"},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			t.Parallel()

			path := testutil.MustChannelFile(t)
			if err := New(types.FilesystemPath(path)).EnterMode(tt.mode); err != nil {
				t.Fatalf("EnterMode() error: %v", err)
			}
			if got := testutil.MustReadFile(t, path); got != tt.want {
				t.Errorf("channel contents = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChannel_EnterModeRejectsUnknownMode(t *testing.T) {
	t.Parallel()

	path := testutil.MustChannelFile(t)
	err := New(types.FilesystemPath(path)).EnterMode(Mode("hint"))
	if !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("EnterMode() error = %v, want ErrInvalidMode", err)
	}
	if got := testutil.MustReadFile(t, path); got != "" {
		t.Errorf("channel contents = %q, want nothing sent", got)
	}
}

func TestChannel_FakeKeyIsVerbatim(t *testing.T) {
	t.Parallel()

	tests := []struct {
		keys string
		want string
	}{
		{"gg", "fake-key gg"},
		{"<Ctrl-a>", "fake-key <Ctrl-a>"},
		{`he said "hi"`, `fake-key he said "hi"`},
		{"", "fake-key "},
	}

	for _, tt := range tests {
		path := testutil.MustChannelFile(t)
		if err := New(types.FilesystemPath(path)).FakeKey(tt.keys); err != nil {
			t.Fatalf("FakeKey(%q) error: %v", tt.keys, err)
		}
		if got := testutil.MustReadFile(t, path); got != tt.want {
			t.Errorf("FakeKey(%q) wrote %q, want %q", tt.keys, got, tt.want)
		}
	}
}

func TestChannel_Open(t *testing.T) {
	t.Parallel()

	path := testutil.MustChannelFile(t)
	ch := New(types.FilesystemPath(path))
	if err := ch.Send("reload"); err != nil {
		t.Fatalf("Send() error: %v", err)
	}

	f, err := ch.Open()
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil || string(data) != "reload" {
		t.Errorf("read %q, %v; want %q", data, err, "reload")
	}

	_, err = New(types.FilesystemPath(filepath.Join(t.TempDir(), "missing"))).Open()
	if !errors.Is(err, fs.ErrNotExist) || !errors.Is(err, ErrChannel) {
		t.Errorf("Open() on missing path error = %v", err)
	}
}

func TestChannel_IsNamedPipeOnRegularFile(t *testing.T) {
	t.Parallel()

	ch := New(types.FilesystemPath(testutil.MustChannelFile(t)))
	isPipe, err := ch.IsNamedPipe()
	if err != nil || isPipe {
		t.Errorf("IsNamedPipe() = %v, %v; want false, nil", isPipe, err)
	}

	_, err = New("").IsNamedPipe()
	var chErr *ChannelError
	if !errors.As(err, &chErr) || chErr.Op != "stat" {
		t.Errorf("IsNamedPipe() on empty path error = %v, want stat *ChannelError", err)
	}
}

func TestChannel_Delivery(t *testing.T) {
	t.Parallel()

	if got := New("x").Delivery(); got != platform.CurrentDelivery() {
		t.Errorf("Delivery() = %q, want %q", got, platform.CurrentDelivery())
	}
}

func TestFromEnv(t *testing.T) {
	t.Parallel()

	ch, err := FromEnv(quteenv.FromMap(map[string]string{"QUTE_FIFO": "/run/qute/fifo"}))
	if err != nil {
		t.Fatalf("FromEnv() error: %v", err)
	}
	if ch.Path() != "/run/qute/fifo" {
		t.Errorf("Path() = %q", ch.Path())
	}

	_, err = FromEnv(quteenv.FromMap(nil))
	if name, ok := quteenv.MissingName(err); !ok || name != quteenv.VarFIFO {
		t.Errorf("FromEnv() without QUTE_FIFO error = %v", err)
	}
}

func TestFromEnv_EmptyFIFO(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"", "   "} {
		ch, err := FromEnv(quteenv.FromMap(map[string]string{"QUTE_FIFO": value}))
		if ch != nil {
			t.Errorf("FromEnv(QUTE_FIFO=%q) returned a channel", value)
		}
		if !errors.Is(err, ErrChannel) {
			t.Errorf("FromEnv(QUTE_FIFO=%q) error = %v, want ErrChannel", value, err)
		}
		if !errors.Is(err, types.ErrInvalidFilesystemPath) {
			t.Errorf("FromEnv(QUTE_FIFO=%q) error = %v, want ErrInvalidFilesystemPath", value, err)
		}
	}
}

func TestChannel_SendEmptyPath(t *testing.T) {
	t.Parallel()

	err := New("").Send("enter-mode insert")

	var chErr *ChannelError
	if !errors.As(err, &chErr) || chErr.Op != "open" {
		t.Fatalf("Send() error = %v, want *ChannelError from open", err)
	}
	if !errors.Is(err, types.ErrInvalidFilesystemPath) {
		t.Errorf("Send() error = %v, want ErrInvalidFilesystemPath", err)
	}
	if strings.Contains(err.Error(), "channel :") {
		t.Errorf("error message has a dangling empty path: %q", err.Error())
	}
}

func TestChannel_Logging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	path := testutil.MustChannelFile(t)
	if err := New(types.FilesystemPath(path), WithLogger(logger)).Send("stop"); err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if !strings.Contains(buf.String(), "sent command") {
		t.Errorf("debug log = %q, want a sent command entry", buf.String())
	}

	buf.Reset()
	_ = New(types.FilesystemPath(filepath.Join(t.TempDir(), "nope")), WithLogger(logger)).Send("stop")
	if !strings.Contains(buf.String(), "cannot open command channel") {
		t.Errorf("error log = %q, want an open failure entry", buf.String())
	}
}

func TestWithLogger_NilKeepsDefault(t *testing.T) {
	t.Parallel()

	ch := New(types.FilesystemPath(testutil.MustChannelFile(t)), WithLogger(nil))
	if err := ch.Send("stop"); err != nil {
		t.Fatalf("Send() error: %v", err)
	}
}
