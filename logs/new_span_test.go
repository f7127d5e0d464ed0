package logs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestNewSpan(t *testing.T) {
	if isSystemdService() {
		t.Skip("logging to journal")
	}
	level.Set(slog.LevelDebug)
	defer level.Set(slog.LevelWarn)

	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newSpan NewSpan,
	) {
		ctx := context.Background()
		runCtx, run := newSpan(ctx, "")
		lineCtx, line := newSpan(runCtx, "")
		_, input := newSpan(lineCtx, run)

		lines := strings.Split(buf.String(), "\n")
		if !strings.Contains(lines[0], "logs.span="+string(run)) {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "logs.span="+string(line)) ||
			!strings.Contains(lines[1], "parent="+string(run)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[2], "logs.span="+string(input)) ||
			!strings.Contains(lines[2], "creator="+string(line)) {
			t.Fatalf("got %v", lines[2])
		}
	})
}

func TestWrapSpan(t *testing.T) {
	err := WrapSpan(context.Background(), errFoo)
	if err != errFoo {
		t.Fatalf("got %v", err)
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("abc"))
	err = WrapSpan(ctx, errFoo)
	if err.Error() != "foo [span abc]" {
		t.Fatalf("got %v", err)
	}
}
