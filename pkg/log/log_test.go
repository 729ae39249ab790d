// Copyright 2026 The muslabi Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"fmt"
	stdlog "log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type testWriter struct {
	lines []string
	fail  bool
}

func (w *testWriter) Write(bytes []byte) (int, error) {
	if w.fail {
		return 0, fmt.Errorf("simulated failure")
	}
	w.lines = append(w.lines, string(bytes))
	return len(bytes), nil
}

func TestDropMessages(t *testing.T) {
	tw := &testWriter{}
	w := Writer{Next: tw}
	if _, err := w.Write([]byte("line 1\n")); err != nil {
		t.Fatalf("Write failed, err: %v", err)
	}

	tw.fail = true
	if _, err := w.Write([]byte("error\n")); err == nil {
		t.Fatalf("Write should have failed")
	}
	if _, err := w.Write([]byte("error\n")); err == nil {
		t.Fatalf("Write should have failed")
	}

	tw.fail = false
	if _, err := w.Write([]byte("line 2\n")); err != nil {
		t.Fatalf("Write failed, err: %v", err)
	}

	expected := []string{
		"line 1\n",
		"line 2\n",
		"\n*** Dropped 2 log messages ***\n",
	}
	if diff := cmp.Diff(expected, tw.lines); diff != "" {
		t.Errorf("Writer lines mismatch (-want +got):\n%s", diff)
	}
}

func TestWriterAppendsNewline(t *testing.T) {
	tw := &testWriter{}
	w := Writer{Next: tw}
	w.Emit(0, Info, time.Now(), "value %d", 7)
	if diff := cmp.Diff([]string{"value 7", "\n"}, tw.lines); diff != "" {
		t.Errorf("Writer lines mismatch (-want +got):\n%s", diff)
	}
}

func TestGoogleEmitter(t *testing.T) {
	tw := &testWriter{}
	g := GoogleEmitter{&Writer{Next: tw}}
	ts := time.Date(2024, time.March, 7, 9, 5, 3, 42000, time.UTC)
	g.Emit(0, Warning, ts, "hello %s", "world")

	if len(tw.lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(tw.lines), tw.lines)
	}
	line := tw.lines[0]
	if want := "W0307 09:05:03.000042 "; !strings.HasPrefix(line, want) {
		t.Errorf("line = %q, want prefix %q", line, want)
	}
	if want := " log_test.go:"; !strings.Contains(line, want) {
		t.Errorf("line = %q, want caller %q", line, want)
	}
	if want := "] hello world\n"; !strings.HasSuffix(line, want) {
		t.Errorf("line = %q, want suffix %q", line, want)
	}
	if want := strconv.Itoa(os.Getpid()); !strings.Contains(line, want) {
		t.Errorf("line = %q, want pid %q", line, want)
	}
}

type recordEmitter struct {
	msgs []string
}

func (r *recordEmitter) Emit(_ int, level Level, _ time.Time, format string, v ...any) {
	r.msgs = append(r.msgs, level.String()+": "+fmt.Sprintf(format, v...))
}

func TestBasicLoggerLevels(t *testing.T) {
	for _, tc := range []struct {
		level Level
		want  []string
	}{
		{Warning, []string{"Warning: w"}},
		{Info, []string{"Info: i", "Warning: w"}},
		{Debug, []string{"Debug: d", "Info: i", "Warning: w"}},
	} {
		t.Run(tc.level.String(), func(t *testing.T) {
			r := &recordEmitter{}
			l := &BasicLogger{Level: tc.level, Emitter: r}
			l.Debugf("d")
			l.Infof("i")
			l.Warningf("w")
			if diff := cmp.Diff(tc.want, r.msgs); diff != "" {
				t.Errorf("emitted messages mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMultiEmitter(t *testing.T) {
	a, b := &recordEmitter{}, &recordEmitter{}
	m := MultiEmitter{a, b}
	m.Emit(0, Info, time.Now(), "x=%d", 1)
	want := []string{"Info: x=1"}
	if diff := cmp.Diff(want, a.msgs); diff != "" {
		t.Errorf("first emitter mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, b.msgs); diff != "" {
		t.Errorf("second emitter mismatch (-want +got):\n%s", diff)
	}
}

func TestSetTarget(t *testing.T) {
	old := Log()
	defer log.Store(old)

	r := &recordEmitter{}
	SetTarget(r)
	SetLevel(Info)
	Debugf("hidden")
	Infof("shown %d", 1)
	if IsLogging(Debug) {
		t.Errorf("IsLogging(Debug) = true at level Info")
	}
	if diff := cmp.Diff([]string{"Info: shown 1"}, r.msgs); diff != "" {
		t.Errorf("emitted messages mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLevel(t *testing.T) {
	for _, tc := range []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"warning", Warning, false},
		{"INFO", Info, false},
		{"Debug", Debug, false},
		{"trace", 0, true},
	} {
		got, err := ParseLevel(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %t", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRateLimitedLogger(t *testing.T) {
	r := &recordEmitter{}
	rl := RateLimitedLogger(&BasicLogger{Level: Debug, Emitter: r}, time.Hour, 2)
	for i := 0; i < 5; i++ {
		rl.Infof("msg %d", i)
	}
	if diff := cmp.Diff([]string{"Info: msg 0", "Info: msg 1"}, r.msgs); diff != "" {
		t.Errorf("emitted messages mismatch (-want +got):\n%s", diff)
	}
	if !rl.IsLogging(Debug) {
		t.Errorf("IsLogging(Debug) = false, want true")
	}
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	opts := FilePattern{Command: "layout", Start: time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)}

	if got, want := opts.Build("/x/%COMMAND%.%TIMESTAMP%.%PID%"), fmt.Sprintf("/x/layout.20240102-030405.%d", os.Getpid()); got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}

	f, err := OpenFile(filepath.Join(dir, "sub", "%COMMAND%.log"), os.O_CREATE|os.O_WRONLY, opts)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()
	if got, want := f.Name(), filepath.Join(dir, "sub", "layout.log"); got != want {
		t.Errorf("file name = %q, want %q", got, want)
	}

	if f, err := OpenFile("", os.O_CREATE|os.O_WRONLY, opts); f != nil || err != nil {
		t.Errorf("OpenFile(\"\") = %v, %v, want nil, nil", f, err)
	}
}

func TestCopyStandardLogTo(t *testing.T) {
	old := Log()
	defer log.Store(old)
	defer stdlog.SetOutput(os.Stderr)

	r := &recordEmitter{}
	SetTarget(r)
	if err := CopyStandardLogTo(Warning); err != nil {
		t.Fatal(err)
	}
	stdlog.Printf("from %s", "stdlib")
	if diff := cmp.Diff([]string{"Warning: from stdlib"}, r.msgs); diff != "" {
		t.Errorf("emitted messages mismatch (-want +got):\n%s", diff)
	}

	if err := CopyStandardLogTo(Level(7)); err == nil {
		t.Errorf("CopyStandardLogTo accepted an invalid level")
	}
}
