package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ytget/tubedl/internal/download"
	"github.com/ytget/tubedl/internal/model"
)

func TestParseMenuChoice(t *testing.T) {
	tests := []struct {
		input    string
		expected model.Kind
		quit     bool
		wantErr  bool
	}{
		{"1", model.KindSingle, false, false},
		{" 2 ", model.KindCollection, false, false},
		{"3", "", true, true},
		{"4", "", false, true},
		{"", "", false, true},
	}

	for _, test := range tests {
		kind, err := parseMenuChoice(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("parseMenuChoice(%q) error = %v, wantErr %v", test.input, err, test.wantErr)
		}
		if errors.Is(err, errQuit) != test.quit {
			t.Errorf("parseMenuChoice(%q) quit mismatch: %v", test.input, err)
		}
		if kind != test.expected {
			t.Errorf("parseMenuChoice(%q) = %q, expected %q", test.input, kind, test.expected)
		}
	}
}

func TestIsYes(t *testing.T) {
	for _, answer := range []string{"y", "Y", " yes "} {
		if !isYes(answer) {
			t.Errorf("Expected %q to be yes", answer)
		}
	}
	for _, answer := range []string{"n", "", "o", "nope"} {
		if isYes(answer) {
			t.Errorf("Expected %q to be no", answer)
		}
	}
}

func newTestMenu(input string, run runFunc) (*menu, *bytes.Buffer) {
	var out bytes.Buffer
	return &menu{
		in:  bufio.NewScanner(strings.NewReader(input)),
		out: &out,
		run: run,
		cwd: "/cwd",
		base: func(url string, kind model.Kind) model.DownloadRequest {
			return model.DownloadRequest{URL: url, Kind: kind, Destination: "/saved"}
		},
	}, &out
}

func TestMenuLoop(t *testing.T) {
	var got []model.DownloadRequest
	run := func(ctx context.Context, req model.DownloadRequest) error {
		got = append(got, req)
		return nil
	}

	input := strings.Join([]string{
		// invalid choice
		"9",
		// video into the working directory, then continue
		"1", "https://v", "n", "y",
		// playlist into /music, then stop
		"2", "https://p", "y", "/music", "n",
	}, "\n") + "\n"

	m, out := newTestMenu(input, run)
	if err := m.loop(context.Background()); err != nil {
		t.Fatalf("loop failed: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("Expected 2 downloads, got %d", len(got))
	}
	if got[0].Kind != model.KindSingle || got[0].URL != "https://v" || got[0].Destination != "/cwd" {
		t.Errorf("Unexpected first request: %+v", got[0])
	}
	if got[1].Kind != model.KindCollection || got[1].URL != "https://p" || got[1].Destination != "/music" {
		t.Errorf("Unexpected second request: %+v", got[1])
	}

	text := out.String()
	for _, want := range []string{"Invalid choice!", "Enter the playlist URL", "Closing the program..."} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in output", want)
		}
	}
}

func TestMenuLoop_QuitImmediately(t *testing.T) {
	called := false
	m, out := newTestMenu("3\n", func(ctx context.Context, req model.DownloadRequest) error {
		called = true
		return nil
	})

	if err := m.loop(context.Background()); err != nil {
		t.Fatalf("loop failed: %v", err)
	}
	if called {
		t.Error("Quit must not start a download")
	}
	if !strings.Contains(out.String(), "Closing the program...") {
		t.Error("Expected closing message")
	}
}

func TestMenuLoop_EndOfInput(t *testing.T) {
	m, _ := newTestMenu("1\nhttps://v\n", func(ctx context.Context, req model.DownloadRequest) error {
		t.Error("Download should not start without a destination answer")
		return nil
	})
	if err := m.loop(context.Background()); err != nil {
		t.Fatalf("loop failed: %v", err)
	}
}

func TestMenuLoop_FailedDownloadContinues(t *testing.T) {
	calls := 0
	m, out := newTestMenu("1\nhttps://bad\nn\ny\n3\n", func(ctx context.Context, req model.DownloadRequest) error {
		calls++
		return errors.New("boom")
	})
	if err := m.loop(context.Background()); err != nil {
		t.Fatalf("loop failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected one download attempt, got %d", calls)
	}
	if strings.Contains(out.String(), "Download finished") {
		t.Error("Failed downloads should not print the finished line")
	}
}

func TestMenuPrefsHint(t *testing.T) {
	run := func(ctx context.Context, req model.DownloadRequest) error {
		return &download.ValidationError{Field: download.FieldCookies, Message: "Please select a cookie file."}
	}

	m, out := newTestMenu(strings.Join([]string{"1", "https://v", "n", "n"}, "\n")+"\n", run)
	if err := m.loop(context.Background()); err != nil {
		t.Fatalf("loop returned %v", err)
	}

	if !strings.Contains(out.String(), "tubedl prefs set cookies") {
		t.Errorf("Expected a prefs hint in output %q", out.String())
	}
}

func TestPrefsHint(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&download.ValidationError{Field: download.FieldFFmpeg}, "tubedl prefs set ffmpeg"},
		{&download.ValidationError{Field: download.FieldURL}, ""},
		{errors.New("HTTP Error 403"), ""},
	}

	for _, test := range tests {
		got := prefsHint(test.err)
		if (test.want == "" && got != "") || !strings.Contains(got, test.want) {
			t.Errorf("prefsHint(%v) = %q, expected to contain %q", test.err, got, test.want)
		}
	}
}
