package interval_test

import (
	"testing"
	"time"

	"github.com/xoolive/traffic-rs/interval"
)

func TestTime_UnmarshalText(t *testing.T) {
	testCases := map[string]struct {
		text    string
		want    interval.Time
		wantErr bool
	}{
		"epoch seconds":    {text: "1647861000", want: interval.Unix(1647861000)},
		"fractional epoch": {text: "1647861000.5", want: interval.Unix(1647861000) + interval.Time(500*time.Millisecond)},
		"rfc3339":          {text: "2022-03-21T11:10:00Z", want: interval.Unix(1647861000)},
		"garbage":          {text: "not a time", wantErr: true},
	}
	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			var got interval.Time
			err := got.UnmarshalText([]byte(tc.text))
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("unexpected time: got %v want %v", got, tc.want)
			}
		})
	}
}

func TestTime_Conversions(t *testing.T) {
	ts := time.Date(2022, 3, 21, 11, 10, 0, 0, time.UTC)
	if got := interval.TimeOf(ts); got != interval.Unix(1647861000) {
		t.Errorf("unexpected conversion: %v", got)
	}
	if got := interval.Unix(1647861000).Time(); !got.Equal(ts) {
		t.Errorf("unexpected conversion: %v", got)
	}
	if got := interval.Unix(1647861000).Unix(); got != 1647861000 {
		t.Errorf("unexpected unix time: %v", got)
	}
}

func TestDuration_Text(t *testing.T) {
	var d interval.Duration
	if err := d.UnmarshalText([]byte("2m")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Duration() != 2*time.Minute {
		t.Errorf("unexpected duration: %v", d)
	}
	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(text) != "2m0s" {
		t.Errorf("unexpected text: %q", text)
	}
}
