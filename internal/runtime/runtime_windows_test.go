//go:build windows

package runtime

import "testing"

func TestPSQuoteEscapesSingleQuotes(t *testing.T) {
	got := psQuote(`C:\Users\O'Brien\temp.exe`)
	want := `C:\Users\O''Brien\temp.exe`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
