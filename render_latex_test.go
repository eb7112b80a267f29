package coldwallet

import (
	"fmt"
	"strings"
	"testing"
)

// texRecords builds n sequential records for typeset tests.
func texRecords(n int) []WalletRecord {
	records := make([]WalletRecord, n)
	for i := range records {
		records[i] = WalletRecord{
			Address:    fmt.Sprintf("addr%d", i+1),
			PrivateKey: fmt.Sprintf("key%d", i+1),
		}
	}
	return records
}

func TestRenderTypesetBasics(t *testing.T) {
	t.Parallel()

	out, err := RenderTypeset(Document{
		Records: texRecords(2),
		Date:    "2026-08-30",
	})
	if err != nil {
		t.Fatalf("RenderTypeset() error: %v", err)
	}

	for _, want := range []string{
		`\begin{document}`,
		`\end{document}`,
		`Wallet 1`,
		`Wallet 2`,
		`\qrcode[height=3cm]{addr1}`,
		`\qrcode[height=3cm,level=H]{key1}`,
		`\seqsplit{addr2}`,
		`\seqsplit{key2}`,
		`Generated 2026-08-30`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderTypesetPageBreakCadence(t *testing.T) {
	t.Parallel()

	out, err := RenderTypeset(Document{Records: texRecords(12), Date: "2026-08-30"})
	if err != nil {
		t.Fatalf("RenderTypeset() error: %v", err)
	}

	// Breaks after entries 5 and 10; rules between all other consecutive
	// entries (1-4, 6-9, 11).
	if got := strings.Count(out, `\newpage`); got != 2 {
		t.Errorf("got %d page breaks, want 2", got)
	}
	if got := strings.Count(out, `\hrule`); got != 9 {
		t.Errorf("got %d rules, want 9", got)
	}

	// The break must come after the fifth entry, before the sixth.
	fifth := strings.Index(out, "Wallet 5")
	sixth := strings.Index(out, "Wallet 6")
	breakIdx := strings.Index(out, `\newpage`)
	if fifth == -1 || sixth == -1 || breakIdx == -1 {
		t.Fatal("expected entries 5, 6 and a page break in output")
	}
	if breakIdx < fifth || breakIdx > sixth {
		t.Errorf("page break at %d not between entry 5 (%d) and entry 6 (%d)", breakIdx, fifth, sixth)
	}
}

func TestRenderTypesetNoBreakOrRuleAfterLastEntry(t *testing.T) {
	t.Parallel()

	out, err := RenderTypeset(Document{Records: texRecords(5), Date: "2026-08-30"})
	if err != nil {
		t.Fatalf("RenderTypeset() error: %v", err)
	}
	if strings.Contains(out, `\newpage`) {
		t.Error("trailing entry on a break boundary still produced a page break")
	}
	if got := strings.Count(out, `\hrule`); got != 4 {
		t.Errorf("got %d rules, want 4", got)
	}
}

func TestRenderTypesetVisibility(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     Options
		wantKeys int // occurrences of the key text in the output
	}{
		{
			name:     "default shows barcode macro and text",
			wantKeys: 2,
		},
		{
			name:     "exclude-private-key-text keeps barcode only",
			opts:     Options{ExcludePrivateKeyText: true},
			wantKeys: 1,
		},
		{
			name:     "exclude-private-keys removes the key entirely",
			opts:     Options{ExcludePrivateKeys: true},
			wantKeys: 0,
		},
		{
			name:     "exclude-private-keys wins over text flag",
			opts:     Options{ExcludePrivateKeys: true, ExcludePrivateKeyText: true},
			wantKeys: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := RenderTypeset(Document{
				Records: []WalletRecord{{Address: "addr1", PrivateKey: "SECRETKEY"}},
				Options: tt.opts,
				Date:    "2026-08-30",
			})
			if err != nil {
				t.Fatalf("RenderTypeset() error: %v", err)
			}
			if got := strings.Count(out, "SECRETKEY"); got != tt.wantKeys {
				t.Errorf("key text appears %d times, want %d", got, tt.wantKeys)
			}
			if !strings.Contains(out, "addr1") {
				t.Error("address block missing")
			}
		})
	}
}

func TestRenderTypesetEmptyInput(t *testing.T) {
	t.Parallel()

	out, err := RenderTypeset(Document{Date: "2026-08-30"})
	if err != nil {
		t.Fatalf("RenderTypeset() error: %v", err)
	}
	if !strings.Contains(out, `\begin{document}`) || !strings.Contains(out, `\end{document}`) {
		t.Error("empty input did not produce a complete document")
	}
	if strings.Contains(out, "Wallet 1") {
		t.Error("empty input produced a wallet entry")
	}
}

func TestRenderTypesetNotes(t *testing.T) {
	t.Parallel()

	out, err := RenderTypeset(Document{
		Records: texRecords(1),
		Date:    "2026-08-30",
		Notes:   "Keep 100% offline",
	})
	if err != nil {
		t.Fatalf("RenderTypeset() error: %v", err)
	}
	if !strings.Contains(out, `Keep 100\% offline`) {
		t.Error("notes text missing or unescaped")
	}
}

func TestTexEscape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain base58 unchanged", in: "1BoatSLRHtKNngkdX", want: "1BoatSLRHtKNngkdX"},
		{name: "reserved single chars", in: "a#b$c%d&e_f{g}", want: `a\#b\$c\%d\&e\_f\{g\}`},
		{name: "backslash", in: `a\b`, want: `a\textbackslash{}b`},
		{name: "tilde and caret", in: "a~b^c", want: `a\textasciitilde{}b\textasciicircum{}c`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := texEscape(tt.in); got != tt.want {
				t.Errorf("texEscape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
