// internal/console/console_test.go
package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dehne/jogwheel/internal/eeprom"
	"github.com/dehne/jogwheel/internal/store"
)

type fakeDiag struct {
	errs uint64
}

func (f *fakeDiag) SampleErrors() uint64 { return f.errs }

func newConsole(t *testing.T) (*Console, *store.Store) {
	t.Helper()
	st, _, err := store.Open(eeprom.NewMem(eeprom.Size))
	if err != nil {
		t.Fatalf("store.Open err=%v", err)
	}
	c, err := New(Config{}, st, &fakeDiag{errs: 2})
	if err != nil {
		t.Fatalf("New err=%v", err)
	}
	return c, st
}

func run(t *testing.T, c *Console, line string) string {
	t.Helper()
	var buf bytes.Buffer
	if c.Execute(&buf, line) {
		t.Fatalf("Execute(%q) requested exit", line)
	}
	return buf.String()
}

func TestExecute_NewAndDisplay(t *testing.T) {
	c, st := newConsole(t)

	out := run(t, c, "new w+1 -1 kc'x 'y")
	if !strings.Contains(out, "Added configuration 1.") {
		t.Fatalf("new output = %q", out)
	}
	if got := st.ConfiguredCount(); got != 2 {
		t.Fatalf("ConfiguredCount = %d, want 2", got)
	}

	out = run(t, c, "display")
	if !strings.Contains(out, "k0xDA 0xD9") {
		t.Errorf("display missing default config: %q", out)
	}
	if !strings.Contains(out, "w+1 -1 kc'x 'y") {
		t.Errorf("display missing new config: %q", out)
	}
	if !strings.Contains(out, "bytes free for configurations") {
		t.Errorf("display missing free space: %q", out)
	}
	if !strings.Contains(out, "red") || !strings.Contains(out, "white") {
		t.Errorf("display missing combo colors: %q", out)
	}
}

func TestExecute_NewRejectsBadSpec(t *testing.T) {
	c, st := newConsole(t)

	out := run(t, c, "new q+1 -1")
	if !strings.Contains(out, "Could not add specification") {
		t.Errorf("bad spec output = %q", out)
	}
	if got := st.ConfiguredCount(); got != 1 {
		t.Errorf("ConfiguredCount = %d, want unchanged 1", got)
	}

	out = run(t, c, "new w+1")
	if !strings.Contains(out, "Could not add specification") {
		t.Errorf("odd token count output = %q", out)
	}
}

func TestExecute_Use(t *testing.T) {
	c, st := newConsole(t)
	run(t, c, "new w+1 -1")

	out := run(t, c, "use 3 1")
	if !strings.Contains(out, "Combo 3 now uses configuration 1.") {
		t.Fatalf("use output = %q", out)
	}
	if got := st.Header().ActiveMap[2]; got != 1 {
		t.Errorf("ActiveMap[2] = %d, want 1", got)
	}

	// Out-of-range combo prints usage, mapping untouched.
	out = run(t, c, "use 9 1")
	if !strings.Contains(out, "use <combo> <n>") {
		t.Errorf("bad combo output = %q", out)
	}

	// Unused slot is a store-level rejection.
	out = run(t, c, "use 2 5")
	if !strings.Contains(out, "Could not set mapping") {
		t.Errorf("unused slot output = %q", out)
	}
}

func TestExecute_Remove(t *testing.T) {
	c, st := newConsole(t)
	run(t, c, "new w+1 -1")

	out := run(t, c, "remove 1")
	if !strings.Contains(out, "Removed configuration 1.") {
		t.Fatalf("remove output = %q", out)
	}
	if got := st.ConfiguredCount(); got != 1 {
		t.Errorf("ConfiguredCount = %d, want 1", got)
	}

	out = run(t, c, "remove 0")
	if !strings.Contains(out, "Could not remove configuration 0") {
		t.Errorf("remove slot 0 output = %q", out)
	}
}

func TestExecute_HelpAndStatus(t *testing.T) {
	c, _ := newConsole(t)

	if out := run(t, c, "help"); !strings.Contains(out, "JogWheel command list") {
		t.Errorf("help output = %q", out)
	}
	if out := run(t, c, "h new"); !strings.Contains(out, "new command help") {
		t.Errorf("help new output = %q", out)
	}
	out := run(t, c, "status")
	for _, want := range []string{"Selection: combo 2", "1 of 8 slots used", "sample errors: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("status output missing %q: %q", want, out)
		}
	}

	if out := run(t, c, "bogus"); !strings.Contains(out, "Unknown or unimplemented command.") {
		t.Errorf("unknown output = %q", out)
	}
}

func TestExecute_Exit(t *testing.T) {
	c, _ := newConsole(t)
	var buf bytes.Buffer
	if !c.Execute(&buf, "exit") {
		t.Error("exit did not request termination")
	}
	if c.Execute(&buf, "") {
		t.Error("blank line requested termination")
	}
}
