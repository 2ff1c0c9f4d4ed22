package strengthen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/pprof"
)

const (
	ENV_SEQMATCH_PROFILE_DIR = "SEQMATCH_PROFILE_DIR"
)

// ProfileDir is where debug profiles are written: $SEQMATCH_PROFILE_DIR when set,
// the system temp directory otherwise.
func ProfileDir() string {
	if dir := os.Getenv(ENV_SEQMATCH_PROFILE_DIR); len(dir) != 0 {
		return ExpandPath(dir)
	}
	return os.TempDir()
}

// Measurer profiles one command run. While enabled it records a CPU profile;
// Close stops it, adds a heap profile and reports both paths to w. A disabled
// Measurer does nothing.
type Measurer struct {
	w        io.Writer
	cpu      *os.File
	cpuPath  string
	heapPath string
}

func NewMeasurer(name string, w io.Writer, enabled bool) *Measurer {
	m := &Measurer{w: w}
	if !enabled {
		return m
	}
	dir := ProfileDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(w, "profile disabled: %v\n", err)
		return m
	}
	prefix := filepath.Join(dir, fmt.Sprintf("seqmatch-%s-%d", name, os.Getpid()))
	fd, err := os.Create(prefix + ".cpu.pprof")
	if err != nil {
		fmt.Fprintf(w, "profile disabled: %v\n", err)
		return m
	}
	if err := pprof.StartCPUProfile(fd); err != nil {
		_ = fd.Close()
		_ = os.Remove(fd.Name())
		fmt.Fprintf(w, "profile disabled: %v\n", err)
		return m
	}
	m.cpu = fd
	m.cpuPath = fd.Name()
	m.heapPath = prefix + ".heap.pprof"
	return m
}

// Paths returns the profiles this Measurer writes, empty when disabled.
func (m *Measurer) Paths() []string {
	if m.cpu == nil {
		return nil
	}
	return []string{m.cpuPath, m.heapPath}
}

func (m *Measurer) writeHeap() error {
	fd, err := os.Create(m.heapPath)
	if err != nil {
		return err
	}
	if err := pprof.WriteHeapProfile(fd); err != nil {
		_ = fd.Close()
		return err
	}
	return fd.Close()
}

// Close finishes profiling. Calling it again, or on a disabled Measurer, is a
// no-op.
func (m *Measurer) Close() error {
	if m.cpu == nil {
		return nil
	}
	pprof.StopCPUProfile()
	err := m.cpu.Close()
	m.cpu = nil
	if herr := m.writeHeap(); herr != nil && err == nil {
		err = herr
	}
	if err != nil {
		fmt.Fprintf(m.w, "profile incomplete: %v\n", err)
		return err
	}
	fmt.Fprintf(m.w, "profiles written:\n  go tool pprof -http=:8080 %s\n  go tool pprof -http=:8080 %s\n", m.cpuPath, m.heapPath)
	return nil
}
