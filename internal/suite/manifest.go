package suite

import (
	"fmt"

	"github.com/crucible-lang/compiletest/internal/config"
)

// Manifest is a parsed suite manifest. It is the declarative half of a
// config.Config: everything here describes the host and the suite, nothing
// here describes a single invocation (filters, logging and compare-mode
// stay on the command line).
type Manifest struct {
	// Mode is the declared mode token. It is kept as written so Resolve
	// can report the offending token on a typo.
	Mode string

	Target    string
	Host      string
	SrcBase   string
	BuildBase string
	StageID   string

	Tools  Tools
	Probes Probes
}

// Tools names the executables a run may need. Empty means not installed.
type Tools struct {
	Compiler       string `json:"compiler"`
	Doc            string `json:"doc"`
	Gdb            string `json:"gdb"`
	LldbPython     string `json:"lldb_python"`
	LldbPythonDir  string `json:"lldb_python_dir"`
	DocCheckPython string `json:"doc_check_python"`
	FileCheck      string `json:"filecheck"`
	Valgrind       string `json:"valgrind"`
	CC             string `json:"cc"`
	CXX            string `json:"cxx"`
	AR             string `json:"ar"`
	Linker         string `json:"linker"`
	NodeJS         string `json:"nodejs"`
}

// Probes holds feature and version probe results for the host.
type Probes struct {
	// GdbVersion is encoded as ((major*1000)+minor)*1000+patch.
	GdbVersion    uint32 `json:"gdb_version"`
	GdbNativeLang bool   `json:"gdb_native_lang"`
	LldbVersion   string `json:"lldb_version"`
	LLVMVersion   string `json:"llvm_version"`
	SystemLLVM    bool   `json:"system_llvm"`
}

// Resolve turns the manifest into a run configuration.
//
// The mode token is validated here, not during loading, so a caller can
// still inspect a manifest whose mode has a typo. An unknown token is a
// recoverable error carrying the token.
func (m *Manifest) Resolve() (*config.Config, error) {
	mode, err := config.ParseMode(m.Mode)
	if err != nil {
		return nil, fmt.Errorf("suite manifest: %w", err)
	}

	return &config.Config{
		Mode:           mode,
		Target:         m.Target,
		Host:           m.Host,
		SrcBase:        m.SrcBase,
		BuildBase:      m.BuildBase,
		StageID:        m.StageID,
		CompilerPath:   m.Tools.Compiler,
		DocPath:        m.Tools.Doc,
		Gdb:            m.Tools.Gdb,
		LldbPython:     m.Tools.LldbPython,
		LldbPythonDir:  m.Tools.LldbPythonDir,
		DocCheckPython: m.Tools.DocCheckPython,
		LLVMFileCheck:  m.Tools.FileCheck,
		ValgrindPath:   m.Tools.Valgrind,
		CC:             m.Tools.CC,
		CXX:            m.Tools.CXX,
		AR:             m.Tools.AR,
		Linker:         m.Tools.Linker,
		NodeJS:         m.Tools.NodeJS,
		GdbVersion:     m.Probes.GdbVersion,
		GdbNativeLang:  m.Probes.GdbNativeLang,
		LldbVersion:    m.Probes.LldbVersion,
		LLVMVersion:    m.Probes.LLVMVersion,
		SystemLLVM:     m.Probes.SystemLLVM,
		Color:          config.ColorAuto,
	}, nil
}
