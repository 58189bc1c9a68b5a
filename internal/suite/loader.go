package suite

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"
)

// Error codes for manifest loading.
const (
	ErrCodeNotFound     = "S001" // Manifest path not found
	ErrCodeLoadFailed   = "S002" // CUE load failed
	ErrCodeBuildFailed  = "S003" // CUE build failed
	ErrCodeMissingSuite = "S004" // No top-level suite struct
	ErrCodeMissingField = "S005" // Required field absent
	ErrCodeBadField     = "S006" // Field has the wrong type or shape
)

// LoadError is a manifest loading failure with a CUE position when one is
// available.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Load reads the CUE package in dir and extracts its suite manifest.
func Load(dir string) (*Manifest, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("manifest directory not found: %s", dir)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing manifest directory: %v", err)}
	}
	if !info.IsDir() {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}
	}

	ctx := cuecontext.New()
	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err)}
	}

	suiteVal := value.LookupPath(cue.ParsePath("suite"))
	if !suiteVal.Exists() {
		return nil, &LoadError{Code: ErrCodeMissingSuite, Message: "manifest has no top-level suite struct", Pos: value.Pos()}
	}

	return extractManifest(suiteVal)
}

// extractManifest pulls the manifest out of a suite CUE value.
// Required scalar fields are read one by one so errors point at the exact
// field; the optional tools and probes blocks decode as a unit.
func extractManifest(v cue.Value) (*Manifest, error) {
	m := &Manifest{}

	required := []struct {
		path string
		dst  *string
	}{
		{"mode", &m.Mode},
		{"target", &m.Target},
		{"host", &m.Host},
		{"src_base", &m.SrcBase},
		{"build_base", &m.BuildBase},
	}
	for _, field := range required {
		fieldVal := v.LookupPath(cue.ParsePath(field.path))
		if !fieldVal.Exists() {
			return nil, &LoadError{
				Code:    ErrCodeMissingField,
				Message: fmt.Sprintf("%s is required", field.path),
				Pos:     v.Pos(),
			}
		}
		s, err := fieldVal.String()
		if err != nil {
			return nil, &LoadError{
				Code:    ErrCodeBadField,
				Message: fmt.Sprintf("%s must be a string: %v", field.path, err),
				Pos:     fieldVal.Pos(),
			}
		}
		*field.dst = s
	}

	if stageVal := v.LookupPath(cue.ParsePath("stage_id")); stageVal.Exists() {
		s, err := stageVal.String()
		if err != nil {
			return nil, &LoadError{
				Code:    ErrCodeBadField,
				Message: fmt.Sprintf("stage_id must be a string: %v", err),
				Pos:     stageVal.Pos(),
			}
		}
		m.StageID = s
	}

	if toolsVal := v.LookupPath(cue.ParsePath("tools")); toolsVal.Exists() {
		if err := toolsVal.Decode(&m.Tools); err != nil {
			return nil, &LoadError{
				Code:    ErrCodeBadField,
				Message: fmt.Sprintf("decoding tools: %v", err),
				Pos:     toolsVal.Pos(),
			}
		}
	}

	if probesVal := v.LookupPath(cue.ParsePath("probes")); probesVal.Exists() {
		if err := probesVal.Decode(&m.Probes); err != nil {
			return nil, &LoadError{
				Code:    ErrCodeBadField,
				Message: fmt.Sprintf("decoding probes: %v", err),
				Pos:     probesVal.Pos(),
			}
		}
	}

	return m, nil
}
