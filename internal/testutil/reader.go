package testutil

import "io"

// ScriptedReader returns preset lines in order, then End (io.EOF when nil).
// It satisfies shell.LineReader.
type ScriptedReader struct {
	Lines []string
	End   error

	// Prompts records the prompt passed to every ReadLine call.
	Prompts []string
	Closed  bool
}

// NewScriptedReader creates a reader that yields lines then io.EOF.
func NewScriptedReader(lines ...string) *ScriptedReader {
	return &ScriptedReader{Lines: lines}
}

// ReadLine implements shell.LineReader.
func (r *ScriptedReader) ReadLine(prompt string) (string, error) {
	r.Prompts = append(r.Prompts, prompt)
	if len(r.Lines) == 0 {
		if r.End != nil {
			return "", r.End
		}
		return "", io.EOF
	}
	line := r.Lines[0]
	r.Lines = r.Lines[1:]
	return line, nil
}

// Close implements shell.LineReader.
func (r *ScriptedReader) Close() error {
	r.Closed = true
	return nil
}
