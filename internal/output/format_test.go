package output_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"taskmate/internal/output"
	"taskmate/internal/testutil"
)

func TestMain(m *testing.M) {
	output.SetPlain()
	os.Exit(m.Run())
}

func TestFrameSingleLine(t *testing.T) {
	var buf bytes.Buffer
	output.Frame(&buf, "Hello!")
	testutil.GoldenString(t, "frame_single", buf.String())
}

func TestFrameMultiLine(t *testing.T) {
	var buf bytes.Buffer
	output.Frame(&buf, "Got it. I've added this task:\n   [T][ ] read\r\nNow you have 1 tasks in the list.")
	testutil.GoldenString(t, "frame_multi", buf.String())
}

func TestFrameEmptyMessage(t *testing.T) {
	var buf bytes.Buffer
	output.Frame(&buf, "")
	border := output.Indent + output.Border + "\n"
	assert.Equal(t, border+output.Indent+"\n"+border, buf.String())
}
