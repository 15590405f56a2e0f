package extraction

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBytes_PlainText(t *testing.T) {
	text, err := FromBytes("resume.txt", []byte("I know Rust and Python"))
	require.NoError(t, err)

	assert.Equal(t, "I know Rust and Python", text)
}

func TestFromBytes_UnknownExtensionTreatedAsText(t *testing.T) {
	text, err := FromBytes("notes.md", []byte("plain markdown notes"))
	require.NoError(t, err)

	assert.Equal(t, "plain markdown notes", text)
}

func TestFromBytes_InvalidUTF8(t *testing.T) {
	_, err := FromBytes("resume.txt", []byte{0xff, 0xfe, 0xfd})

	var extErr *Error
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, "resume.txt", extErr.Filename)
}

func TestFromBytes_CorruptPDF(t *testing.T) {
	_, err := FromBytes("resume.pdf", []byte("not a pdf at all"))

	var extErr *Error
	require.ErrorAs(t, err, &extErr)
	assert.NotNil(t, errors.Unwrap(extErr))
}

func TestFromBytes_CorruptDocx(t *testing.T) {
	_, err := FromBytes("resume.docx", []byte("not a zip archive"))

	var extErr *Error
	require.ErrorAs(t, err, &extErr)
}

func TestFromBytes_NeverSilentlyEmptyOnFailure(t *testing.T) {
	text, err := FromBytes("resume.pdf", nil)

	require.Error(t, err)
	assert.Empty(t, text)
}

func TestCleanText_NormalizesWhitespace(t *testing.T) {
	input := "Senior   Engineer\r\n\r\n\r\n\r\nRust \t and Python  \r\n"

	assert.Equal(t, "Senior Engineer\n\nRust and Python", CleanText(input))
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
}

func TestError_Message(t *testing.T) {
	err := &Error{Filename: "cv.pdf", Cause: errors.New("boom")}

	assert.Equal(t, "extraction failed for cv.pdf: boom", err.Error())
	assert.EqualError(t, errors.Unwrap(err), "boom")
}
