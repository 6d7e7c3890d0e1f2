package esearch

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReaderToReadSeeker(t *testing.T) {
	// Test data
	inputData := "Hello, world!"
	reader := bytes.NewBufferString(inputData)

	readSeeker, err := readerToReadSeeker(reader)

	require.NoError(t, err)
	require.NotNil(t, readSeeker, "Expected a valid io.ReadSeeker")

	// Ensure the content in the io.ReadSeeker matches the input data
	buffer := new(bytes.Buffer)
	_, err = buffer.ReadFrom(readSeeker)
	require.NoError(t, err)
	require.Equal(t, inputData, buffer.String(), "Input data and readSeeker content mismatch")
}

func TestReaderToReadSeekerEmptyReader(t *testing.T) {
	// Test data: Empty reader
	reader := bytes.NewBuffer([]byte{})

	readSeeker, err := readerToReadSeeker(reader)

	require.NoError(t, err)
	require.NotNil(t, readSeeker, "Expected a valid io.ReadSeeker")

	// Ensure the content in the io.ReadSeeker is empty
	buffer := new(bytes.Buffer)
	_, err = buffer.ReadFrom(readSeeker)
	require.NoError(t, err)
	require.Empty(t, buffer.String(), "Expected empty readSeeker content")
}
