package req

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Slot  string `json:"slot"`
	Count int    `json:"count"`
}

func TestDecode(t *testing.T) {
	p, err := Decode[payload](io.NopCloser(strings.NewReader(`{"slot":"E","count":3}`)))
	require.NoError(t, err)
	assert.Equal(t, payload{Slot: "E", Count: 3}, p)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode[payload](io.NopCloser(strings.NewReader(`{"slot":"E","bet":3}`)))
	assert.Error(t, err)

	_, err = Decode[payload](io.NopCloser(strings.NewReader(`{`)))
	assert.Error(t, err)
}
