package loggingsyncbuffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncWriter_Write_WritesAccumulate(t *testing.T) {
	sw := New()
	_, err := sw.Write([]byte(`INTEGER "2" 1:1` + "\n"))
	assert.NoError(t, err)
	_, err = sw.Write([]byte(`PLUS "+" 1:3` + "\n"))
	assert.NoError(t, err)
	assert.Equal(t, "INTEGER \"2\" 1:1\nPLUS \"+\" 1:3\n", sw.String())
}

func TestSyncWriter_Sync_ReturnsNil(t *testing.T) {
	sw := New()
	assert.Nil(t, sw.Sync())
}
