package transport

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoAuth(t *testing.T) {
	req := &http.Request{Header: make(http.Header)}
	(&NoAuth{}).Apply(req, "hf_token")
	assert.Empty(t, req.Header)
}

func TestBearerAuth(t *testing.T) {
	req := &http.Request{Header: make(http.Header)}
	(&BearerAuth{}).Apply(req, "hf_token")
	assert.Equal(t, "Bearer hf_token", req.Header.Get("Authorization"))
}

func TestForToken(t *testing.T) {
	assert.IsType(t, &NoAuth{}, ForToken(""))
	assert.IsType(t, &BearerAuth{}, ForToken("hf_token"))
}
