package resolvers

import (
	"io"
	"io/ioutil"
)

func flushResponse(resp io.ReadCloser) {
	io.Copy(ioutil.Discard, resp) // nolint: errcheck
	resp.Close()
}
