package resolvers

import (
	"bufio"
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/9seconds/cartographer/cartolib"
)

const selfIPURL = "https://checkip.amazonaws.com/"

// SelfIP asks an external service for the caller's own public IPv4
// address. The map uses it as the origin point of its arcs.
func SelfIP(ctx context.Context, client cartolib.HTTPClient) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, selfIPURL, nil)
	if err != nil {
		return "", fmt.Errorf("cannot build a request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("cannot send a request: %w", err)
	}

	defer flushResponse(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	content, err := ioutil.ReadAll(bufio.NewReader(resp.Body))
	if err != nil {
		return "", fmt.Errorf("cannot read response body: %w", err)
	}

	addr := strings.TrimSpace(string(content))

	if _, err := cartolib.ParseAddr(addr); err != nil {
		return "", fmt.Errorf("incorrect address %q: %w", addr, err)
	}

	return addr, nil
}
