package sources

import (
	"context"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/agentstation/ttscatalog/internal/transport"
	"github.com/agentstation/ttscatalog/pkg/errors"
)

// HuggingFace lists repositories through the Hub REST API.
type HuggingFace struct {
	endpoint string
	client   *transport.Client
	retry    transport.RetryPolicy
}

var _ Source = (*HuggingFace)(nil)

// NewHuggingFace creates a Hub source.
func NewHuggingFace(opts ...Option) *HuggingFace {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	clientOpts := []transport.Option{
		transport.WithService("huggingface"),
		transport.WithToken(o.Token),
		transport.WithHTTPClient(o.httpClient),
		transport.WithTimeout(o.Timeout),
	}
	return &HuggingFace{
		endpoint: o.Endpoint,
		client:   transport.New(transport.ForToken(o.Token), clientOpts...),
		retry:    o.Retry,
	}
}

// ListRepositories implements Source. Only ids under "author/" are kept.
func (h *HuggingFace) ListRepositories(ctx context.Context, author, search string, limit int) ([]string, error) {
	q := url.Values{}
	q.Set("author", author)
	q.Set("search", search)
	q.Set("limit", strconv.Itoa(limit))
	endpoint := h.endpoint + "/api/models?" + q.Encode()

	body, err := h.fetch(ctx, endpoint)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.WrapResource("fetch", "listing", search, err)
	}

	doc := gjson.ParseBytes(body)
	if !doc.IsArray() {
		return []string{}, nil
	}

	prefix := author + "/"
	ids := []string{}
	doc.ForEach(func(_, item gjson.Result) bool {
		id := item.Get("modelId")
		if id.Type == gjson.String && strings.HasPrefix(id.Str, prefix) {
			ids = append(ids, id.Str)
		}
		return true
	})
	return ids, nil
}

// ListFiles implements Source. A response without a siblings array is an
// empty listing, not an unavailable repository.
func (h *HuggingFace) ListFiles(ctx context.Context, repoID string) ([]string, error) {
	body, err := h.fetch(ctx, h.endpoint+"/api/models/"+escapeRepoID(repoID))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.NewUnavailableError(repoID, !transport.IsRetryable(err), err)
	}

	files := []string{}
	siblings := gjson.GetBytes(body, "siblings")
	if !siblings.IsArray() {
		return files, nil
	}
	siblings.ForEach(func(_, sib gjson.Result) bool {
		name := sib.Get("rfilename")
		if name.Type == gjson.String && name.Str != "" {
			files = append(files, name.Str)
		}
		return true
	})

	slices.Sort(files)
	return slices.Compact(files), nil
}

// fetch retrieves a JSON document under the retry policy. Bodies that are not
// valid JSON count as transient failures.
func (h *HuggingFace) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	var body []byte
	err := h.retry.Do(ctx, func(ctx context.Context) error {
		b, err := h.client.Get(ctx, endpoint)
		if err != nil {
			return err
		}
		if !gjson.ValidBytes(b) {
			return errors.NewParseError("json", "", "malformed response from "+endpoint, nil)
		}
		body = b
		return nil
	})
	return body, err
}

func escapeRepoID(repoID string) string {
	parts := strings.Split(repoID, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
