package venture_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-venture/venture"
	"github.com/go-venture/venture/retry"
)

// memoryList serves pages from a slice; the smallest possible PagedRequest.
type memoryList struct {
	pages [][]int
	index int
}

func (m *memoryList) Send(struct{}) venture.Response[[]int] {
	return venture.Resolved(m.pages[m.index], nil)
}

func (m *memoryList) Advance([]int) bool {
	m.index++
	return m.index < len(m.pages)
}

func Example() {
	req := &memoryList{pages: [][]int{{1, 2}, {3}, {4, 5}}}
	p := venture.Paginate[struct{}, []int](struct{}{}, req)

	for p.HasNext() {
		page, err := p.NextPage(context.Background())
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(page)
	}
	// Output:
	// [1 2]
	// [3]
	// [4 5]
}

// The types below adapt a cursor-paginated HTTP listing to the operation
// contract: a repeatable request, a cursor advance, and a retryability rule
// for server errors.

type apiClient struct {
	hc   *http.Client
	base string
}

type itemsPage struct {
	Items      []string `json:"items"`
	NextCursor string   `json:"next_cursor"`
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return "unexpected status " + strconv.Itoa(e.code)
}

type listItems struct {
	cursor string
}

func (r *listItems) Send(c *apiClient) venture.Response[*itemsPage] {
	cursor := r.cursor
	return venture.ResponseFunc[*itemsPage](func(ctx context.Context) (*itemsPage, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/items?cursor="+cursor, nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.hc.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, &statusError{code: resp.StatusCode}
		}
		var page itemsPage
		if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
			return nil, err
		}
		return &page, nil
	})
}

func (r *listItems) Advance(page *itemsPage) bool {
	if page.NextCursor == "" {
		return false
	}
	r.cursor = page.NextCursor
	return true
}

func (r *listItems) ShouldRetry(err error, _ time.Duration) bool {
	var se *statusError
	return errors.As(err, &se) && se.code >= http.StatusInternalServerError
}

func TestPaginateRetriedHTTPListing(t *testing.T) {
	pages := map[string]itemsPage{
		"":   {Items: []string{"a", "b"}, NextCursor: "c1"},
		"c1": {Items: []string{"c"}, NextCursor: "c2"},
		"c2": {Items: []string{"d"}},
	}

	// the first request for every cursor fails with 503
	var mu sync.Mutex
	attempts := map[string]int{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cursor := r.URL.Query().Get("cursor")
		mu.Lock()
		attempts[cursor]++
		n := attempts[cursor]
		mu.Unlock()
		if n == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(pages[cursor])
	}))
	defer srv.Close()

	client := &apiClient{hc: srv.Client(), base: srv.URL}
	req := venture.WithBackoff[*apiClient, *itemsPage](&listItems{}, func(o *venture.RetryOptions) {
		o.Backoff = func() retry.Backoff { return retry.NewFixed(time.Millisecond, 5) }
	})

	p := venture.Paginate[*apiClient, *itemsPage](client, req)
	var items []string
	for p.HasNext() {
		page, err := p.NextPage(context.Background())
		require.NoError(t, err)
		items = append(items, page.Items...)
	}

	assert.Equal(t, []string{"a", "b", "c", "d"}, items)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, map[string]int{"": 2, "c1": 2, "c2": 2}, attempts)
}

func TestRetryGivesUpOnClientError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := &apiClient{hc: srv.Client(), base: srv.URL}
	req := venture.WithBackoff[*apiClient, *itemsPage](&listItems{}, func(o *venture.RetryOptions) {
		o.Backoff = func() retry.Backoff { return retry.NewFixed(time.Millisecond, 5) }
	})

	_, err := req.Send(client).Await(context.Background())
	var rerr *venture.RetryError
	require.ErrorAs(t, err, &rerr)
	assert.False(t, rerr.IsTimeout())

	var se *statusError
	require.ErrorAs(t, rerr.Unwrap(), &se)
	assert.Equal(t, http.StatusNotFound, se.code)
}
