package client

// Request/response hooks let callers and tests observe traffic without
// wrapping the transport. Dispatch is synchronous and in registration order;
// for any single call the request event fires strictly before its response
// event. Registration is not synchronized: register hooks at construction
// time (WithRequestHook/WithResponseHook) or before the client is shared
// across goroutines.

// RequestEvent describes an outgoing request just before it is dispatched.
type RequestEvent struct {
	Method   string
	URL      string
	BaseURL  string
	Username string // basic-auth username, i.e. the token ID
}

// ResponseEvent describes a resolved HTTP call.
type ResponseEvent struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte // raw response body, prior to JSON decoding
}

// OnRequest registers a request hook after construction.
func (c *Client) OnRequest(fn func(RequestEvent)) {
	if fn != nil {
		c.reqHooks = append(c.reqHooks, fn)
	}
}

// OnResponse registers a response hook after construction.
func (c *Client) OnResponse(fn func(ResponseEvent)) {
	if fn != nil {
		c.respHooks = append(c.respHooks, fn)
	}
}

func (c *Client) fireRequest(ev RequestEvent) {
	for _, fn := range c.reqHooks {
		fn(ev)
	}
}

func (c *Client) fireResponse(ev ResponseEvent) {
	for _, fn := range c.respHooks {
		fn(ev)
	}
}
