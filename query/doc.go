// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package query caches read results and reports their lifecycle.

Pages ask for data through Fetch and branch on the Result status:

	res := query.Fetch(ctx, cache, "recent", wait, source.GetRecentHackathons)
	switch {
	case res.IsLoading():
	case res.IsError():
	default:
		use(res.Data)
	}

Concurrent fetches of one key share a single call. The call runs on its own
context bounded by the fetch timeout, so a request that gives up waiting
leaves the result to the next request. Successful results stay fresh for the
cache TTL; after that the old value is still served while one background call
refetches it. Failures are never cached and there are no retries.
*/
package query
