// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views renders the public HTML pages.

Pages are built in two steps. A page model is resolved from a query result
(NewHomePage, NewDetailPage), then a Renderer executes the embedded
templates for it. Keeping the state decisions in Go makes them testable
without parsing HTML.

The detail page has five states: loading, not found (query failure and
absent hackathon alike), ongoing, finished without winners and finished with
winners. Winners keep the source order; the tier style and podium glyph come
from the rank alone (TierFor, PodiumIcon).
*/
package views
